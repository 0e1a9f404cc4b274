package usecase_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase/mocks"
)

func newMessageUC(t *testing.T) (*usecase.MessageUseCase, *mocks.MockMessageRepository, *mocks.MockCustomerRepository) {
	t.Helper()
	messageRepo := mocks.NewMockMessageRepository()
	customerRepo := mocks.NewMockCustomerRepository()
	uc := usecase.NewMessageUseCase(messageRepo, customerRepo, &mocks.MockIDGenerator{Prefix: "msg"})
	return uc, messageRepo, customerRepo
}

func TestMessageUseCase_SendMessage_CustomerThread(t *testing.T) {
	uc, _, customerRepo := newMessageUC(t)
	ctx := context.Background()

	require.NoError(t, customerRepo.Create(ctx, &domain.Customer{ID: "cust-1", OwnerID: "owner-1", Name: "Anita"}))

	msg, err := uc.SendMessage(ctx, usecase.SendMessageInput{
		OwnerID: "owner-1", CustomerID: "cust-1",
		Sender: domain.RoleOwner, Body: "  payment received  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "payment received", msg.Body)
	assert.False(t, msg.Read)
	assert.False(t, msg.IsSupportThread())
}

func TestMessageUseCase_SendMessage_Rejections(t *testing.T) {
	uc, _, customerRepo := newMessageUC(t)
	ctx := context.Background()

	require.NoError(t, customerRepo.Create(ctx, &domain.Customer{ID: "cust-1", OwnerID: "owner-2", Name: "Bashir"}))

	_, err := uc.SendMessage(ctx, usecase.SendMessageInput{
		OwnerID: "owner-1", Sender: domain.RoleOwner, Body: "   ",
	})
	assert.ErrorIs(t, err, usecase.ErrEmptyMessage)

	_, err = uc.SendMessage(ctx, usecase.SendMessageInput{
		OwnerID: "owner-1", Sender: domain.Role("ghost"), Body: "hi",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.SendMessage(ctx, usecase.SendMessageInput{
		OwnerID: "owner-1", CustomerID: "cust-1",
		Sender: domain.RoleOwner, Body: "hi",
	})
	assert.ErrorIs(t, err, domain.ErrCustomerNotOwned, "customer belongs to another owner")

	// Customers only participate in their own thread, never the
	// owner-admin support thread.
	_, err = uc.SendMessage(ctx, usecase.SendMessageInput{
		OwnerID: "owner-1", Sender: domain.RoleCustomer, Body: "hi",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMessageUseCase_SendMessage_TruncatesOnRuneBoundary(t *testing.T) {
	uc, _, _ := newMessageUC(t)

	long := strings.Repeat("টাকা", usecase.MaxMessageLength)
	msg, err := uc.SendMessage(context.Background(), usecase.SendMessageInput{
		OwnerID: "owner-1", Sender: domain.RoleOwner, Body: long,
	})
	require.NoError(t, err)

	assert.Equal(t, usecase.MaxMessageLength, utf8.RuneCountInString(msg.Body))
	assert.True(t, utf8.ValidString(msg.Body))
}

func TestMessageUseCase_SendMessage_SupportThread(t *testing.T) {
	uc, _, _ := newMessageUC(t)

	msg, err := uc.SendMessage(context.Background(), usecase.SendMessageInput{
		OwnerID: "owner-1", Sender: domain.RoleAdmin, Body: "welcome aboard",
	})
	require.NoError(t, err)
	assert.True(t, msg.IsSupportThread())
}

func TestMessageUseCase_Thread(t *testing.T) {
	uc, _, customerRepo := newMessageUC(t)
	ctx := context.Background()

	require.NoError(t, customerRepo.Create(ctx, &domain.Customer{ID: "cust-1", OwnerID: "owner-1", Name: "Anita"}))

	for _, body := range []string{"first", "second", "third"} {
		_, err := uc.SendMessage(ctx, usecase.SendMessageInput{
			OwnerID: "owner-1", CustomerID: "cust-1",
			Sender: domain.RoleOwner, Body: body,
		})
		require.NoError(t, err)
	}

	thread, err := uc.Thread(ctx, usecase.ThreadInput{OwnerID: "owner-1", CustomerID: "cust-1"})
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, "first", thread[0].Body)
	assert.Equal(t, "third", thread[2].Body)

	// The support thread is separate from customer threads.
	support, err := uc.Thread(ctx, usecase.ThreadInput{OwnerID: "owner-1"})
	require.NoError(t, err)
	assert.Empty(t, support)
}

func TestMessageUseCase_MarkRead(t *testing.T) {
	uc, messageRepo, _ := newMessageUC(t)
	ctx := context.Background()

	msg, err := uc.SendMessage(ctx, usecase.SendMessageInput{
		OwnerID: "owner-1", Sender: domain.RoleAdmin, Body: "hello",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.MarkRead(ctx, "owner-2", msg.ID), domain.ErrMessageNotFound)

	require.NoError(t, uc.MarkRead(ctx, "owner-1", msg.ID))
	stored, err := messageRepo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, stored.Read)
}
