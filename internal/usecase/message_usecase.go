package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/metrics"
)

// ErrEmptyMessage is returned when a message body is blank.
var ErrEmptyMessage = errors.New("message body cannot be empty")

// MaxMessageLength bounds a single message body.
const MaxMessageLength = 2000

// MessageUseCase handles support and customer messaging.
type MessageUseCase struct {
	messageRepo  MessageRepository
	customerRepo CustomerRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewMessageUseCase creates a new MessageUseCase.
func NewMessageUseCase(messageRepo MessageRepository, customerRepo CustomerRepository, idGen IDGenerator) *MessageUseCase {
	return &MessageUseCase{
		messageRepo:  messageRepo,
		customerRepo: customerRepo,
		idGen:        idGen,
	}
}

// WithMetrics attaches business metrics recording.
func (uc *MessageUseCase) WithMetrics(m *metrics.Metrics) *MessageUseCase {
	uc.metrics = m
	return uc
}

// SendMessageInput represents input for sending a message. CustomerID
// empty targets the owner-admin support thread.
type SendMessageInput struct {
	OwnerID    string
	CustomerID string
	Sender     domain.Role
	Body       string
}

// SendMessage appends a message to a thread.
func (uc *MessageUseCase) SendMessage(ctx context.Context, input SendMessageInput) (*domain.Message, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	body = domain.TruncateRunes(body, MaxMessageLength)
	if !input.Sender.IsValid() {
		return nil, domain.ErrForbidden
	}

	// A customer thread must reference a customer of this owner.
	if input.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(ctx, input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer.OwnerID != input.OwnerID {
			return nil, domain.ErrCustomerNotOwned
		}
	} else if input.Sender == domain.RoleCustomer {
		return nil, domain.ErrForbidden
	}

	msg := &domain.Message{
		ID:         uc.idGen.Generate(),
		OwnerID:    input.OwnerID,
		CustomerID: input.CustomerID,
		Sender:     input.Sender,
		Body:       body,
		Read:       false,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.MessagesSent.WithLabelValues(string(msg.Sender)).Inc()
	}

	return msg, nil
}

// ThreadInput represents input for listing a thread.
type ThreadInput struct {
	OwnerID    string
	CustomerID string
	Limit      int
	Offset     int
}

// Thread lists a conversation, oldest first.
func (uc *MessageUseCase) Thread(ctx context.Context, input ThreadInput) ([]*domain.Message, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.messageRepo.ListThread(ctx, input.OwnerID, input.CustomerID, limit, offset)
}

// MarkRead flags a message as read. Only a participant of the message's
// thread may mark it.
func (uc *MessageUseCase) MarkRead(ctx context.Context, ownerID, messageID string) error {
	msg, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.OwnerID != ownerID {
		return domain.ErrMessageNotFound
	}

	return uc.messageRepo.MarkRead(ctx, messageID)
}
