package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/metrics"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
)

// CashbookUseCase handles income/expense cashbook business logic.
type CashbookUseCase struct {
	cashbookRepo CashbookRepository
	activityRepo ActivityRepository
	cache        Cache
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewCashbookUseCase creates a new CashbookUseCase.
func NewCashbookUseCase(
	cashbookRepo CashbookRepository,
	activityRepo ActivityRepository,
	cache Cache,
	idGen IDGenerator,
) *CashbookUseCase {
	return &CashbookUseCase{
		cashbookRepo: cashbookRepo,
		activityRepo: activityRepo,
		cache:        cache,
		idGen:        idGen,
	}
}

// WithMetrics attaches business metrics recording.
func (uc *CashbookUseCase) WithMetrics(m *metrics.Metrics) *CashbookUseCase {
	uc.metrics = m
	return uc
}

// CreateCashbookEntryInput represents input for recording a cashbook line.
type CreateCashbookEntryInput struct {
	OwnerID     string
	Kind        ledger.Kind
	Amount      decimal.Decimal
	Description string
	OccurredOn  time.Time
}

// CreateEntry records an income or expense line. Unlike transactions,
// cashbook entries require a description.
func (uc *CashbookUseCase) CreateEntry(ctx context.Context, input CreateCashbookEntryInput) (*domain.CashbookEntry, error) {
	if !domain.IsCashbookKind(input.Kind) {
		return nil, domain.ErrInvalidKind
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := domain.ValidateDescriptionRequired(input.Description); err != nil {
		return nil, err
	}
	if input.OccurredOn.IsZero() {
		return nil, domain.ErrMissingOccurredOn
	}

	now := time.Now().UTC()
	entry := &domain.CashbookEntry{
		ID:          uc.idGen.Generate(),
		OwnerID:     input.OwnerID,
		Kind:        input.Kind,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		OccurredOn:  ledger.DateOf(input.OccurredOn),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.cashbookRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.invalidateDashboard(ctx, input.OwnerID)

	if uc.metrics != nil {
		uc.metrics.CashbookEntries.WithLabelValues(string(entry.Kind)).Inc()
	}

	if err := uc.recordActivity(ctx, input.OwnerID, domain.ActivityCashbookCreate, entry.ID); err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateCashbookEntryInput represents input for updating a cashbook line.
// Nil fields are left unchanged.
type UpdateCashbookEntryInput struct {
	OwnerID     string
	EntryID     string
	Kind        *ledger.Kind
	Amount      *decimal.Decimal
	Description *string
	OccurredOn  *time.Time
}

// UpdateEntry updates a cashbook line in place.
func (uc *CashbookUseCase) UpdateEntry(ctx context.Context, input UpdateCashbookEntryInput) (*domain.CashbookEntry, error) {
	entry, err := uc.getOwned(ctx, input.OwnerID, input.EntryID)
	if err != nil {
		return nil, err
	}

	if input.Kind != nil {
		if !domain.IsCashbookKind(*input.Kind) {
			return nil, domain.ErrInvalidKind
		}
		entry.Kind = *input.Kind
	}
	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return nil, err
		}
		entry.Amount = *input.Amount
	}
	if input.Description != nil {
		if err := domain.ValidateDescriptionRequired(*input.Description); err != nil {
			return nil, err
		}
		entry.Description = strings.TrimSpace(*input.Description)
	}
	if input.OccurredOn != nil {
		if input.OccurredOn.IsZero() {
			return nil, domain.ErrMissingOccurredOn
		}
		entry.OccurredOn = ledger.DateOf(*input.OccurredOn)
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.cashbookRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	uc.invalidateDashboard(ctx, input.OwnerID)

	if err := uc.recordActivity(ctx, input.OwnerID, domain.ActivityCashbookUpdate, entry.ID); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry hard-deletes a cashbook line.
func (uc *CashbookUseCase) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	if _, err := uc.getOwned(ctx, ownerID, entryID); err != nil {
		return err
	}

	if err := uc.cashbookRepo.Delete(ctx, entryID); err != nil {
		return err
	}

	uc.invalidateDashboard(ctx, ownerID)

	return uc.recordActivity(ctx, ownerID, domain.ActivityCashbookDelete, entryID)
}

// ListEntriesInput represents input for listing cashbook lines.
type ListEntriesInput struct {
	OwnerID string
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

// ListEntries lists cashbook lines, optionally restricted to an
// inclusive date window.
func (uc *CashbookUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.CashbookEntry, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.cashbookRepo.ListByOwner(ctx, input.OwnerID, input.From, input.To, limit, offset)
}

// CashbookSummary is the income/expense overview for a period. Net
// positive means profit, negative means loss.
type CashbookSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetBalance   decimal.Decimal
	IncomeCount  int
	ExpenseCount int
	TotalEntries int
}

// Summary aggregates the owner's cashbook over an optional inclusive
// date window.
func (uc *CashbookUseCase) Summary(ctx context.Context, ownerID string, from, to *time.Time) (*CashbookSummary, error) {
	entries, err := uc.cashbookRepo.ListAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary, err := ledger.Summarize(domain.CashbookLedgerEntries(entries), ledger.Window{From: from, To: to})
	if err != nil {
		return nil, err
	}

	return &CashbookSummary{
		TotalIncome:  summary.Total(ledger.KindIncome),
		TotalExpense: summary.Total(ledger.KindExpense),
		NetBalance:   summary.Net,
		IncomeCount:  summary.Counts[ledger.KindIncome],
		ExpenseCount: summary.Counts[ledger.KindExpense],
		TotalEntries: summary.Count,
	}, nil
}

func (uc *CashbookUseCase) getOwned(ctx context.Context, ownerID, entryID string) (*domain.CashbookEntry, error) {
	entry, err := uc.cashbookRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.OwnerID != ownerID {
		return nil, domain.ErrCashbookEntryNotFound
	}
	return entry, nil
}

func (uc *CashbookUseCase) recordActivity(ctx context.Context, ownerID string, action domain.ActivityAction, resourceID string) error {
	if uc.metrics != nil {
		uc.metrics.ActivitiesRecorded.WithLabelValues(string(action)).Inc()
	}

	return uc.activityRepo.Create(ctx, &domain.Activity{
		ID:           uc.idGen.Generate(),
		OwnerID:      ownerID,
		ActorRole:    domain.RoleOwner,
		Action:       action,
		ResourceType: "cashbook",
		ResourceID:   resourceID,
		CreatedAt:    time.Now().UTC(),
	})
}

func (uc *CashbookUseCase) invalidateDashboard(ctx context.Context, ownerID string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, dashboardCacheKey(ownerID))
	}
}
