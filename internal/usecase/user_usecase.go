package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/metrics"
)

// UserUseCase handles owner and admin account management.
type UserUseCase struct {
	userRepo UserRepository
	idGen    IDGenerator
	metrics  *metrics.Metrics
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, idGen IDGenerator) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, idGen: idGen}
}

// WithMetrics attaches business metrics recording.
func (uc *UserUseCase) WithMetrics(m *metrics.Metrics) *UserUseCase {
	uc.metrics = m
	return uc
}

// RegisterInput represents input for registering an owner account.
type RegisterInput struct {
	Email        string
	Name         string
	BusinessName string
	Password     string
}

// Register creates a new owner account with a hashed password.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailAlreadyInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Email:          email,
		Name:           strings.TrimSpace(input.Name),
		BusinessName:   strings.TrimSpace(input.BusinessName),
		HashedPassword: string(hash),
		Role:           domain.RoleOwner,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.OwnersRegistered.Inc()
	}

	user.HashedPassword = ""
	return user, nil
}

// AuthenticateInput represents authentication input.
type AuthenticateInput struct {
	Email    string
	Password string
}

// Authenticate verifies account credentials.
func (uc *UserUseCase) Authenticate(ctx context.Context, input AuthenticateInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.countLogin("failure")
		return nil, domain.ErrUnauthorized
	}

	if !user.Active {
		uc.countLogin("failure")
		return nil, errors.New("user account is inactive")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)) != nil {
		uc.countLogin("failure")
		return nil, domain.ErrUnauthorized
	}

	uc.countLogin("success")

	user.HashedPassword = ""
	return user, nil
}

func (uc *UserUseCase) countLogin(outcome string) {
	if uc.metrics != nil {
		uc.metrics.LoginAttempts.WithLabelValues(outcome).Inc()
	}
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// UpdateUserInput represents input for updating a profile. Nil fields
// are left unchanged.
type UpdateUserInput struct {
	ID           string
	Name         *string
	BusinessName *string
	Password     *string
}

// UpdateUser updates profile information.
func (uc *UserUseCase) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.BusinessName != nil {
		user.BusinessName = strings.TrimSpace(*input.BusinessName)
	}
	if input.Password != nil {
		if err := domain.ValidatePassword(*input.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = string(hash)
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// ListOwners lists owner accounts. Admin-only; the handler enforces the
// role.
func (uc *UserUseCase) ListOwners(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	users, err := uc.userRepo.List(ctx, domain.RoleOwner, limit, offset)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		user.HashedPassword = ""
	}

	return users, nil
}
