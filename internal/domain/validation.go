package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
	ErrPasswordTooWeak = errors.New("password does not meet requirements")
)

// Validation constants
const (
	MaxNameLength        = 100
	MinNameLength        = 1
	MaxDescriptionLength = 500
	MaxEntryAmount       = "10000000000" // 10 billion
	MinPasswordLength    = 8
	MaxPasswordLength    = 128
	MinPortalCodeLength  = 4
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// ValidateName validates a customer or business name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePhone validates a phone number: optional leading +, 7-15 digits.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)

	if !phoneRegex.MatchString(phone) {
		return ErrInvalidPhone
	}

	return nil
}

// ValidateAmount validates an entry amount at the write boundary. Zero or
// negative amounts never reach the aggregator.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxEntryAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxEntryAmount)
	}

	return nil
}

// ValidatePassword validates password strength.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooWeak, MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must not exceed %d characters", ErrPasswordTooWeak, MaxPasswordLength)
	}

	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasUpper || !hasLower || !hasNumber {
		return fmt.Errorf("%w: must contain uppercase, lowercase, and numbers", ErrPasswordTooWeak)
	}

	return nil
}

// NormalizeDescription trims a transaction description and substitutes
// the NONE sentinel when blank. Over-long descriptions are truncated.
func NormalizeDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return DescriptionNone
	}
	return TruncateRunes(desc, MaxDescriptionLength)
}

// TruncateRunes cuts s to at most n runes. Cutting on rune boundaries
// keeps truncated text valid UTF-8.
func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// ValidateDescriptionRequired rejects blank descriptions. Cashbook
// entries, unlike transactions, require one.
func ValidateDescriptionRequired(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// ValidatePagination clamps pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 500
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
