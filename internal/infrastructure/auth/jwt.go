package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
)

// Claims represents the JWT claims. Owner and admin tokens carry UserID;
// portal tokens carry CustomerID plus the customer's OwnerID instead.
type Claims struct {
	UserID     string      `json:"user_id,omitempty"`
	Email      string      `json:"email,omitempty"`
	Role       domain.Role `json:"role"`
	CustomerID string      `json:"customer_id,omitempty"`
	OwnerID    string      `json:"owner_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager manages JWT token creation and validation
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// Generate generates a new JWT token for an owner or admin account
func (m *JWTManager) Generate(user *domain.User) (string, error) {
	return m.sign(Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
}

// GeneratePortal generates a portal token for a customer
func (m *JWTManager) GeneratePortal(customer *domain.Customer) (string, error) {
	return m.sign(Claims{
		Role:       domain.RoleCustomer,
		CustomerID: customer.ID,
		OwnerID:    customer.OwnerID,
	})
}

func (m *JWTManager) sign(claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify verifies a JWT token and returns the claims
func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			// Validate signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, domain.ErrExpiredToken
	}

	return claims, nil
}
