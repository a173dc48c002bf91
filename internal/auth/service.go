package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/suwubh/saas-notes-app/internal/database/models"
	apperrors "github.com/suwubh/saas-notes-app/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Identity is the authenticated caller extracted from a verified token.
// It is the sole input to every note policy decision.
type Identity struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Email    string
	Role     models.Role
}

// IsAdmin reports whether the identity carries the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   string `json:"userId"`
	TenantID string `json:"tenantId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and validates bearer tokens and verifies passwords
type AuthService struct {
	secret      []byte
	tokenExpiry time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, expiryHours int) *AuthService {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &AuthService{
		secret:      []byte(secret),
		tokenExpiry: time.Duration(expiryHours) * time.Hour,
	}
}

// GenerateJWT creates a JWT token carrying the identity claims
func (s *AuthService) GenerateJWT(identity Identity) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   identity.UserID.String(),
		TenantID: identity.TenantID.String(),
		Email:    identity.Email,
		Role:     string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "saas-notes-app",
			Subject:   identity.UserID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// IdentityFromClaims builds an Identity from verified claims. It fails
// closed on any malformed or missing claim.
func IdentityFromClaims(claims *AuthClaims) (Identity, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, apperrors.ErrInvalidToken
	}
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return Identity{}, apperrors.ErrInvalidToken
	}
	role := models.Role(claims.Role)
	if !role.IsValid() {
		return Identity{}, apperrors.ErrInvalidToken
	}
	return Identity{
		UserID:   userID,
		TenantID: tenantID,
		Email:    claims.Email,
		Role:     role,
	}, nil
}

// HashPassword hashes a plain-text password with bcrypt
func (s *AuthService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plain-text password against a stored hash
func (s *AuthService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
