// Package auth issues and validates session tokens for the single
// back-office admin account.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrMissingToken       = errors.New("authorization token required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Manager signs and validates the admin session token.
type Manager struct {
	secretKey     []byte
	tokenDuration time.Duration

	adminEmail   string
	adminPwdHash string
}

// Claims is the session token payload.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewManager(secretKey string, tokenDuration time.Duration, adminEmail, adminPwdHash string) *Manager {
	return &Manager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		adminEmail:    adminEmail,
		adminPwdHash:  adminPwdHash,
	}
}

// Login verifies the admin credentials and returns a signed session token.
// The bcrypt comparison runs even for a wrong email so both failure modes
// take about the same time.
func (m *Manager) Login(email, password string) (string, error) {
	hash := m.adminPwdHash
	if email != m.adminEmail {
		hash = "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva"
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if email != m.adminEmail {
		return "", ErrInvalidCredentials
	}

	return m.generate(email)
}

func (m *Manager) generate(email string) (string, error) {
	now := time.Now()

	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Validate parses the token and returns its claims when the signature and
// expiry check out.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}

			return m.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// HashPassword produces the bcrypt hash to put in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hash), nil
}
