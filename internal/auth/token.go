package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleContractor = "contractor"
	RoleValidator  = "validator"
)

var ErrInvalidToken = errors.New("invalid token")

// Principal identifies the acting contractor or validator for a request.
type Principal struct {
	ID   uuid.UUID
	Role string
}

func (p Principal) IsValidator() bool  { return p.Role == RoleValidator }
func (p Principal) IsContractor() bool { return p.Role == RoleContractor }

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

func (t *Tokens) Issue(id uuid.UUID, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	return token.SignedString(t.secret)
}

func (t *Tokens) Parse(raw string) (Principal, error) {
	var parsed claims
	token, err := jwt.ParseWithClaims(raw, &parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}
	id, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}
	if parsed.Role != RoleContractor && parsed.Role != RoleValidator {
		return Principal{}, ErrInvalidToken
	}
	return Principal{ID: id, Role: parsed.Role}, nil
}
