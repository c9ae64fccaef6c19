// Package auth issues and checks the short-lived tokens attached to
// document download links served by the local storage provider.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"salesdesk/internal/domain"
)

type downloadClaims struct {
	Key string `json:"key"`
	jwt.RegisteredClaims
}

// Signer mints and verifies HS256 download tokens bound to one object key.
type Signer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewSigner(secret string, expiry time.Duration) *Signer {
	return &Signer{secret: []byte(secret), expiry: expiry, now: time.Now}
}

// Sign returns a token granting access to exactly one object key until the
// configured expiry.
func (s *Signer) Sign(key string) (string, error) {
	now := s.now()
	claims := downloadClaims{
		Key: key,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing download token: %w", err)
	}
	return signed, nil
}

// Verify checks the token and returns the object key it grants. Expired,
// tampered or foreign-algorithm tokens all come back as ErrDocumentToken.
func (s *Signer) Verify(tokenString string) (string, error) {
	claims := &downloadClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid || claims.Key == "" {
		return "", domain.ErrDocumentToken
	}
	return claims.Key, nil
}
