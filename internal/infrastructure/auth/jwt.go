// Package auth provides the concrete password hashing and token signing
// implementations behind the core security ports.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

const (
	accessTokenTTL = time.Hour
	resetTokenTTL  = 20 * time.Minute
)

// JWTService signs and verifies HS256 tokens. Access and reset tokens use
// distinct secrets, so a leaked reset secret cannot forge access tokens and
// a stolen access token cannot be replayed as a reset token.
type JWTService struct {
	accessSecret string
	resetSecret  string
	accessTTL    time.Duration
	resetTTL     time.Duration
}

// NewJWTService builds a token service from the two configured secrets.
func NewJWTService(accessSecret, resetSecret string) (*JWTService, error) {
	if accessSecret == "" || resetSecret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if accessSecret == resetSecret {
		return nil, errors.New("access and reset secrets must differ")
	}
	return &JWTService{
		accessSecret: accessSecret,
		resetSecret:  resetSecret,
		accessTTL:    accessTokenTTL,
		resetTTL:     resetTokenTTL,
	}, nil
}

func (s *JWTService) IssueAccess(username string) (string, error) {
	return s.sign(jwt.MapClaims{"username": username}, s.accessSecret, s.accessTTL)
}

func (s *JWTService) IssueReset(email string) (string, error) {
	return s.sign(jwt.MapClaims{"email": email}, s.resetSecret, s.resetTTL)
}

func (s *JWTService) VerifyAccess(token string) (string, error) {
	return s.verify(token, s.accessSecret, "username")
}

func (s *JWTService) VerifyReset(token string) (string, error) {
	return s.verify(token, s.resetSecret, "email")
}

func (s *JWTService) sign(claims jwt.MapClaims, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// verify checks signature and expiry, then extracts the subject claim.
// Expiry is reported separately from every other failure so callers can
// tell an aged credential apart from a forged one.
func (s *JWTService) verify(token, secret, subjectClaim string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	subject, ok := claims[subjectClaim].(string)
	if !ok || subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return subject, nil
}
