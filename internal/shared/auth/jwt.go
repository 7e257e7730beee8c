package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "lm_session"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Claims is the payload of an admin session token.
type Claims struct {
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Verifier signs and verifies HS256 session tokens.
type Verifier struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewVerifier creates a verifier. ttl defaults to 12 hours when zero.
func NewVerifier(secret string, ttl time.Duration) *Verifier {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Verifier{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

type tokenHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Sign issues a token for email valid for the verifier's ttl.
func (v *Verifier) Sign(email string) (string, error) {
	if len(v.secret) == 0 {
		return "", errors.New("auth: empty signing secret")
	}
	now := v.now()
	claims := Claims{
		Email:     email,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(v.ttl).Unix(),
	}
	headerJSON, err := json.Marshal(tokenHeader{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", fmt.Errorf("auth: marshal header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("auth: marshal claims: %w", err)
	}
	enc := base64.RawURLEncoding
	signing := enc.EncodeToString(headerJSON) + "." + enc.EncodeToString(claimsJSON)
	return signing + "." + enc.EncodeToString(v.sign(signing)), nil
}

// Verify parses and validates a token, returning its claims.
func (v *Verifier) Verify(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrInvalidToken
	}
	enc := base64.RawURLEncoding
	signing := parts[0] + "." + parts[1]
	sig, err := enc.DecodeString(parts[2])
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	if !hmac.Equal(sig, v.sign(signing)) {
		return Claims{}, ErrInvalidToken
	}
	claimsJSON, err := enc.DecodeString(parts[1])
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}
	if claims.ExpiresAt > 0 && v.now().Unix() >= claims.ExpiresAt {
		return Claims{}, ErrExpiredToken
	}
	return claims, nil
}

func (v *Verifier) sign(signing string) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(signing))
	return mac.Sum(nil)
}
