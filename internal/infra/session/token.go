package session

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
)

// ErrInvalidToken covers every well-formed token that does not carry a
// session: bad signature, expired, wrong algorithm, no subject.
var ErrInvalidToken = errors.New("session: invalid token")

const issuer = "pet-shop"

func IssueToken(secret []byte, userID string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken returns the user id the token was issued for. A value that is
// not three dot-separated segments is identity.ErrMalformedToken.
func ParseToken(secret []byte, raw string, now time.Time) (string, error) {
	if strings.Count(raw, ".") != 2 {
		return "", identity.ErrMalformedToken
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(
		raw,
		&claims,
		func(*jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
