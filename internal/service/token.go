package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const AccessTokenTTL = time.Hour

// TokenService signs and verifies the HS256 access tokens the gates rely
// on. Stateless: the identity descriptor the client supplies is embedded
// as-is in the claims.
type TokenService struct {
	Secret []byte
}

func (s *TokenService) Issue(identity map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(AccessTokenTTL).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

func (s *TokenService) Parse(raw string) (jwt.MapClaims, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !t.Valid {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("cannot parse claims")
	}
	return claims, nil
}
