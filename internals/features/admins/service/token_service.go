package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const AccessTokenTTL = 24 * time.Hour

// IssueAdminToken membuat JWT HS256 berisi identitas admin.
func IssueAdminToken(secret string, id Identity, ttl time.Duration) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	if ttl <= 0 {
		ttl = AccessTokenTTL
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      id.ID.String(),
		"username": id.Username,
		"role":     id.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAdminToken memvalidasi signature + exp dan mengembalikan identitas.
func ParseAdminToken(secret, tokenString string) (Identity, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, errors.New("token invalid")
	}

	sub, _ := claims["sub"].(string)
	adminID, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, errors.New("token tanpa subject valid")
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return Identity{ID: adminID, Username: username, Role: role}, nil
}
