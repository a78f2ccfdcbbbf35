package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const sessionScope = "app-unlock"

type sessionClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildSessionToken(now time.Time) (string, error) {
	claims := sessionClaims{
		Scope: sessionScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "gloww",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseSessionToken(raw string) error {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	}, jwt.WithTimeFunc(handler.now))
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}
	if claims.Scope != sessionScope {
		return errors.New("invalid token scope")
	}
	return nil
}

func (handler *Handler) authenticateSession(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies(sessionCookieName))
	if raw == "" {
		return errors.New("missing session cookie")
	}
	return handler.parseSessionToken(raw)
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx) error {
	now := handler.now()
	token, err := handler.buildSessionToken(now)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		Expires:  now.Add(sessionTokenTTL),
	})
	return nil
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
