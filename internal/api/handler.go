package api

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/gloww/internal/services"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "gloww_session"
	sessionTokenTTL   = 12 * time.Hour
)

type Handler struct {
	wellness      *services.WellnessService
	lock          *services.LockService
	logger        *zap.Logger
	secretKey     []byte
	location      *time.Location
	cookieSecure  bool
	now           func() time.Time
	unlockLimiter *attemptLimiter
}

type HandlerConfig struct {
	Wellness     *services.WellnessService
	Lock         *services.LockService
	Logger       *zap.Logger
	SecretKey    string
	Location     *time.Location
	CookieSecure bool
}

func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Wellness == nil {
		return nil, errors.New("wellness service is required")
	}
	if cfg.Lock == nil {
		return nil, errors.New("lock service is required")
	}
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("secret key is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		wellness:      cfg.Wellness,
		lock:          cfg.Lock,
		logger:        logger.Named("api"),
		secretKey:     []byte(cfg.SecretKey),
		location:      location,
		cookieSecure:  cfg.CookieSecure,
		now:           time.Now,
		unlockLimiter: newAttemptLimiter(unlockAttemptLimit, unlockAttemptWindow),
	}, nil
}

// today is the current instant in the configured location; services read
// its wall-clock date.
func (handler *Handler) today() time.Time {
	return handler.now().In(handler.location)
}
