package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultReminderSchedule   = "0 9 * * *"
	DefaultReminderDaysBefore = 2

	telegramAPIBase     = "https://api.telegram.org"
	maxRemembered       = 500
	reminderDateDisplay = "Jan 2"
)

var ErrReminderSenderRequired = errors.New("reminder sender is required")

type ReminderSender interface {
	Send(ctx context.Context, message string) error
}

type ReminderConfig struct {
	Schedule   string
	DaysBefore int
	Ovulation  bool
	Location   *time.Location
}

// ReminderService checks the prediction on a cron schedule and pushes a
// message a few days before the next period and on predicted ovulation day.
// Each reminder is sent at most once per calendar day.
type ReminderService struct {
	periods    PeriodRepository
	sender     ReminderSender
	logger     *zap.Logger
	schedule   string
	daysBefore int
	ovulation  bool
	location   *time.Location
	now        func() time.Time

	mu        sync.Mutex
	sentDaily map[string]time.Time
	scheduler *cron.Cron
}

func NewReminderService(periods PeriodRepository, sender ReminderSender, config ReminderConfig, logger *zap.Logger) *ReminderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	schedule := strings.TrimSpace(config.Schedule)
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	daysBefore := config.DaysBefore
	if daysBefore < 0 {
		daysBefore = DefaultReminderDaysBefore
	}
	location := config.Location
	if location == nil {
		location = time.UTC
	}

	return &ReminderService{
		periods:    periods,
		sender:     sender,
		logger:     logger.Named("reminders"),
		schedule:   schedule,
		daysBefore: daysBefore,
		ovulation:  config.Ovulation,
		location:   location,
		now:        time.Now,
		sentDaily:  make(map[string]time.Time),
	}
}

// Start registers the check on the cron schedule. The scheduler stops when
// ctx is cancelled or Stop is called.
func (service *ReminderService) Start(ctx context.Context) error {
	if service.sender == nil {
		return ErrReminderSenderRequired
	}

	scheduler := cron.New(cron.WithLocation(service.location))
	if _, err := scheduler.AddFunc(service.schedule, func() {
		if err := service.Check(ctx, service.now()); err != nil {
			service.logger.Warn("reminder check failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", service.schedule, err)
	}

	service.mu.Lock()
	service.scheduler = scheduler
	service.mu.Unlock()

	scheduler.Start()
	service.logger.Info("reminder scheduler started",
		zap.String("schedule", service.schedule),
		zap.Int("days_before", service.daysBefore),
		zap.Bool("ovulation", service.ovulation),
	)

	go func() {
		<-ctx.Done()
		service.Stop()
	}()
	return nil
}

// Stop halts the scheduler and waits for a running check to finish.
func (service *ReminderService) Stop() {
	service.mu.Lock()
	scheduler := service.scheduler
	service.scheduler = nil
	service.mu.Unlock()

	if scheduler == nil {
		return
	}
	<-scheduler.Stop().Done()
}

// Check runs one reminder pass for now. Missing history is not an error.
func (service *ReminderService) Check(ctx context.Context, now time.Time) error {
	periods, err := service.periods.ListNewestFirst()
	if err != nil {
		return fmt.Errorf("load periods: %w", err)
	}

	today := CalendarDay(now.In(service.location))
	prediction, err := PredictNextPeriod(periods, today)
	if errors.Is(err, ErrInsufficientData) {
		return nil
	}
	if err != nil {
		return err
	}

	if DaysBetween(today, prediction.NextPeriodDate) == service.daysBefore {
		key := "period:" + FormatISODate(prediction.NextPeriodDate)
		message := fmt.Sprintf("Gloww reminder: your next period is expected in %d day(s), on %s.",
			service.daysBefore,
			prediction.NextPeriodDate.Format(reminderDateDisplay),
		)
		if err := service.deliver(ctx, key, today, message); err != nil {
			return err
		}
	}

	if service.ovulation && DaysBetween(today, prediction.NextOvulationDate) == 0 {
		key := "ovulation:" + FormatISODate(prediction.NextOvulationDate)
		message := fmt.Sprintf("Gloww reminder: today (%s) is your predicted ovulation day.",
			prediction.NextOvulationDate.Format(reminderDateDisplay),
		)
		if err := service.deliver(ctx, key, today, message); err != nil {
			return err
		}
	}
	return nil
}

func (service *ReminderService) deliver(ctx context.Context, key string, today time.Time, message string) error {
	if !service.shouldSend(key, today) {
		return nil
	}
	if err := service.sender.Send(ctx, message); err != nil {
		service.forget(key)
		return fmt.Errorf("send reminder: %w", err)
	}
	service.logger.Info("reminder sent", zap.String("key", key))
	return nil
}

func (service *ReminderService) shouldSend(key string, today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if sentOn, ok := service.sentDaily[key]; ok && sentOn.Equal(today) {
		return false
	}
	if len(service.sentDaily) >= maxRemembered {
		service.sentDaily = make(map[string]time.Time)
	}
	service.sentDaily[key] = today
	return true
}

func (service *ReminderService) forget(key string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.sentDaily, key)
}

type TelegramSender struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

func NewTelegramSender(botToken string, chatID string) *TelegramSender {
	return &TelegramSender{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  telegramAPIBase,
		client:   &http.Client{Timeout: 8 * time.Second},
	}
}

func (sender *TelegramSender) Send(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", sender.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(sender.baseURL, "/"), sender.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := sender.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
