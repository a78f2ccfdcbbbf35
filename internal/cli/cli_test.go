package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/gloww/internal/content"
	"github.com/terraincognita07/gloww/internal/db"
	"github.com/terraincognita07/gloww/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func openTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "gloww-cli.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db.NewRepositories(database)
}

func scriptedPrompt(answers ...string) PromptFunc {
	return func(string) (string, error) {
		if len(answers) == 0 {
			return "", errors.New("no more answers")
		}
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
}

func TestSetPasscodeStoresConfirmedPasscode(t *testing.T) {
	repos := openTestRepositories(t)
	lock := services.NewLockServiceWithCost(repos.Settings, bcrypt.MinCost)

	var out bytes.Buffer
	if err := setPasscode(lock, scriptedPrompt("4821", "4821"), &out); err != nil {
		t.Fatalf("setPasscode() unexpected error: %v", err)
	}
	if err := lock.Verify("4821"); err != nil {
		t.Fatalf("expected stored passcode to verify, got %v", err)
	}
	if !strings.Contains(out.String(), "Passcode updated") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestSetPasscodeRejectsMismatchAndInvalidInput(t *testing.T) {
	repos := openTestRepositories(t)
	lock := services.NewLockServiceWithCost(repos.Settings, bcrypt.MinCost)

	err := setPasscode(lock, scriptedPrompt("4821", "4822"), &bytes.Buffer{})
	if !errors.Is(err, ErrPasscodeConfirmation) {
		t.Fatalf("expected ErrPasscodeConfirmation, got %v", err)
	}

	err = setPasscode(lock, scriptedPrompt("ab"), &bytes.Buffer{})
	if !errors.Is(err, services.ErrInvalidPasscode) {
		t.Fatalf("expected ErrInvalidPasscode, got %v", err)
	}

	enabled, err := lock.Enabled()
	if err != nil {
		t.Fatalf("Enabled() unexpected error: %v", err)
	}
	if enabled {
		t.Fatal("expected no passcode after rejected input")
	}
}

func TestResetPasscodePrintsWorkingTemporaryPasscode(t *testing.T) {
	repos := openTestRepositories(t)
	lock := services.NewLockServiceWithCost(repos.Settings, bcrypt.MinCost)
	if err := lock.SetPasscode("1111"); err != nil {
		t.Fatalf("SetPasscode() unexpected error: %v", err)
	}

	var out bytes.Buffer
	if err := resetPasscode(lock, &out); err != nil {
		t.Fatalf("resetPasscode() unexpected error: %v", err)
	}

	var temporary string
	for _, line := range strings.Split(out.String(), "\n") {
		if value, ok := strings.CutPrefix(line, "Temporary passcode: "); ok {
			temporary = value
		}
	}
	if len(temporary) != services.TemporaryPasscodeLength {
		t.Fatalf("expected %d digit temporary passcode, got %q", services.TemporaryPasscodeLength, temporary)
	}
	if err := lock.Verify(temporary); err != nil {
		t.Fatalf("expected temporary passcode to verify, got %v", err)
	}
	if err := lock.Verify("1111"); !errors.Is(err, services.ErrPasscodeMismatch) {
		t.Fatalf("expected old passcode to stop working, got %v", err)
	}
}

func TestPrintForecast(t *testing.T) {
	repos := openTestRepositories(t)
	wellness := services.NewWellnessService(
		repos.Profiles,
		repos.Periods,
		repos.SymptomEvents,
		repos.Conditions,
		repos.OrganHealth,
		content.Default(),
		30,
	)
	now := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	var empty bytes.Buffer
	if err := PrintForecast(wellness, now, &empty); err != nil {
		t.Fatalf("PrintForecast() unexpected error: %v", err)
	}
	if !strings.Contains(empty.String(), "log at least two periods") || !strings.Contains(empty.String(), "no period logged yet") {
		t.Fatalf("unexpected empty forecast %q", empty.String())
	}

	for _, start := range []string{"2024-01-01", "2024-01-29"} {
		if _, err := wellness.LogPeriod(services.PeriodInput{StartDate: start}, now); err != nil {
			t.Fatalf("LogPeriod(%s) unexpected error: %v", start, err)
		}
	}

	var out bytes.Buffer
	if err := PrintForecast(wellness, now, &out); err != nil {
		t.Fatalf("PrintForecast() unexpected error: %v", err)
	}
	for _, want := range []string{
		"Next period:     2024-02-26 (in 21 days)",
		"Next ovulation:  2024-02-12 (in 7 days)",
		"Confidence:      85% (regular)",
		"Current phase:   follicular, day 7 of 28",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in forecast:\n%s", want, out.String())
		}
	}
}

func TestReadSecretLine(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unix newline", input: "4821\nrest", want: "4821"},
		{name: "windows newline", input: "4821\r\n", want: "4821"},
		{name: "no newline", input: "4821", want: "4821"},
		{name: "empty", input: "", want: ""},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := readSecretLine(strings.NewReader(testCase.input))
			if err != nil {
				t.Fatalf("readSecretLine() unexpected error: %v", err)
			}
			if got != testCase.want {
				t.Fatalf("readSecretLine() = %q, want %q", got, testCase.want)
			}
		})
	}

	if _, err := readSecretLine(strings.NewReader(strings.Repeat("9", maxPromptLineLength+10))); !errors.Is(err, errPromptLineTooLong) {
		t.Fatalf("expected errPromptLineTooLong, got %v", err)
	}
}
