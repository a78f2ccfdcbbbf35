// Package cli implements the offline maintenance commands that work directly
// on the SQLite database.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/gloww/internal/db"
	"github.com/terraincognita07/gloww/internal/services"
)

var ErrPasscodeConfirmation = errors.New("passcodes do not match")

// PromptFunc reads one secret line after printing label.
type PromptFunc func(label string) (string, error)

// TerminalPrompt reads from stdin with echo disabled.
func TerminalPrompt(stdin *os.File, out io.Writer) PromptFunc {
	return func(label string) (string, error) {
		fmt.Fprint(out, label)
		passcode, err := readPasscodeNoEcho(stdin)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read passcode: %w", err)
		}
		return passcode, nil
	}
}

func RunSetPasscodeCommand(dbPath string, prompt PromptFunc, out io.Writer) error {
	lock, err := openLockService(dbPath)
	if err != nil {
		return err
	}
	return setPasscode(lock, prompt, out)
}

func RunResetPasscodeCommand(dbPath string, out io.Writer) error {
	lock, err := openLockService(dbPath)
	if err != nil {
		return err
	}
	return resetPasscode(lock, out)
}

func setPasscode(lock *services.LockService, prompt PromptFunc, out io.Writer) error {
	first, err := prompt("New passcode: ")
	if err != nil {
		return err
	}
	if err := services.ValidatePasscode(first); err != nil {
		return err
	}
	second, err := prompt("Repeat passcode: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(first) != strings.TrimSpace(second) {
		return ErrPasscodeConfirmation
	}

	if err := lock.SetPasscode(first); err != nil {
		return fmt.Errorf("store passcode: %w", err)
	}
	fmt.Fprintln(out, "Passcode updated. The app now asks for it on every new session.")
	return nil
}

func resetPasscode(lock *services.LockService, out io.Writer) error {
	temporary, err := lock.ResetPasscode()
	if err != nil {
		return fmt.Errorf("reset passcode: %w", err)
	}
	fmt.Fprintln(out, "Passcode reset successful")
	fmt.Fprintf(out, "Temporary passcode: %s\n", temporary)
	fmt.Fprintln(out, "Change it from the app settings after unlocking.")
	return nil
}

func openLockService(dbPath string) (*services.LockService, error) {
	database, err := db.OpenSQLite(dbPath, nil)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	return services.NewLockService(db.NewSettingsRepository(database)), nil
}
