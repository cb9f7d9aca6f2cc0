package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var errEmptyTicket = errors.New("input ticket is empty")

// readTicket loads and trims the ticket text.
func readTicket(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read ticket: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("ticket %s is not valid UTF-8", path)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errEmptyTicket
	}
	return text, nil
}

func writeDocument(path, document string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newSpinner returns nil when stderr is not a terminal; the progress helpers
// accept a nil spinner.
func newSpinner() *spinner.Spinner {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
}

func startSpinner(s *spinner.Spinner, suffix string) {
	if s == nil {
		return
	}
	s.Suffix = suffix
	s.Start()
}

func stopSpinner(s *spinner.Spinner) {
	if s != nil {
		s.Stop()
	}
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func printWarning(w io.Writer, msg string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(w, "! %s\n", msg)
}
