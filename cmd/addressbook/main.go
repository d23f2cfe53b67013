// main is the entry point of the address book driver.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Seed the address book from the configured contacts
//  4. Print every contact
//  5. Print the contacts to congratulate this week
//
// RUNNING:
//
//	go run ./cmd/addressbook --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/addressbook
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aanand-mishra/address-book/internal/addressbook"
	"github.com/aanand-mishra/address-book/internal/config"
	"github.com/aanand-mishra/address-book/internal/field"
	"github.com/aanand-mishra/address-book/internal/record"
	"github.com/aanand-mishra/address-book/internal/storage"
	"github.com/aanand-mishra/address-book/internal/utils/render"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Records report not-found phones through the default logger, so it is
	// replaced here as well.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting addressbook",
		slog.String("env", cfg.Env),
		slog.Int("contacts", len(cfg.Contacts)),
	)

	today, err := resolveToday(cfg.Today, time.Now)
	if err != nil {
		log.Error("invalid today", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// ── 3. Seed ───────────────────────────────────────────────────────────
	var store storage.Storage = addressbook.New(log)
	if err := seed(store, cfg.Contacts); err != nil {
		log.Error("failed to seed address book", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// ── 4 & 5. Report ─────────────────────────────────────────────────────
	if err := report(os.Stdout, cfg.Output, store, today); err != nil {
		log.Error("failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// seed builds one record per contact and stores it. The first invalid
// contact aborts seeding; a later contact with the same name replaces an
// earlier one.
func seed(store storage.Storage, contacts []config.Contact) error {
	for i, c := range contacts {
		r, err := record.New(c.Name)
		if err != nil {
			return fmt.Errorf("contact #%d: %w", i+1, err)
		}
		for _, p := range c.Phones {
			if err := r.AddPhone(p); err != nil {
				return fmt.Errorf("contact #%d: %w", i+1, err)
			}
		}
		if c.Birthday != "" {
			if err := r.AddBirthday(c.Birthday); err != nil {
				return fmt.Errorf("contact #%d: %w", i+1, err)
			}
		}
		store.AddRecord(r)
	}
	return nil
}

func report(w io.Writer, format string, store storage.Storage, today time.Time) error {
	if err := render.Records(w, format, store.Records()); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	if err := render.Congratulations(w, format, store.UpcomingBirthdays(today)); err != nil {
		return fmt.Errorf("writing upcoming birthdays: %w", err)
	}
	return nil
}

// resolveToday parses the configured date, falling back to now() when it is
// empty.
func resolveToday(configured string, now func() time.Time) (time.Time, error) {
	if configured == "" {
		return now(), nil
	}
	return time.ParseInLocation(field.DateLayout, configured, time.Local)
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
//
// Logs go to stderr so they never interleave with the report on stdout.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
}
