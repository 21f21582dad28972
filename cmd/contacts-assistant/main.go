// main is the entry point of the contacts assistant.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file, env overrides)
//  2. Initialise the logger
//  3. Open the storage backend (JSON file or SQLite)
//  4. Load the address book from storage
//  5. Run the interactive bot in a separate goroutine
//  6. Block until the bot exits or an OS signal (Ctrl+C / kill) arrives
//  7. Save the address book back to storage, then exit
//
// RUNNING THE ASSISTANT:
//
//	go run ./cmd/contacts-assistant
//
// or with explicit configuration:
//
//	STORAGE_BACKEND=sqlite STORAGE_PATH=contacts.db go run ./cmd/contacts-assistant
//	go run ./cmd/contacts-assistant --config=config/local.yaml
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aanand-mishra/contacts-assistant/internal/bot"
	"github.com/aanand-mishra/contacts-assistant/internal/config"
	"github.com/aanand-mishra/contacts-assistant/internal/storage"
	"github.com/aanand-mishra/contacts-assistant/internal/storage/jsonfile"
	"github.com/aanand-mishra/contacts-assistant/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Logs go to STDERR, not stdout — stdout belongs to the bot's
	// conversation with the user.
	log := setupLogger(cfg.Env)

	log.Info("starting contacts-assistant",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Storage.Backend),
	)

	// ── 3. Open Storage ───────────────────────────────────────────────────
	// Both backends satisfy the storage.Storage interface; everything
	// below this switch is backend-agnostic.
	var store storage.Storage
	switch cfg.Storage.Backend {
	case "sqlite":
		db, err := sqlite.New(cfg.Storage.Path)
		if err != nil {
			log.Error("failed to open sqlite storage",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		store = db
	case "file":
		store = jsonfile.New(cfg.Storage.Path)
	default:
		log.Error("unknown storage backend",
			slog.String("backend", cfg.Storage.Backend))
		os.Exit(1)
	}

	// ── 4. Load the Address Book ──────────────────────────────────────────
	// A missing file simply yields an empty book (first run). A corrupt
	// file is a hard failure: better to stop than to run against an
	// empty book and overwrite the user's data on exit.
	book, err := store.Load()
	if err != nil {
		log.Error("failed to load address book",
			slog.String("path", cfg.Storage.Path),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("address book loaded",
		slog.String("path", cfg.Storage.Path),
		slog.Int("contacts", book.Len()),
	)

	// ── 5. Run the Bot in a Goroutine ─────────────────────────────────────
	// The loop blocks on stdin, so it runs in its own goroutine and
	// signals completion over a channel — that leaves main free to also
	// watch for OS signals.
	finished := make(chan struct{})
	assistant := bot.New(book, log)

	go func() {
		if err := assistant.Run(os.Stdin, os.Stdout); err != nil {
			log.Error("bot stopped with an error",
				slog.String("error", err.Error()))
		}
		close(finished)
	}()

	// ── 6. Wait for Exit or Shutdown Signal ───────────────────────────────
	// Buffered channel of size 1 so the signal is not missed if main is
	// briefly busy. Ctrl+C must NOT lose the session's changes — it
	// falls through to the same save as a normal "exit".
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-finished:
	case sig := <-done:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	// ── 7. Save the Address Book ──────────────────────────────────────────
	if err := store.Save(book); err != nil {
		log.Error("failed to save address book",
			slog.String("path", cfg.Storage.Path),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("address book saved",
		slog.String("path", cfg.Storage.Path),
		slog.Int("contacts", book.Len()),
	)
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
