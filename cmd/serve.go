package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/abhisek/tutorloop/internal/api"
	"github.com/abhisek/tutorloop/internal/config"
	"github.com/abhisek/tutorloop/internal/curriculum"
	"github.com/abhisek/tutorloop/internal/examgen"
	"github.com/abhisek/tutorloop/internal/exams"
	"github.com/abhisek/tutorloop/internal/lessons"
	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/progress"
	"github.com/abhisek/tutorloop/internal/remediation"
	"github.com/abhisek/tutorloop/internal/store"
	"github.com/abhisek/tutorloop/internal/studentmodel"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe loads configuration, opens the store, wires the services and
// serves HTTP until SIGINT/SIGTERM.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		cfg.DBPath = p
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := st.Topics().UpsertAll(ctx, curriculum.Default()); err != nil {
		return fmt.Errorf("seed curriculum: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, st.Events())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}
	logger.Info("LLM provider ready", "provider", cfg.LLM.Provider, "model", provider.ModelID())

	progressSvc := progress.New(st.Topics(), st.Progress())
	generator := examgen.New(provider, examgen.DefaultConfig(),
		rand.New(rand.NewSource(time.Now().UnixNano())), logger)

	srv := &api.Server{
		Exams: exams.New(st.Sessions(), st.Questions(), st.StudentModels(),
			st.Topics(), progressSvc, generator, logger),
		Lessons: lessons.New(st.Sessions(), st.Questions(), st.StudentModels(),
			st.Topics(), st.Lessons(), st.Remediation(), provider, lessons.DefaultConfig()),
		Remediation: remediation.New(st.Sessions(), st.Questions(), st.StudentModels(),
			st.Topics(), st.Remediation(), provider, remediation.DefaultConfig()),
		StudentModel: studentmodel.New(st.Sessions(), st.Questions(), st.StudentModels(),
			st.Topics(), st.Remediation(), provider, studentmodel.DefaultConfig()),
		Progress: progressSvc,
		Topics:   st.Topics(),
		Students: st.StudentModels(),
		Logger:   logger,
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Lesson and remediation streams hold the response open while the
		// LLM generates, so the write timeout must cover a full generation.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", cfg.Addr, "db", cfg.DBPath)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
