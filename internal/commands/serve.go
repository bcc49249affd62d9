package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/dashboard"
	"github.com/spendview-dev/spendview/internal/history"
)

func newServeCommand() *cobra.Command {
	var root string
	var addr string
	var open bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart dashboard for the history tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := loadConfig(absRoot)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Dashboard.Addr
			}
			if !cmd.Flags().Changed("open") {
				open = cfg.Dashboard.OpenBrowser
			}

			store := history.NewStore(absRoot, cfg.History.SpendingFile, cfg.History.IncomeExpensesFile)
			return runServe(store, addr, open)
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "project directory")
	cmd.Flags().StringVar(&addr, "addr", "localhost:8050", "listen address")
	cmd.Flags().BoolVar(&open, "open", true, "open the dashboard in a browser")

	return cmd
}

func runServe(store *history.Store, addr string, open bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	handler, err := dashboard.NewServer(store, logger)
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
		cancel()
	}()

	url := "http://" + addr
	if open {
		go func() {
			// Give the listener a moment before pointing a browser at it.
			time.Sleep(time.Second)
			dashboard.OpenBrowser(url)
		}()
	}

	logger.Info("serving dashboard", "url", url)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("dashboard server: %w", err)
	}

	<-ctx.Done()
	return nil
}
