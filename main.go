package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/stimmie/aggregate"
	"github.com/danielhkuo/stimmie/catalog"
	"github.com/danielhkuo/stimmie/cliparse"
	"github.com/danielhkuo/stimmie/gateway"
	"github.com/danielhkuo/stimmie/report"
	"github.com/danielhkuo/stimmie/router"
	"github.com/danielhkuo/stimmie/store"
	"github.com/danielhkuo/stimmie/survey"
)

func main() {
	var cfg cliparse.Config

	root := &cobra.Command{
		Use:          "stimmie",
		Short:        "Member survey service",
		Long:         "Stimmie collects member survey responses and summarizes them.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliparse.LoadEnvFile(".env"); err != nil {
				return fmt.Errorf("loading .env: %w", err)
			}
			resolved, err := cliparse.Resolve(cfg)
			if err != nil {
				return err
			}
			cfg = resolved

			level, _ := cfg.SlogLevel()
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	cliparse.BindFlags(root.PersistentFlags(), &cfg)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the survey API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}

	var asJSON bool
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the aggregate results of every response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.Context(), cfg, cmd.OutOrStdout(), asJSON)
		},
	}
	summaryCmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")

	var direct bool
	submitCmd := &cobra.Command{
		Use:   "submit <answers.yaml>",
		Short: "Fill in and submit the survey from an answers file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd.Context(), cfg, args[0], direct, cmd.OutOrStdout())
		},
	}
	submitCmd.Flags().BoolVar(&direct, "direct", false, "Write to the database instead of the API")

	root.AddCommand(serveCmd, summaryCmd, submitCmd)

	if err := root.ExecuteContext(context.Background()); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func loadCatalog(cfg cliparse.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogPath)
}

func runServe(cfg cliparse.Config) error {
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// Connect and create schema
	st, err := store.Open(context.Background(), cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		return err
	}
	defer st.Close()
	slog.Info("Database ready", "type", cfg.DatabaseType)

	server := http.Server{
		Handler: router.NewHandler(st, cat),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		return err
	}
	slog.Info("Server closed")
	return nil
}

func runSummary(ctx context.Context, cfg cliparse.Config, out io.Writer, asJSON bool) error {
	primary := gateway.NewHTTP(cfg.APIURL, cfg.Timeout)
	defer primary.Close()

	cache, err := gateway.OpenCache(cfg.CacheDir)
	if err != nil {
		slog.Warn("Snapshot cache unavailable", "dir", cfg.CacheDir, "error", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	result, err := gateway.NewResilient(primary, cache, gateway.NewStatic(cfg.FallbackPath)).Fetch(ctx)
	if err != nil {
		return err
	}
	summary := aggregate.Summarize(result.Records)

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	return report.Render(out, summary, report.Options{Notice: result.Notice()})
}

func runSubmit(ctx context.Context, cfg cliparse.Config, path string, direct bool, out io.Writer) error {
	answers, err := survey.LoadAnswers(path)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	var writer gateway.Writer
	if direct {
		if err := cfg.RequireDatabase(); err != nil {
			return err
		}
		st, err := store.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()
		writer = st
	} else {
		gw := gateway.NewHTTP(cfg.APIURL, cfg.Timeout)
		defer gw.Close()
		writer = gw
	}

	c := survey.New(writer, cat)
	if err := survey.Complete(ctx, c, answers); err != nil {
		if notice := c.Notice(); notice != "" {
			fmt.Fprintln(out, notice)
		}
		return fmt.Errorf("stopped at %s: %w", c.Step(), err)
	}

	fmt.Fprintln(out, "Thanks! Your response has been recorded.")
	return nil
}
