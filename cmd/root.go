package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"invoicegen/internal/config"
	"invoicegen/internal/logger"
	"invoicegen/internal/session"
	"invoicegen/internal/store"
)

var version = "1.0.0"

var (
	configFile string
	dataDir    string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "invoicegen",
	Short: "invoicegen - author invoices and export them as PDF",
	Long: `invoicegen keeps one invoice on disk and lets you edit it field by field:
parties, line items, payment and contact details. Every change is saved
immediately. When the invoice is ready, export renders a paginated A4 PDF.

Amounts use the Indonesian Rupiah style: "." groups thousands and "," starts
the decimals, e.g. IDR 1.500.000,5.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args)
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the invoice record (default: $INVOICE_DATA_DIR or ./.invoicegen)")
}

// setup loads configuration once flags are parsed and reconfigures logging.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if dataDir != "" {
		loaded.DataDir = dataDir
	}
	cfg = loaded

	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.WithComponent("cmd")
	log.Debug().
		Str("command", cmd.CommandPath()).
		Str("data_dir", cfg.DataDir).
		Msg("Configuration loaded")

	return nil
}

// openSession opens the session over the configured record.
func openSession(cmd *cobra.Command) (*session.Session, error) {
	repo := store.NewFileStore(cfg.DataDir, nil)
	return session.Open(cmd.Context(), repo)
}
