package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"invoicegen/internal/logger"
	"invoicegen/internal/pdf"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the invoice as a PDF file",
	Long: `Render the current invoice as an A4 PDF named after the invoice number,
e.g. Invoice_INV-4821.pdf. Long item tables continue on further pages with
the table header repeated, and every page carries "Page i of N".`,
	Example: `  invoicegen export
  invoicegen export -o ~/invoices`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "Output directory (default: $INVOICE_OUTPUT_DIR or .)")
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("export")

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	startTime := time.Now()
	name, data, err := s.Export(pdf.NewGenerator())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to write PDF")
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	log.Info().
		Str("path", path).
		Int("bytes", len(data)).
		Str("total", s.Total()).
		Dur("duration", time.Since(startTime)).
		Msg("Invoice exported")

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
