package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"invoicegen/internal/invoice"
	"invoicegen/internal/logger"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set an invoice field",
	Long: `Set one top-level field of the invoice. The value replaces the old one
verbatim; an empty string clears it.

Fields:
  ` + strings.Join(invoice.FieldNames(), "\n  "),
	Example: `  invoicegen set billedToCompanyName "PT Sinar Jaya"
  invoicegen set billedToAddress "$(printf 'Jl. Merdeka 1\nJakarta')"
  invoicegen set invoiceDate 2024-05-02`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("set")
	field, value := args[0], args[1]

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	if err := s.SetField(cmd.Context(), field, value); err != nil {
		return err
	}

	log.Info().Str("field", field).Msg("Field updated")
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", field, value)
	return nil
}
