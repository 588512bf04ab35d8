package cmd

import (
	"github.com/spf13/cobra"

	"invoicegen/internal/preview"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current invoice",
	Long: `Print every field of the current invoice, its items and the total.
Amounts marked with * were computed from quantity and price.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	return preview.Write(cmd.OutOrStdout(), s.Invoice())
}
