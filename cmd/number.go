package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoicegen/internal/logger"
)

var numberCmd = &cobra.Command{
	Use:   "number",
	Short: "Assign a new random invoice number",
	Args:  cobra.NoArgs,
	RunE:  runNumber,
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Set the invoice date to today",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current invoice and start a new one",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(numberCmd, todayCmd, resetCmd)
}

func runNumber(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	number, err := s.RegenerateNumber(cmd.Context())
	if err != nil {
		return err
	}
	log := logger.WithComponent("number")
	log.Info().Str("invoice_number", number).Msg("Invoice number regenerated")
	fmt.Fprintln(cmd.OutOrStdout(), number)
	return nil
}

func runToday(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	date, err := s.SetToday(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), date)
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	if err := s.Reset(cmd.Context()); err != nil {
		return err
	}
	inv := s.Invoice()
	log := logger.WithComponent("reset")
	log.Info().Str("invoice_number", inv.InvoiceNumber).Msg("Invoice reset")
	fmt.Fprintf(cmd.OutOrStdout(), "New invoice %s dated %s\n", inv.InvoiceNumber, inv.InvoiceDate)
	return nil
}
