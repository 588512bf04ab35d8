package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invoicegen/internal/logger"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage line items",
	Long: `Add, remove, edit and list the line items of the invoice.

Items are addressed by their id or any unique prefix of it, as printed by
"invoicegen item list". Editing quantity or price recomputes the amount when
both parse as numbers; editing amount sets it verbatim.`,
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an empty line item",
	Args:  cobra.NoArgs,
	RunE:  runItemAdd,
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a line item (the last item is never removed)",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemRemove,
}

var itemSetCmd = &cobra.Command{
	Use:   "set <id> <field> <value>",
	Short: "Edit description, quantity, price or amount of a line item",
	Example: `  invoicegen item set 0b7e quantity 2
  invoicegen item set 0b7e price 1.500.000
  invoicegen item set 0b7e amount "IDR 250.000"`,
	Args: cobra.ExactArgs(3),
	RunE: runItemSet,
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List line items with their ids",
	Args:  cobra.NoArgs,
	RunE:  runItemList,
}

func init() {
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemAddCmd, itemRemoveCmd, itemSetCmd, itemListCmd)
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("item")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	it, err := s.AddItem(cmd.Context())
	if err != nil {
		return err
	}

	log.Info().Str("item_id", it.ID).Msg("Item added")
	fmt.Fprintln(cmd.OutOrStdout(), it.ID)
	return nil
}

func runItemRemove(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("item")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	id, err := s.ResolveItem(args[0])
	if err != nil {
		return err
	}
	removed, err := s.RemoveItem(cmd.Context(), id)
	if err != nil {
		return err
	}
	if !removed {
		log.Warn().Str("item_id", id).Msg("Last item kept")
		fmt.Fprintln(cmd.OutOrStdout(), "The invoice needs at least one item; nothing removed.")
		return nil
	}

	log.Info().Str("item_id", id).Msg("Item removed")
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
	return nil
}

func runItemSet(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("item")
	field, value := args[1], args[2]

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	id, err := s.ResolveItem(args[0])
	if err != nil {
		return err
	}
	if _, err := s.UpdateItem(cmd.Context(), id, field, value); err != nil {
		return err
	}

	it, _ := s.Invoice().Item(id)
	log.Info().
		Str("item_id", id).
		Str("field", field).
		Str("amount_mode", string(it.AmountMode)).
		Msg("Item updated")
	fmt.Fprintf(cmd.OutOrStdout(), "amount = %q (%s)\ntotal  = %s\n", it.Amount, it.AmountMode, s.Total())
	return nil
}

func runItemList(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESCRIPTION\tQUANTITY\tPRICE\tAMOUNT\tMODE")
	for _, it := range s.Invoice().Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID, it.Description, it.Quantity, it.Price, it.Amount, it.AmountMode)
	}
	fmt.Fprintf(tw, "\t\t\t\tTotal\t%s\n", s.Total())
	return tw.Flush()
}
