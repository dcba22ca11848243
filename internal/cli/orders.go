package cli

import (
	"fmt"
	"text/tabwriter"

	"storefront/internal/domain/entity"

	"github.com/spf13/cobra"
)

const orderDateLayout = "2006-01-02 15:04"

func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders and change their status",
	}

	cmd.AddCommand(newOrdersListCommand(rootOpts))
	cmd.AddCommand(newOrdersSetStatusCommand(rootOpts))

	return cmd
}

func newOrdersListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every order, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var orders []*entity.Order
			err := opts.withRuntime(cmd.Context(), func(rt *Runtime) error {
				var err error
				orders, err = rt.Admin.ListOrders(cmd.Context())

				return err
			})
			if err != nil {
				return err
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), orders)
			}

			return printOrders(cmd, orders)
		},
	}
}

func printOrders(cmd *cobra.Command, orders []*entity.Order) error {
	if len(orders) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No orders.")

		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INVOICE\tID\tUSER\tDATE\tITEMS\tTOTAL\tSTATUS")
	for _, order := range orders {
		fmt.Fprintf(w, "#%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			order.InvoiceNumber(),
			order.ID,
			order.UserID,
			order.OrderDate.UTC().Format(orderDateLayout),
			len(order.OrderItems),
			order.TotalAmount.StringFixed(2),
			order.Status,
		)
	}

	return w.Flush()
}

func newOrdersSetStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <orderID> <status>",
		Short: "Set an order's status (Pending, Processing, Delivered)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var order *entity.Order
			err := opts.withRuntime(cmd.Context(), func(rt *Runtime) error {
				var err error
				order, err = rt.Admin.UpdateOrderStatus(cmd.Context(), args[0], args[1])

				return err
			})
			if err != nil {
				return err
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), order)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order #%s is now %s\n", order.InvoiceNumber(), order.Status)

			return nil
		},
	}
}
