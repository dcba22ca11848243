package cli

import (
	"os"

	"storefront/internal/errors"

	"github.com/spf13/cobra"
)

// InvoiceOptions holds flags for the invoice command.
type InvoiceOptions struct {
	*RootOptions
	UserID string
	Name   string
	Out    string
}

func NewInvoiceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InvoiceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "invoice <orderID>",
		Short: "Render an order's HTML invoice",
		Long: `Render the printable invoice for one of a customer's orders. The HTML is
written to stdout unless --out is given.

Examples:
  shopctl invoice abc123 --user u1 --name "Jane Doe" --out invoice.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var html []byte
			err := opts.withRuntime(cmd.Context(), func(rt *Runtime) error {
				var err error
				html, err = rt.Orders.RenderInvoice(cmd.Context(), opts.UserID, args[0], opts.Name)

				return err
			})
			if err != nil {
				return err
			}

			if opts.Out != "" {
				return errors.Wrapf(os.WriteFile(opts.Out, html, 0o644), "write %s", opts.Out)
			}
			_, err = cmd.OutOrStdout().Write(html)

			return errors.WithStack(err)
		},
	}

	cmd.Flags().StringVar(&opts.UserID, "user", "", "uid of the order's owner (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&opts.Name, "name", "", "bill-to name, defaults to the profile name")
	cmd.Flags().StringVar(&opts.Out, "out", "", "write the invoice to this file")

	return cmd
}
