// Package cli implements shopctl, the operator command line for the store.
package cli

import (
	"context"
	"slices"

	"storefront/internal/errors"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "text" | "json"

	open Opener
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the shopctl root command. open builds the
// application services a command needs; tests pass a fake.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:           "shopctl",
		Short:         "Operate the storefront catalog, orders and background writes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return errors.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))
	cmd.AddCommand(NewInvoiceCommand(opts))
	cmd.AddCommand(NewUsersCommand(opts))
	cmd.AddCommand(NewDeadLettersCommand(opts))

	return cmd
}

// withRuntime opens the services, runs fn and shuts them down again, which
// drains any background writes fn queued.
func (o *RootOptions) withRuntime(ctx context.Context, fn func(rt *Runtime) error) (err error) {
	rt, closeFn, err := o.open(ctx)
	if err != nil {
		return errors.Wrap(err, "start services")
	}
	defer func() {
		if closeErr := closeFn(context.Background()); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "stop services")
		}
	}()

	return fn(rt)
}
