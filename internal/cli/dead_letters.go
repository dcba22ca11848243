package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"storefront/internal/domain/entity"

	"github.com/spf13/cobra"
)

const defaultDeadLetterLimit = 100

// DeadLetterView is the printable form of a parked write.
type DeadLetterView struct {
	ID        uint64    `json:"id"`
	Kind      string    `json:"kind"`
	Key       string    `json:"key"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"lastError"`
	FailedAt  time.Time `json:"failedAt"`
}

func NewDeadLettersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dead-letters",
		Short: "Inspect and replay background writes that ran out of retries",
	}

	cmd.AddCommand(newDeadLettersListCommand(rootOpts))
	cmd.AddCommand(newDeadLettersReplayCommand(rootOpts))

	return cmd
}

func newDeadLettersListCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List parked writes, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				letters []*entity.DeadLetter
				total   int64
			)
			err := opts.withRuntime(cmd.Context(), func(rt *Runtime) error {
				var err error
				if letters, err = rt.DeadLetters.ListDeadLetters(cmd.Context(), limit); err != nil {
					return err
				}
				total, err = rt.DeadLetters.CountDeadLetters(cmd.Context())

				return err
			})
			if err != nil {
				return err
			}

			views := make([]DeadLetterView, len(letters))
			for i, letter := range letters {
				views[i] = DeadLetterView{
					ID:        letter.ID,
					Kind:      string(letter.Kind),
					Key:       letter.Key,
					Attempts:  letter.Attempts,
					LastError: letter.LastError,
					FailedAt:  letter.FailedAt.UTC(),
				}
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"total": total, "letters": views})
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tKEY\tATTEMPTS\tFAILED\tERROR")
			for _, view := range views {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
					view.ID, view.Kind, view.Key, view.Attempts, view.FailedAt.Format(time.RFC3339), view.LastError)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d shown\n", len(views), total)

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultDeadLetterLimit, "maximum letters to show")

	return cmd
}

func newDeadLettersReplayCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay",
		Short: "Re-queue parked writes and wait for them to drain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var replayed int
			err := opts.withRuntime(cmd.Context(), func(rt *Runtime) error {
				var err error
				replayed, err = rt.Replayer.ReplayDeadLetters(cmd.Context())

				return err
			})
			if err != nil {
				return err
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]int{"replayed": replayed})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Replayed %d dead letters\n", replayed)

			return nil
		},
	}
}
