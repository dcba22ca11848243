package cli

import (
	"fmt"

	"storefront/internal/domain/entity"

	"github.com/spf13/cobra"
)

func NewUsersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "grant-role <uid> <role>",
		Short: "Add a role claim (customer, admin) to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, role := args[0], entity.Role(args[1])
			err := rootOpts.withRuntime(cmd.Context(), func(rt *Runtime) error {
				return rt.Sessions.GrantRole(cmd.Context(), uid, role)
			})
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"uid": uid, "role": role.String()})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Granted %s to %s. It applies from the user's next sign-in.\n", role, uid)

			return nil
		},
	})

	return cmd
}
