// Package cli is the terminal surface over the stores. It is plumbing:
// commands parse arguments, call store actions, and print state. The
// toast collection is drained to the terminal after every command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recipeclient/infrastructure/di"
)

// NewRootCommand builds the command tree. The startup sequence (restore,
// verify, prime favorites) runs before any subcommand.
func NewRootCommand(c *di.Container) *cobra.Command {
	root := &cobra.Command{
		Use:           "recipeclient",
		Short:         "Terminal client for the recipe backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.Sequencer.Start(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			drainToasts(c)
		},
	}

	root.AddCommand(
		newLoginCommand(c),
		newRegisterCommand(c),
		newLogoutCommand(c),
		newWhoamiCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newCategoriesCommand(c),
		newCreateCommand(c),
		newUpdateCommand(c),
		newDeleteCommand(c),
		newFavoritesCommand(c),
		newFavoriteCommand(c),
		newPDFCommand(c),
	)
	return root
}

// drainToasts prints and removes every pending notification. The
// terminal has no persistent toast area, so each one is shown once.
func drainToasts(c *di.Container) {
	for _, toast := range c.Notifications.Active() {
		fmt.Printf("[%s] %s\n", toast.Type, toast.Message)
		c.Notifications.Remove(toast.ID)
	}
}
