package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recipeclient/infrastructure/di"
)

func newFavoritesCommand(c *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite recipe ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Favorites.Load(cmd.Context())
			ids := c.Favorites.IDs()
			if len(ids) == 0 {
				fmt.Println("No favorites")
				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}

func newFavoriteCommand(c *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle the favorite state of a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.Favorites.Toggle(cmd.Context(), id)
		},
	}
}
