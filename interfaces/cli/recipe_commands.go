package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"recipeclient/domain"
	"recipeclient/infrastructure/di"
	"recipeclient/pkg/utils"
)

func newListCommand(c *di.Container) *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Recipes.LoadRecipes(cmd.Context(), domain.RecipeQuery{Search: search, Category: category})
			if msg := c.Recipes.LastError(); msg != "" {
				return errors.New(msg)
			}
			for _, item := range c.Recipes.Items() {
				marker := " "
				if c.Favorites.IsFavorite(item.ID) {
					marker = "*"
				}
				fmt.Printf("%s %4d  %-30s %s\n", marker, item.ID, item.Title, item.Category)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "full-text filter")
	cmd.Flags().StringVar(&category, "category", "", "category filter")
	return cmd
}

func newShowCommand(c *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c.Recipes.LoadRecipe(cmd.Context(), id)
			if msg := c.Recipes.LastError(); msg != "" {
				return errors.New(msg)
			}
			record := c.Recipes.Selected()
			if record == nil {
				return fmt.Errorf("recipe %d not found", id)
			}
			printRecipe(*record)
			return nil
		},
	}
}

func newCategoriesCommand(c *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List known categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Recipes.LoadCategories(cmd.Context())
			categories := c.Recipes.Categories()
			if len(categories) == 0 {
				// Fall back to deriving from the full listing.
				c.Recipes.LoadRecipes(cmd.Context(), domain.RecipeQuery{})
				categories = c.Recipes.Categories()
			}
			for _, category := range categories {
				fmt.Println(category)
			}
			return nil
		},
	}
}

func newPDFCommand(c *di.Container) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pdf <id>",
		Short: "Download the rendered recipe document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			data, err := c.Recipes.PDF(cmd.Context(), id)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("recipe-%d.pdf", id)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid recipe id %q", raw)
	}
	return id, nil
}

func printRecipe(r domain.RecipeRecord) {
	fmt.Printf("#%d %s\n", r.ID, r.Title)
	if r.Category != "" {
		fmt.Printf("Category: %s\n", r.Category)
	}
	if r.PrepMinutes > 0 {
		fmt.Printf("Prep: %d min", r.PrepMinutes)
		if r.Servings > 0 {
			fmt.Printf(", serves %d", r.Servings)
		}
		fmt.Println()
	}
	fmt.Println(r.Description)
	if len(r.Ingredients) > 0 {
		fmt.Println("Ingredients:")
		for _, ing := range r.Ingredients {
			line := ing.Name
			if ing.Amount != "" {
				line = strings.TrimSpace(ing.Amount+" "+ing.Unit) + " " + line
			}
			fmt.Printf("  - %s\n", line)
		}
	}
	if r.Instructions != "" {
		fmt.Println(r.Instructions)
	}
	if ts := utils.FormatTimestamp(r.UpdatedAt); ts != "" {
		fmt.Printf("Last updated: %s\n", ts)
	}
}
