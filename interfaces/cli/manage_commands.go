package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recipeclient/domain"
	"recipeclient/infrastructure/di"
)

func newCreateCommand(c *di.Container) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recipe from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readRecipeFile(file)
			if err != nil {
				return err
			}
			created, err := c.Recipes.Create(cmd.Context(), payload)
			if err != nil {
				return err
			}
			fmt.Printf("Created recipe %d\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "recipe JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newUpdateCommand(c *di.Container) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a recipe from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			payload, err := readRecipeFile(file)
			if err != nil {
				return err
			}
			if _, err := c.Recipes.Update(cmd.Context(), id, payload); err != nil {
				return err
			}
			fmt.Printf("Updated recipe %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "recipe JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newDeleteCommand(c *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.Recipes.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted recipe %d\n", id)
			return nil
		},
	}
}

func readRecipeFile(path string) (domain.RecipeRecord, error) {
	var record domain.RecipeRecord
	data, err := os.ReadFile(path)
	if err != nil {
		return record, err
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("invalid recipe file %s: %w", path, err)
	}
	return record, nil
}
