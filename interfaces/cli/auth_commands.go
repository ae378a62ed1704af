package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recipeclient/infrastructure/di"
)

func newLoginCommand(c *di.Container) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Sequencer.Login(cmd.Context(), username, password); err != nil {
				return err
			}
			if user := c.Session.User(); user != nil {
				fmt.Printf("Logged in as %s\n", user.Username)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCommand(c *di.Container) *cobra.Command {
	var username, password string
	var andLogin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if andLogin {
				return c.Sequencer.RegisterAndLogin(cmd.Context(), username, password)
			}
			return c.Session.Register(cmd.Context(), username, password)
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().BoolVar(&andLogin, "login", false, "log in after registering")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(c *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Sequencer.Logout(cmd.Context())
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(c *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := c.Session.User()
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}
}
