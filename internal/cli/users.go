package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"adminctl/internal/resources"
	"adminctl/pkg/models"
)

var (
	userSearch string
	userPage   int
	userName   string
	userYes    bool
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		users, err := client.Users().List(context.Background())
		if err != nil {
			er(fmt.Sprintf("Failed to fetch users: %v", err))
		}
		renderList(resources.Users(), users, userSearch, userPage, nil)
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			er(fmt.Sprintf("invalid user id %q", args[0]))
		}
		user, err := client.Users().Get(context.Background(), id)
		if err != nil {
			er(fmt.Sprintf("Failed to fetch user: %v", err))
		}
		fmt.Printf("ID: %d\n", user.ID)
		fmt.Printf("Name: %s\n", normalizeText(user.Name, "N/A"))
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Run: func(cmd *cobra.Command, args []string) {
		if normalizeText(userName, "") == "" {
			er("User name is required")
		}
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		user, err := client.Users().Create(context.Background(), models.CreateUser{Name: userName})
		if err != nil {
			er(fmt.Sprintf("Failed to create user: %v", err))
		}
		fmt.Printf("Created user %d (%s)\n", user.ID, user.Name)
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if normalizeText(userName, "") == "" {
			er("User name is required")
		}
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			er(fmt.Sprintf("invalid user id %q", args[0]))
		}
		user, err := client.Users().Update(context.Background(), id, models.UpdateUser{Name: &userName})
		if err != nil {
			er(fmt.Sprintf("Failed to update user: %v", err))
		}
		fmt.Printf("Updated user %d (%s)\n", user.ID, user.Name)
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			er(fmt.Sprintf("invalid user id %q", args[0]))
		}
		if !userYes && !confirmPrompt(fmt.Sprintf("Delete user %d?", id)) {
			fmt.Println("Aborted")
			return
		}
		if err := client.Users().Delete(context.Background(), id); err != nil {
			er(fmt.Sprintf("Failed to delete user: %v", err))
		}
		fmt.Printf("Deleted user %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersGetCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd)

	usersListCmd.Flags().StringVar(&userSearch, "search", "", "Filter by name")
	usersListCmd.Flags().IntVar(&userPage, "page", 1, "Page number")
	usersCreateCmd.Flags().StringVar(&userName, "name", "", "User name")
	usersUpdateCmd.Flags().StringVar(&userName, "name", "", "User name")
	usersDeleteCmd.Flags().BoolVar(&userYes, "yes", false, "Skip the confirmation prompt")
}
