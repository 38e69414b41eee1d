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
	roleSearch      string
	rolePage        int
	roleName        string
	roleDescription string
	roleYes         bool
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage roles",
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		roles, err := client.Roles().List(context.Background())
		if err != nil {
			er(fmt.Sprintf("Failed to fetch roles: %v", err))
		}
		renderList(resources.Roles(), roles, roleSearch, rolePage, func(r models.Role) []string {
			return []string{"Description: " + normalizeText(r.Description, "N/A")}
		})
	},
}

var rolesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one role",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			er(fmt.Sprintf("invalid role id %q", args[0]))
		}
		role, err := client.Roles().Get(context.Background(), id)
		if err != nil {
			er(fmt.Sprintf("Failed to fetch role: %v", err))
		}
		fmt.Printf("ID: %d\n", role.ID)
		fmt.Printf("Name: %s\n", normalizeText(role.Name, "N/A"))
		fmt.Printf("Description: %s\n", normalizeText(role.Description, "N/A"))
	},
}

var rolesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a role",
	Run: func(cmd *cobra.Command, args []string) {
		if normalizeText(roleName, "") == "" {
			er("Role name is required")
		}
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		role, err := client.Roles().Create(context.Background(), models.CreateRole{
			Name:        roleName,
			Description: roleDescription,
		})
		if err != nil {
			er(fmt.Sprintf("Failed to create role: %v", err))
		}
		fmt.Printf("Created role %d (%s)\n", role.ID, role.Name)
	},
}

var rolesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a role",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if normalizeText(roleName, "") == "" {
			er("Role name is required")
		}
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			er(fmt.Sprintf("invalid role id %q", args[0]))
		}
		role, err := client.Roles().Update(context.Background(), id, models.UpdateRole{
			Name:        &roleName,
			Description: &roleDescription,
		})
		if err != nil {
			er(fmt.Sprintf("Failed to update role: %v", err))
		}
		fmt.Printf("Updated role %d (%s)\n", role.ID, role.Name)
	},
}

var rolesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a role",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			er(fmt.Sprintf("invalid role id %q", args[0]))
		}
		if !roleYes && !confirmPrompt(fmt.Sprintf("Delete role %d?", id)) {
			fmt.Println("Aborted")
			return
		}
		if err := client.Roles().Delete(context.Background(), id); err != nil {
			er(fmt.Sprintf("Failed to delete role: %v", err))
		}
		fmt.Printf("Deleted role %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.AddCommand(rolesListCmd, rolesGetCmd, rolesCreateCmd, rolesUpdateCmd, rolesDeleteCmd)

	rolesListCmd.Flags().StringVar(&roleSearch, "search", "", "Filter by name")
	rolesListCmd.Flags().IntVar(&rolePage, "page", 1, "Page number")
	rolesCreateCmd.Flags().StringVar(&roleName, "name", "", "Role name")
	rolesCreateCmd.Flags().StringVar(&roleDescription, "description", "", "Role description")
	rolesUpdateCmd.Flags().StringVar(&roleName, "name", "", "Role name")
	rolesUpdateCmd.Flags().StringVar(&roleDescription, "description", "", "Role description")
	rolesDeleteCmd.Flags().BoolVar(&roleYes, "yes", false, "Skip the confirmation prompt")
}
