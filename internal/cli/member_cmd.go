package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hearthplan/internal/cli/formatter"
	"hearthplan/internal/domain"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage family members",
	}

	cmd.AddCommand(
		newMemberAddCmd(app),
		newMemberListCmd(app),
		newMemberUpdateCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newMemberAddCmd(app *App) *cobra.Command {
	var name, role string
	var age int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a family member",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.FamilyMember{
				Name: name,
				Role: domain.MemberRole(role),
			}
			if cmd.Flags().Changed("age") {
				m.Age = &age
			}
			if err := app.Members.Create(context.Background(), m); err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", m.Name, m.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&role, "role", "primary", "Role: primary, co_parent, or child")
	cmd.Flags().IntVar(&age, "age", 0, "Age (required for children)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List family members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := app.Members.List(context.Background())
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Println("No members yet.")
				return nil
			}
			fmt.Println(formatter.FormatMemberList(members))
			return nil
		},
	}
}

func newMemberUpdateCmd(app *App) *cobra.Command {
	var name, role string
	var age int

	cmd := &cobra.Command{
		Use:   "update MEMBER",
		Short: "Update a family member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Members.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				m.Name = name
			}
			if cmd.Flags().Changed("role") {
				m.Role = domain.MemberRole(role)
			}
			if cmd.Flags().Changed("age") {
				m.Age = &age
			}
			if err := app.Members.Update(ctx, m); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", m.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&role, "role", "", "New role")
	cmd.Flags().IntVar(&age, "age", 0, "New age")

	return cmd
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove MEMBER",
		Short: "Remove a family member and their goals and commitments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Members.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}
