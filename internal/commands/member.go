package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"camping-rental-admin/internal/domain"
)

func MemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage members",
	}

	cmd.AddCommand(
		memberListCmd(),
		memberAddCmd(),
		memberRemoveCmd(),
		memberHistoryCmd(),
	)

	return cmd
}

func memberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all members",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			members := app.MemberSvc.List()
			fmt.Printf("%-6s  %-30s  %-10s\n", "ID", "Name", "Level")
			for _, m := range members {
				fmt.Printf("%-6d  %-30s  %-10s\n", m.ID, m.FullName(), m.Level)
			}
			return nil
		},
	}
}

func memberAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a member",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			first, _ := cmd.Flags().GetString("first")
			last, _ := cmd.Flags().GetString("last")
			level, _ := cmd.Flags().GetString("level")
			if first == "" || last == "" {
				return fmt.Errorf("both --first and --last are required")
			}

			member, err := app.MemberSvc.Add(first, last, domain.Tier(level))
			if err != nil {
				return err
			}

			fmt.Printf("%s (ID: %d) has been added.\n", member.FullName(), member.ID)
			return nil
		},
	}

	cmd.Flags().String("first", "", "First name")
	cmd.Flags().String("last", "", "Last name")
	cmd.Flags().String("level", string(domain.TierStandard), "Membership level (Standard, Student, Premium)")

	return cmd
}

func memberRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <member-id>",
		Short: "Remove a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid member ID %q", args[0])
			}

			if err := app.MemberSvc.Remove(id); err != nil {
				return err
			}
			fmt.Printf("Member %d removed.\n", id)
			return nil
		},
	}
}

func memberHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <member-id>",
		Short: "Show a member's history, or append an entry with --add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid member ID %q", args[0])
			}

			if entry, _ := cmd.Flags().GetString("add"); entry != "" {
				if err := app.MemberSvc.AppendHistory(id, entry); err != nil {
					return err
				}
				fmt.Println("History entry added.")
				return nil
			}

			member, err := app.MemberSvc.Find(id)
			if err != nil {
				return err
			}
			fmt.Printf("History for %s:\n", member.FullName())
			for _, entry := range member.History {
				fmt.Printf("  - %s\n", entry)
			}
			return nil
		},
	}

	cmd.Flags().String("add", "", "Append a history entry instead of listing")

	return cmd
}
