package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"camping-rental-admin/internal/domain"
)

func RentalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rental",
		Short: "Manage rentals",
	}

	cmd.AddCommand(
		rentalListCmd(),
		rentalNewCmd(),
		rentalReturnCmd(),
	)

	return cmd
}

func rentalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open rentals",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			for _, rental := range app.RentalSvc.List() {
				fmt.Println(app.RentalSvc.Describe(rental))
			}
			return nil
		},
	}
}

func rentalNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a rental",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			memberID, _ := cmd.Flags().GetInt("member")
			itemID, _ := cmd.Flags().GetInt("item")
			startStr, _ := cmd.Flags().GetString("start")
			days, _ := cmd.Flags().GetInt("days")

			member, err := app.MemberSvc.Find(memberID)
			if err != nil {
				return err
			}
			item, err := app.InventorySvc.Find(itemID)
			if err != nil {
				return err
			}

			start := time.Now()
			if startStr != "" {
				start, err = time.Parse(domain.DateLayout, startStr)
				if err != nil {
					return fmt.Errorf("invalid start date %q, expected yyyy-mm-dd", startStr)
				}
			}

			rental, err := app.RentalSvc.Create(member, item, start, days)
			if err != nil {
				return err
			}

			fmt.Printf("Rental #%d created: %s rents %s from %s for %d day(s).\n",
				rental.ID, member.FullName(), item.Name(), rental.StartDate, rental.Days)
			return nil
		},
	}

	cmd.Flags().Int("member", 0, "Member ID")
	cmd.Flags().Int("item", 0, "Item ID")
	cmd.Flags().String("start", "", "Start date (yyyy-mm-dd, defaults to today)")
	cmd.Flags().Int("days", 1, "Rental length in days")

	return cmd
}

func rentalReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return <rental-id>",
		Short: "Return a rental",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid rental ID %q", args[0])
			}

			outcome, err := app.RentalSvc.Return(id)
			if err != nil {
				return err
			}

			fmt.Printf("Rental #%d returned.\n", id)
			if outcome.ItemMissing {
				fmt.Printf("Warning: item %d is no longer in the inventory; its rented flag could not be cleared.\n",
					outcome.Rental.ItemID)
			}
			return nil
		},
	}
}
