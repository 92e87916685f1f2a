package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"camping-rental-admin/internal/domain"
)

func InventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage vehicles and gear",
	}

	cmd.AddCommand(
		inventoryVehiclesCmd(),
		inventoryGearCmd(),
		inventoryAddVehicleCmd(),
		inventoryAddGearCmd(),
		inventoryRemoveCmd(),
	)

	return cmd
}

func printItems(items []domain.RentalItem) {
	fmt.Printf("%-6s  %s\n", "ID", "Item")
	for _, it := range items {
		fmt.Printf("%-6d  %s\n", it.ID, it.String())
	}
}

func inventoryVehiclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "List vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			if onlyAvailable, _ := cmd.Flags().GetBool("available"); onlyAvailable {
				printItems(app.InventorySvc.AvailableVehicles())
			} else {
				printItems(app.InventorySvc.Vehicles())
			}
			return nil
		},
	}

	cmd.Flags().Bool("available", false, "Only show items not currently rented")

	return cmd
}

func inventoryGearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gear",
		Short: "List gear",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			if onlyAvailable, _ := cmd.Flags().GetBool("available"); onlyAvailable {
				printItems(app.InventorySvc.AvailableGear())
			} else {
				printItems(app.InventorySvc.Gear())
			}
			return nil
		},
	}

	cmd.Flags().Bool("available", false, "Only show items not currently rented")

	return cmd
}

func inventoryAddVehicleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-vehicle",
		Short: "Add a vehicle",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			makeName, _ := cmd.Flags().GetString("make")
			model, _ := cmd.Flags().GetString("model")
			vehicleType, _ := cmd.Flags().GetString("type")
			year, _ := cmd.Flags().GetString("year")
			capacity, _ := cmd.Flags().GetString("capacity")
			price, _ := cmd.Flags().GetFloat64("price")
			if makeName == "" || model == "" {
				return fmt.Errorf("both --make and --model are required")
			}

			item, err := app.InventorySvc.AddVehicle(makeName, model, vehicleType, year, capacity, price)
			if err != nil {
				return err
			}
			fmt.Printf("%s (ID: %d) has been added.\n", item.Name(), item.ID)
			return nil
		},
	}

	cmd.Flags().String("make", "", "Vehicle make")
	cmd.Flags().String("model", "", "Vehicle model")
	cmd.Flags().String("type", "Vehicle", "Vehicle type (e.g. Campervan, Caravan)")
	cmd.Flags().String("year", "", "Model year")
	cmd.Flags().String("capacity", "", "Berth capacity")
	cmd.Flags().Float64("price", 0, "Daily price in SEK")

	return cmd
}

func inventoryAddGearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-gear",
		Short: "Add a gear item",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			model, _ := cmd.Flags().GetString("model")
			gearType, _ := cmd.Flags().GetString("type")
			capacity, _ := cmd.Flags().GetString("capacity")
			price, _ := cmd.Flags().GetFloat64("price")
			if model == "" {
				return fmt.Errorf("--model is required")
			}

			item, err := app.InventorySvc.AddGear(model, gearType, capacity, price)
			if err != nil {
				return err
			}
			fmt.Printf("%s (ID: %d) has been added.\n", item.Name(), item.ID)
			return nil
		},
	}

	cmd.Flags().String("model", "", "Gear model")
	cmd.Flags().String("type", "Gear", "Gear type (e.g. Tent, Backpack)")
	cmd.Flags().String("capacity", "", "Capacity (e.g. 4 persons)")
	cmd.Flags().Float64("price", 0, "Daily price in SEK")

	return cmd
}

func inventoryRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item ID %q", args[0])
			}

			if err := app.InventorySvc.Remove(id); err != nil {
				return err
			}
			fmt.Printf("Item %d removed.\n", id)
			return nil
		},
	}
}
