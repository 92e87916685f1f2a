package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"camping-rental-admin/internal/config"
	"camping-rental-admin/internal/logger"
	"camping-rental-admin/internal/registry"
	"camping-rental-admin/internal/service"
	"camping-rental-admin/internal/storage"
)

// App bundles the wired-up registries and services every command works
// against. Each CLI invocation builds a fresh App from the persisted
// collections.
type App struct {
	Config    *config.Config
	Members   *registry.MemberRegistry
	Inventory *registry.Inventory
	Rentals   *registry.RentalRegistry

	MemberSvc    service.MemberService
	InventorySvc service.InventoryService
	RentalSvc    service.RentalService
	ProfitsSvc   service.ProfitsService
}

func newApp(cmd *cobra.Command) (*App, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	store := storage.NewFileStore(cfg.Data)
	members := registry.NewMemberRegistry(store)
	inventory := registry.NewInventory(store)
	rentals := registry.NewRentalRegistry(store)

	return &App{
		Config:       cfg,
		Members:      members,
		Inventory:    inventory,
		Rentals:      rentals,
		MemberSvc:    service.NewMemberService(members),
		InventorySvc: service.NewInventoryService(inventory),
		RentalSvc:    service.NewRentalService(rentals, inventory, members),
		ProfitsSvc:   service.NewProfitsService(rentals, inventory, members, store),
	}, nil
}
