package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"camping-rental-admin/internal/config"
	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/logger"
)

// FileStore persists each entity collection to its own JSON file. Every save
// rewrites the full collection; writes go through a temp file and rename so a
// crash mid-write never leaves a truncated collection behind.
type FileStore struct {
	membersPath  string
	vehiclesPath string
	gearPath     string
	rentalsPath  string
	profitsPath  string
}

func NewFileStore(cfg config.DataConfig) *FileStore {
	return &FileStore{
		membersPath:  cfg.Members,
		vehiclesPath: cfg.Vehicles,
		gearPath:     cfg.Gear,
		rentalsPath:  cfg.Rentals,
		profitsPath:  cfg.Profits,
	}
}

func (s *FileStore) LoadMembers() ([]domain.Member, error) {
	return loadCollection[domain.Member](s.membersPath)
}

func (s *FileStore) SaveMembers(members []domain.Member) error {
	return saveCollection(s.membersPath, members)
}

func (s *FileStore) LoadVehicles() ([]domain.RentalItem, error) {
	return loadCollection[domain.RentalItem](s.vehiclesPath)
}

func (s *FileStore) SaveVehicles(vehicles []domain.RentalItem) error {
	return saveCollection(s.vehiclesPath, vehicles)
}

func (s *FileStore) LoadGear() ([]domain.RentalItem, error) {
	return loadCollection[domain.RentalItem](s.gearPath)
}

func (s *FileStore) SaveGear(gear []domain.RentalItem) error {
	return saveCollection(s.gearPath, gear)
}

func (s *FileStore) LoadRentals() ([]domain.Rental, error) {
	return loadCollection[domain.Rental](s.rentalsPath)
}

func (s *FileStore) SaveRentals(rentals []domain.Rental) error {
	return saveCollection(s.rentalsPath, rentals)
}

func (s *FileStore) LoadProfits() ([]domain.DailyProfit, error) {
	return loadCollection[domain.DailyProfit](s.profitsPath)
}

func (s *FileStore) SaveProfits(profits []domain.DailyProfit) error {
	return saveCollection(s.profitsPath, profits)
}

// loadCollection reads a JSON array of records. A missing or empty file is a
// normal first run and loads as an empty collection.
func loadCollection[T any](path string) ([]T, error) {
	logger.StoreCall("load", path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Info("Collection file not found, starting empty", "path", path)
		return []T{}, nil
	}
	if err != nil {
		logger.StoreResult("load", 0, err, "path", path)
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		logger.Info("Collection file empty, starting empty", "path", path)
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.StoreResult("load", 0, err, "path", path)
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	logger.StoreResult("load", len(records), nil, "path", path)
	return records, nil
}

// saveCollection writes the full collection as indented JSON via a temp file
// and atomic rename.
func saveCollection[T any](path string, records []T) error {
	logger.StoreCall("save", path, "records", len(records))

	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		logger.StoreResult("save", len(records), err, "path", path)
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.StoreResult("save", len(records), err, "path", path)
			return fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		logger.StoreResult("save", len(records), err, "path", path)
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		logger.StoreResult("save", len(records), err, "path", path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		logger.StoreResult("save", len(records), err, "path", path)
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		logger.StoreResult("save", len(records), err, "path", path)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	logger.StoreResult("save", len(records), nil, "path", path)
	return nil
}
