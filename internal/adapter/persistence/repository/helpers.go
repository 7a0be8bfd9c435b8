package repository

import (
	"errors"
	"fmt"

	"gestao_plataformas/internal/domain/entities"
)

var (
	ErrNotInitialized      = errors.New("storage backend not initialized")
	ErrCollectionMismatch  = errors.New("record does not belong to collection")
	ErrUnsupportedRecord   = errors.New("unsupported record type")
	ErrTransactionTooLarge = errors.New("transaction exceeds the backend item limit")
	ErrDuplicateID         = errors.New("record id already exists")
)

func checkCollection(collection entities.Collection, record entities.Record) error {
	if record == nil {
		return fmt.Errorf("%w: nil record", ErrUnsupportedRecord)
	}
	if record.Collection() != collection {
		return fmt.Errorf("%w: %T into %s", ErrCollectionMismatch, record, collection)
	}
	return nil
}

// appendRecord refuses ids already present, like the conditional put of the
// remote backend.
func appendRecord(db *entities.Database, record entities.Record) (err error) {
	switch v := record.(type) {
	case entities.User:
		db.Users, err = appendNew(db.Users, v)
	case entities.Platform:
		db.Platforms, err = appendNew(db.Platforms, v)
	case entities.Part:
		db.Parts, err = appendNew(db.Parts, v)
	case entities.Maintenance:
		db.Maintenances, err = appendNew(db.Maintenances, v)
	case entities.Schedule:
		db.Schedules, err = appendNew(db.Schedules, v)
	case entities.PartExchanged:
		db.PartsExchanged, err = appendNew(db.PartsExchanged, v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedRecord, record)
	}
	return err
}

func appendNew[T entities.Record](items []T, v T) ([]T, error) {
	if _, ok := entities.FindByID(items, v.GetID()); ok {
		return items, fmt.Errorf("%w: %s %s", ErrDuplicateID, v.Collection(), v.GetID())
	}
	return append(items, v), nil
}

func replaceRecord(db *entities.Database, record entities.Record) error {
	switch v := record.(type) {
	case entities.User:
		db.Users = entities.ReplaceByID(db.Users, v)
	case entities.Platform:
		db.Platforms = entities.ReplaceByID(db.Platforms, v)
	case entities.Part:
		db.Parts = entities.ReplaceByID(db.Parts, v)
	case entities.Maintenance:
		db.Maintenances = entities.ReplaceByID(db.Maintenances, v)
	case entities.Schedule:
		db.Schedules = entities.ReplaceByID(db.Schedules, v)
	case entities.PartExchanged:
		db.PartsExchanged = entities.ReplaceByID(db.PartsExchanged, v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedRecord, record)
	}
	return nil
}

func removeRecord(db *entities.Database, collection entities.Collection, id string) error {
	switch collection {
	case entities.CollectionUsers:
		db.Users = entities.RemoveByID(db.Users, id)
	case entities.CollectionPlatforms:
		db.Platforms = entities.RemoveByID(db.Platforms, id)
	case entities.CollectionParts:
		db.Parts = entities.RemoveByID(db.Parts, id)
	case entities.CollectionMaintenances:
		db.Maintenances = entities.RemoveByID(db.Maintenances, id)
	case entities.CollectionSchedules:
		db.Schedules = entities.RemoveByID(db.Schedules, id)
	case entities.CollectionPartsExchanged:
		db.PartsExchanged = entities.RemoveByID(db.PartsExchanged, id)
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
	return nil
}
