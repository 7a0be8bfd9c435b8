package entities

// Collection names one of the six entity collections. The value doubles as
// the key of the local JSON blob and the DynamoDB table name.

type Collection string

const (
	CollectionUsers          Collection = "users"
	CollectionPlatforms      Collection = "platforms"
	CollectionParts          Collection = "parts"
	CollectionMaintenances   Collection = "maintenances"
	CollectionSchedules      Collection = "schedules"
	CollectionPartsExchanged Collection = "partsExchanged"
)

// AllCollections lists every collection in a stable order.
var AllCollections = []Collection{
	CollectionUsers,
	CollectionPlatforms,
	CollectionParts,
	CollectionMaintenances,
	CollectionSchedules,
	CollectionPartsExchanged,
}

// Record is implemented by every entity so storage backends can handle them
// generically.
type Record interface {
	GetID() string
	WithID(id string) Record
	Collection() Collection
}

// Database is the full snapshot of the six collections.
//
// It is both the payload of FetchAll and the layout of the local JSON blob.
type Database struct {
	Users          []User          `json:"users"`
	Platforms      []Platform      `json:"platforms"`
	Parts          []Part          `json:"parts"`
	Maintenances   []Maintenance   `json:"maintenances"`
	Schedules      []Schedule      `json:"schedules"`
	PartsExchanged []PartExchanged `json:"partsExchanged"`
}

// Clone returns a copy that shares no slice backing arrays with db.
func (db Database) Clone() Database {
	return Database{
		Users:          cloneSlice(db.Users),
		Platforms:      cloneSlice(db.Platforms),
		Parts:          cloneSlice(db.Parts),
		Maintenances:   cloneSlice(db.Maintenances),
		Schedules:      cloneSlice(db.Schedules),
		PartsExchanged: cloneSlice(db.PartsExchanged),
	}
}

// CopyCollections overwrites the listed collections of db with copies taken
// from src. Collections not listed are left untouched.
func (db *Database) CopyCollections(src Database, cols ...Collection) {
	for _, c := range cols {
		switch c {
		case CollectionUsers:
			db.Users = cloneSlice(src.Users)
		case CollectionPlatforms:
			db.Platforms = cloneSlice(src.Platforms)
		case CollectionParts:
			db.Parts = cloneSlice(src.Parts)
		case CollectionMaintenances:
			db.Maintenances = cloneSlice(src.Maintenances)
		case CollectionSchedules:
			db.Schedules = cloneSlice(src.Schedules)
		case CollectionPartsExchanged:
			db.PartsExchanged = cloneSlice(src.PartsExchanged)
		}
	}
}

// Normalize replaces nil collections with empty ones so JSON renders [] and
// not null.
func (db *Database) Normalize() {
	if db.Users == nil {
		db.Users = []User{}
	}
	if db.Platforms == nil {
		db.Platforms = []Platform{}
	}
	if db.Parts == nil {
		db.Parts = []Part{}
	}
	if db.Maintenances == nil {
		db.Maintenances = []Maintenance{}
	}
	if db.Schedules == nil {
		db.Schedules = []Schedule{}
	}
	if db.PartsExchanged == nil {
		db.PartsExchanged = []PartExchanged{}
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// ReplaceByID returns items with every element whose id matches replaced by
// the given value. Missing ids are a no-op.
func ReplaceByID[T Record](items []T, v T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		if it.GetID() == v.GetID() {
			out[i] = v
			continue
		}
		out[i] = it
	}
	return out
}

// RemoveByID returns items without the element(s) carrying id.
func RemoveByID[T Record](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.GetID() != id {
			out = append(out, it)
		}
	}
	return out
}

// FindByID returns the first element carrying id.
func FindByID[T Record](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// RenameID returns items with the element carrying oldID re-keyed to newID.
func RenameID[T Record](items []T, oldID, newID string) []T {
	out := make([]T, len(items))
	for i, it := range items {
		if it.GetID() == oldID {
			out[i] = it.WithID(newID).(T)
			continue
		}
		out[i] = it
	}
	return out
}
