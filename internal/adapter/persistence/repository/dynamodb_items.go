package repository

import (
	"fmt"
	"strconv"

	"gestao_plataformas/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type userItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Email    string `dynamodbav:"email"`
	Password string `dynamodbav:"password"`
	Role     string `dynamodbav:"role"`
}

type platformItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Code        string `dynamodbav:"code"`
	Client      string `dynamodbav:"client"`
	Location    string `dynamodbav:"location"`
	InstallDate string `dynamodbav:"install_date"`
	Status      string `dynamodbav:"status"`
}

type partItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Code         string `dynamodbav:"code"`
	Manufacturer string `dynamodbav:"manufacturer"`
	Stock        int    `dynamodbav:"stock"`
	MinStock     int    `dynamodbav:"min_stock"`
}

type maintenanceItem struct {
	ID            string `dynamodbav:"id"`
	PlatformID    string `dynamodbav:"platform_id"`
	ExecutionDate string `dynamodbav:"execution_date"`
	Type          string `dynamodbav:"type"`
	Technician    string `dynamodbav:"technician"`
	Description   string `dynamodbav:"description"`
	Cost          string `dynamodbav:"cost"`
}

type scheduleItem struct {
	ID               string `dynamodbav:"id"`
	PlatformID       string `dynamodbav:"platform_id"`
	Date             string `dynamodbav:"date"`
	Type             string `dynamodbav:"type"`
	Status           string `dynamodbav:"status"`
	Observations     string `dynamodbav:"observations"`
	OperationalState string `dynamodbav:"operational_state,omitempty"`
}

type partExchangedItem struct {
	ID            string `dynamodbav:"id"`
	MaintenanceID string `dynamodbav:"maintenance_id"`
	PartID        string `dynamodbav:"part_id"`
	Quantity      int    `dynamodbav:"quantity"`
	Observation   string `dynamodbav:"observation,omitempty"`
}

// emailItem reserves an address in the uniqueness table.
type emailItem struct {
	Email  string `dynamodbav:"email"`
	UserID string `dynamodbav:"user_id"`
}

func marshalRecord(record entities.Record) (map[string]types.AttributeValue, error) {
	var it any
	switch v := record.(type) {
	case entities.User:
		it = userItem{ID: v.ID, Name: v.Name, Email: v.Email, Password: v.Password, Role: string(v.Role)}
	case entities.Platform:
		it = platformItem{ID: v.ID, Name: v.Name, Code: v.Code, Client: v.Client, Location: v.Location, InstallDate: v.InstallDate, Status: string(v.Status)}
	case entities.Part:
		it = partItem{ID: v.ID, Name: v.Name, Code: v.Code, Manufacturer: v.Manufacturer, Stock: v.Stock, MinStock: v.MinStock}
	case entities.Maintenance:
		it = maintenanceItem{
			ID:            v.ID,
			PlatformID:    v.PlatformID,
			ExecutionDate: v.ExecutionDate,
			Type:          string(v.Type),
			Technician:    v.Technician,
			Description:   v.Description,
			Cost:          floatToString(v.Cost),
		}
	case entities.Schedule:
		it = scheduleItem{
			ID:               v.ID,
			PlatformID:       v.PlatformID,
			Date:             v.Date,
			Type:             string(v.Type),
			Status:           string(v.Status),
			Observations:     v.Observations,
			OperationalState: string(v.OperationalState),
		}
	case entities.PartExchanged:
		it = partExchangedItem{ID: v.ID, MaintenanceID: v.MaintenanceID, PartID: v.PartID, Quantity: v.Quantity, Observation: v.Observation}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedRecord, record)
	}
	return attributevalue.MarshalMap(it)
}

// decodeInto unmarshals every scanned item of collection and appends it to
// the matching slice of db.
func decodeInto(db *entities.Database, collection entities.Collection, items []map[string]types.AttributeValue) error {
	switch collection {
	case entities.CollectionUsers:
		var its []userItem
		if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
			return err
		}
		for _, it := range its {
			db.Users = append(db.Users, entities.User{ID: it.ID, Name: it.Name, Email: it.Email, Password: it.Password, Role: entities.UserRole(it.Role)})
		}
	case entities.CollectionPlatforms:
		var its []platformItem
		if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
			return err
		}
		for _, it := range its {
			db.Platforms = append(db.Platforms, entities.Platform{
				ID:          it.ID,
				Name:        it.Name,
				Code:        it.Code,
				Client:      it.Client,
				Location:    it.Location,
				InstallDate: it.InstallDate,
				Status:      entities.PlatformStatus(it.Status),
			})
		}
	case entities.CollectionParts:
		var its []partItem
		if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
			return err
		}
		for _, it := range its {
			db.Parts = append(db.Parts, entities.Part{ID: it.ID, Name: it.Name, Code: it.Code, Manufacturer: it.Manufacturer, Stock: it.Stock, MinStock: it.MinStock})
		}
	case entities.CollectionMaintenances:
		var its []maintenanceItem
		if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
			return err
		}
		for _, it := range its {
			cost, _ := strconv.ParseFloat(it.Cost, 64)
			db.Maintenances = append(db.Maintenances, entities.Maintenance{
				ID:            it.ID,
				PlatformID:    it.PlatformID,
				ExecutionDate: it.ExecutionDate,
				Type:          entities.MaintenanceType(it.Type),
				Technician:    it.Technician,
				Description:   it.Description,
				Cost:          cost,
			})
		}
	case entities.CollectionSchedules:
		var its []scheduleItem
		if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
			return err
		}
		for _, it := range its {
			db.Schedules = append(db.Schedules, entities.Schedule{
				ID:               it.ID,
				PlatformID:       it.PlatformID,
				Date:             it.Date,
				Type:             entities.MaintenanceType(it.Type),
				Status:           entities.ScheduleStatus(it.Status),
				Observations:     it.Observations,
				OperationalState: entities.OperationalState(it.OperationalState),
			})
		}
	case entities.CollectionPartsExchanged:
		var its []partExchangedItem
		if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
			return err
		}
		for _, it := range its {
			db.PartsExchanged = append(db.PartsExchanged, entities.PartExchanged{
				ID:            it.ID,
				MaintenanceID: it.MaintenanceID,
				PartID:        it.PartID,
				Quantity:      it.Quantity,
				Observation:   it.Observation,
			})
		}
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
	return nil
}

// recordsOf lists the records of one collection, used for seeding.
func recordsOf(db entities.Database, collection entities.Collection) []entities.Record {
	var out []entities.Record
	switch collection {
	case entities.CollectionUsers:
		out = appendRecords(out, db.Users)
	case entities.CollectionPlatforms:
		out = appendRecords(out, db.Platforms)
	case entities.CollectionParts:
		out = appendRecords(out, db.Parts)
	case entities.CollectionMaintenances:
		out = appendRecords(out, db.Maintenances)
	case entities.CollectionSchedules:
		out = appendRecords(out, db.Schedules)
	case entities.CollectionPartsExchanged:
		out = appendRecords(out, db.PartsExchanged)
	}
	return out
}

func appendRecords[T entities.Record](out []entities.Record, items []T) []entities.Record {
	for _, it := range items {
		out = append(out, it)
	}
	return out
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
