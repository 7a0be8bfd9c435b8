package request

import "errors"

var (
	ErrInvalidDate             = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidPlatformStatus   = errors.New("invalid platform status")
	ErrInvalidMaintenanceType  = errors.New("invalid maintenance type")
	ErrInvalidScheduleStatus   = errors.New("invalid schedule status")
	ErrInvalidOperationalState = errors.New("invalid operational state")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInvalidStock            = errors.New("stock values must not be negative")
)

const dateLayout = "2006-01-02"
