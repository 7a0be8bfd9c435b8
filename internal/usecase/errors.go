package usecase

import "errors"

var (
	ErrInvalidID               = errors.New("invalid id")
	ErrPlatformDeleteFailed    = errors.New("platform delete failed")
	ErrScheduleDeleteFailed    = errors.New("schedule delete failed")
	ErrMaintenanceDeleteFailed = errors.New("maintenance delete failed")
	ErrPlatformSyncFailed      = errors.New("schedule saved but platform status sync failed")
	ErrNotAuthenticated        = errors.New("not authenticated")
	ErrUserNotFound            = errors.New("user not found")
)
