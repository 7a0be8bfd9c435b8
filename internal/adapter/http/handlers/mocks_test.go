package handlers

import (
	"gestao_plataformas/internal/adapter/http/handlers/mocks"
	"gestao_plataformas/internal/usecase"
)

// The mocks are kept by hand; these fail to compile when one drifts from its interface.
var (
	_ usecase.IPlatformUseCase    = (*mocks.MockIPlatformUseCase)(nil)
	_ usecase.IPartUseCase        = (*mocks.MockIPartUseCase)(nil)
	_ usecase.IScheduleUseCase    = (*mocks.MockIScheduleUseCase)(nil)
	_ usecase.IMaintenanceUseCase = (*mocks.MockIMaintenanceUseCase)(nil)
	_ usecase.IUserUseCase        = (*mocks.MockIUserUseCase)(nil)
	_ usecase.IDashboardUseCase   = (*mocks.MockIDashboardUseCase)(nil)
)
