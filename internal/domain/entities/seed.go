package entities

// DefaultDatabase returns the data a fresh installation starts with.
func DefaultDatabase() Database {
	return Database{
		Users: []User{
			{ID: "user-admin", Name: "Administrador", Email: "admin@admin.com", Password: "123456", Role: UserRoleManager},
			{ID: "user-tec", Name: "Técnico", Email: "tec@tec.com", Password: "123456", Role: UserRoleTechnician},
		},
		Platforms: []Platform{
			{ID: "P001", Name: "Elevador 2T Alpha", Code: "ELV-2023-01", Client: "Oficina do Zé", Location: "Box 1", InstallDate: "2023-01-15", Status: PlatformStatusOperational},
			{ID: "P002", Name: "Rampa Alinhamento Pro", Code: "RMP-2022-45", Client: "AutoCenter Prime", Location: "Setor B", InstallDate: "2022-11-20", Status: PlatformStatusOperational},
			{ID: "P003", Name: "Elevador Hidráulico X", Code: "ELV-H-99", Client: "Mecânica Rápida", Location: "Box 4", InstallDate: "2021-05-10", Status: PlatformStatusNonOperational},
			{ID: "P004", Name: "Balanceadora Digital", Code: "BAL-D-05", Client: "Pneus & Cia", Location: "Loja 2", InstallDate: "2023-08-01", Status: PlatformStatusNonOperational},
			{ID: "P005", Name: "Elevador 4T Heavy", Code: "ELV-4000", Client: "Transportadora Silva", Location: "Galpão 1", InstallDate: "2024-01-10", Status: PlatformStatusOperational},
		},
		Parts: []Part{
			{ID: "PT001", Name: "Óleo Hidráulico ISO 68", Code: "OIL-68", Manufacturer: "LubriTech", Stock: 50, MinStock: 20},
			{ID: "PT002", Name: "Cabo de Aço 10mm", Code: "CAB-10", Manufacturer: "SteelCo", Stock: 15, MinStock: 30},
			{ID: "PT003", Name: "Sensor de Nível", Code: "SENS-L2", Manufacturer: "Eletronix", Stock: 5, MinStock: 5},
			{ID: "PT004", Name: "Kit Vedação O-Ring", Code: "ORING-K1", Manufacturer: "SealMaster", Stock: 8, MinStock: 10},
			{ID: "PT005", Name: "Filtro de Ar", Code: "FIL-AIR", Manufacturer: "CleanAir", Stock: 100, MinStock: 25},
		},
		Maintenances: []Maintenance{
			{ID: "M001", PlatformID: "P001", ExecutionDate: "2024-02-10", Type: MaintenanceTypePreventive, Technician: "Carlos Souza", Description: "Troca de óleo e revisão de cabos", Cost: 450.00},
			{ID: "M002", PlatformID: "P003", ExecutionDate: "2024-05-15", Type: MaintenanceTypeCorrective, Technician: "Ana Lima", Description: "Substituição de vedação hidráulica vazando. Foi necessário desmontar o pistão central.", Cost: 1200.00},
			{ID: "M003", PlatformID: "P002", ExecutionDate: "2024-04-20", Type: MaintenanceTypePreventive, Technician: "Carlos Souza", Description: "Calibração de sensores", Cost: 300.00},
			{ID: "M004", PlatformID: "P005", ExecutionDate: "2024-05-01", Type: MaintenanceTypeEmergency, Technician: "Roberto Dias", Description: "Travamento do motor principal", Cost: 2500.00},
			{ID: "M005", PlatformID: "P001", ExecutionDate: "2023-11-10", Type: MaintenanceTypePreventive, Technician: "Carlos Souza", Description: "Lubrificação geral", Cost: 200.00},
		},
		Schedules: []Schedule{
			{ID: "S001", PlatformID: "P001", Date: "2024-06-15", Type: MaintenanceTypePreventive, Status: ScheduleStatusPending, Observations: "Revisão trimestral", OperationalState: OperationalStateActive},
			{ID: "S002", PlatformID: "P002", Date: "2024-06-18", Type: MaintenanceTypePreventive, Status: ScheduleStatusPending, Observations: "Verificar alinhamento", OperationalState: OperationalStateActive},
			{ID: "S003", PlatformID: "P003", Date: "2024-06-10", Type: MaintenanceTypeCorrective, Status: ScheduleStatusDelayed, Observations: "Aguardando peça", OperationalState: OperationalStateInactive},
			{ID: "S004", PlatformID: "P005", Date: "2024-07-01", Type: MaintenanceTypePreventive, Status: ScheduleStatusPending, Observations: "Troca de filtros", OperationalState: OperationalStateActive},
		},
		PartsExchanged: []PartExchanged{
			{ID: "PE001", MaintenanceID: "M001", PartID: "PT001", Quantity: 5, Observation: "Troca completa"},
			{ID: "PE002", MaintenanceID: "M002", PartID: "PT004", Quantity: 1, Observation: "Kit reparo"},
			{ID: "PE003", MaintenanceID: "M002", PartID: "PT001", Quantity: 2, Observation: "Reposição nível"},
			{ID: "PE004", MaintenanceID: "M004", PartID: "PT002", Quantity: 2, Observation: "Cabos rompidos"},
		},
	}
}
