package models

// Seed data used when a collection has never been stored.

func DefaultProjects() []Project {
	return []Project{
		{
			ID:          "P001",
			Name:        "Street Lighting - Rajendra Nagar Phase 2",
			Client:      "Patna Municipal Corporation",
			Status:      ProjectInProgress,
			Progress:    75,
			Deadline:    "2026-04-30",
			Location:    "Rajendra Nagar, Sector 4",
			Description: "Installation of 50 LED poles and smart control infrastructure.",
			Budget:      1500000,
			Phase:       "Installation",
		},
		{
			ID:          "P002",
			Name:        "Smart Poles - Zone B High Mast",
			Client:      "Ranchi Urban Development",
			Status:      ProjectAttentionNeeded,
			Progress:    10,
			Deadline:    "2026-05-12",
			Location:    "Main Road, Zone B",
			Description: "Deploying smart high-mast lights with CCTV integration.",
			Budget:      2800000,
			Phase:       "Material Procurement",
		},
		{
			ID:          "P003",
			Name:        "Solar Integration - Highway NH-33",
			Client:      "NHAI",
			Status:      ProjectPlanning,
			Progress:    0,
			Deadline:    "2026-08-15",
			Location:    "NH-33, Mile 45-60",
			Description: "Hybrid solar lighting for high-visibility zones.",
			Budget:      4500000,
			Phase:       InitialPhase,
		},
	}
}

func DefaultStaff() []StaffMember {
	return []StaffMember{
		{ID: "S001", Name: "Rajesh Kumar", Role: RoleSiteSupervisor, Status: StaffActive, Workload: 85, Avatar: "https://i.pravatar.cc/150?u=s1"},
		{ID: "S002", Name: "Priya Sharma", Role: RoleTechnician, Status: StaffActive, Workload: 90, Avatar: "https://i.pravatar.cc/150?u=s2"},
		{ID: "S003", Name: "Anil Singh", Role: RoleElectrician, Status: StaffActive, Workload: 40, Avatar: "https://i.pravatar.cc/150?u=s3"},
		{ID: "S004", Name: "Sunil Verma", Role: RoleWarehouseManager, Status: StaffActive, Workload: 20, Avatar: "https://i.pravatar.cc/150?u=s4"},
	}
}

func DefaultInventory() []InventoryItem {
	return []InventoryItem{
		{ID: "I001", Name: "70W LED Fixture (Standard)", Category: CategoryLEDFixtures, Quantity: 15, ReorderPoint: 20, Unit: "pcs", Status: StockLow},
		{ID: "I002", Name: "6.5m Mounting Pole", Category: CategoryPoles, Quantity: 120, ReorderPoint: 50, Unit: "pcs", Status: StockSufficient},
		{ID: "I003", Name: "Electrical Armored Cable (4-core)", Category: CategoryCables, Quantity: 800, ReorderPoint: 1000, Unit: "m", Status: StockCritical},
		{ID: "I004", Name: "Pole Foundation Bolts", Category: CategoryHardware, Quantity: 450, ReorderPoint: 100, Unit: "pcs", Status: StockSufficient},
	}
}

func DefaultTasks() []Task {
	return []Task{
		{
			ID: "T001", Title: "Install Poles 1-5", ProjectID: "P001", ProjectName: "Rajendra Nagar",
			AssignedTo: []string{"S003"}, Deadline: "Today", Status: TaskUrgent,
			Location: "Sector 4 Junction", Instructions: "Verify foundation depth min 1m.",
		},
		{
			ID: "T002", Title: "Site Survey Zone B", ProjectID: "P002", ProjectName: "Smart Poles",
			AssignedTo: []string{"S001"}, Deadline: "Tomorrow", Status: TaskPending,
			Location: "Main Crossing", Instructions: "Identify power supply point.",
		},
	}
}
