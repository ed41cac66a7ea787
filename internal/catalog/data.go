package catalog

import "carbitrage/internal/domain"

// sampleVehicles is the seed inventory the mock backend serves. Values
// mirror the marketing dataset, including the precomputed arbitrage
// scores and market values.
var sampleVehicles = []domain.Vehicle{
	{
		ID:            "1",
		Make:          "Toyota",
		Model:         "Camry",
		Year:          2023,
		Price:         28500,
		OriginalPrice: 32000,
		Mileage:       15000,
		Condition:     domain.ConditionUsed,
		BodyType:      "sedan",
		FuelType:      "gasoline",
		Transmission:  "automatic",
		Drivetrain:    "fwd",
		ExteriorColor: "Silver",
		InteriorColor: "Black",
		Engine:        "2.5L 4-Cylinder",
		VIN:           "1HGBH41JXMN109186",
		Description:   "Well-maintained Toyota Camry with low mileage and clean history.",
		Features:      []string{"Backup Camera", "Bluetooth", "Cruise Control", "Power Windows", "Air Conditioning"},
		Location: domain.Location{
			City: "Los Angeles", State: "CA", ZipCode: "90210",
			Latitude: 34.0522, Longitude: -118.2437,
		},
		Dealer: domain.Dealer{
			ID: "dealer1", Name: "Premium Auto Sales",
			Phone: "(555) 123-4567", Email: "sales@premiumauto.com",
			Address: "123 Auto Row, Los Angeles, CA 90210",
			Rating:  4.5, Verified: true,
		},
		ArbitrageScore: 85,
		MarketValue:    30000,
		CreatedAt:      "2024-01-15T10:30:00Z",
		UpdatedAt:      "2024-01-15T10:30:00Z",
	},
	{
		ID:            "2",
		Make:          "Honda",
		Model:         "Accord",
		Year:          2022,
		Price:         26800,
		OriginalPrice: 29500,
		Mileage:       22000,
		Condition:     domain.ConditionUsed,
		BodyType:      "sedan",
		FuelType:      "gasoline",
		Transmission:  "automatic",
		Drivetrain:    "fwd",
		ExteriorColor: "White",
		InteriorColor: "Beige",
		Engine:        "1.5L Turbo",
		VIN:           "1HGCV1F30NA123456",
		Description:   "Reliable Honda Accord with excellent fuel economy and safety features.",
		Features:      []string{"Apple CarPlay", "Lane Keeping Assist", "Adaptive Cruise Control", "Heated Seats"},
		Location: domain.Location{
			City: "San Francisco", State: "CA", ZipCode: "94102",
			Latitude: 37.7749, Longitude: -122.4194,
		},
		Dealer: domain.Dealer{
			ID: "dealer2", Name: "Bay Area Motors",
			Phone: "(415) 555-0123", Email: "info@bayareamotors.com",
			Address: "456 Market St, San Francisco, CA 94102",
			Rating:  4.2, Verified: true,
		},
		ArbitrageScore: 78,
		MarketValue:    28000,
		CreatedAt:      "2024-01-14T14:20:00Z",
		UpdatedAt:      "2024-01-14T14:20:00Z",
	},
	{
		ID:            "3",
		Make:          "Ford",
		Model:         "F-150",
		Year:          2023,
		Price:         42500,
		OriginalPrice: 48000,
		Mileage:       8500,
		Condition:     domain.ConditionUsed,
		BodyType:      "truck",
		FuelType:      "gasoline",
		Transmission:  "automatic",
		Drivetrain:    "awd",
		ExteriorColor: "Blue",
		InteriorColor: "Gray",
		Engine:        "3.5L V6 EcoBoost",
		VIN:           "1FTFW1E50NFA12345",
		Description:   "Powerful Ford F-150 with EcoBoost engine and excellent towing capacity.",
		Features:      []string{"4WD", "Tow Package", "Bed Liner", "Running Boards", "Backup Camera"},
		Location: domain.Location{
			City: "Austin", State: "TX", ZipCode: "73301",
			Latitude: 30.2672, Longitude: -97.7431,
		},
		Dealer: domain.Dealer{
			ID: "dealer3", Name: "Texas Truck Center",
			Phone: "(512) 555-7890", Email: "sales@texastrucks.com",
			Address: "789 Truck Way, Austin, TX 73301",
			Rating:  4.7, Verified: true,
		},
		ArbitrageScore: 92,
		MarketValue:    45000,
		CreatedAt:      "2024-01-13T09:15:00Z",
		UpdatedAt:      "2024-01-13T09:15:00Z",
	},
	{
		ID:            "4",
		Make:          "Tesla",
		Model:         "Model 3",
		Year:          2024,
		Price:         38900,
		OriginalPrice: 42000,
		Mileage:       2500,
		Condition:     domain.ConditionUsed,
		BodyType:      "sedan",
		FuelType:      "electric",
		Transmission:  "automatic",
		Drivetrain:    "rwd",
		ExteriorColor: "Red",
		InteriorColor: "Black",
		Engine:        "Electric Motor",
		VIN:           "5YJ3E1EA8PF123456",
		Description:   "Nearly new Tesla Model 3 with Autopilot and zero emissions.",
		Features:      []string{"Autopilot", "Supercharging", "Premium Audio", "Glass Roof", "Mobile Connector"},
		Location: domain.Location{
			City: "Seattle", State: "WA", ZipCode: "98101",
			Latitude: 47.6062, Longitude: -122.3321,
		},
		Dealer: domain.Dealer{
			ID: "dealer4", Name: "Electric Vehicle Hub",
			Phone: "(206) 555-3456", Email: "info@evhub.com",
			Address: "321 Electric Ave, Seattle, WA 98101",
			Rating:  4.8, Verified: true,
		},
		ArbitrageScore: 88,
		MarketValue:    40000,
		CreatedAt:      "2024-01-12T16:45:00Z",
		UpdatedAt:      "2024-01-12T16:45:00Z",
	},
	{
		ID:            "5",
		Make:          "BMW",
		Model:         "X5",
		Year:          2022,
		Price:         52000,
		OriginalPrice: 58000,
		Mileage:       18000,
		Condition:     domain.ConditionUsed,
		BodyType:      "suv",
		FuelType:      "gasoline",
		Transmission:  "automatic",
		Drivetrain:    "awd",
		ExteriorColor: "Black",
		InteriorColor: "Tan",
		Engine:        "3.0L Turbo I6",
		VIN:           "5UXCR6C08N9123456",
		Description:   "Luxury BMW X5 with premium features and excellent performance.",
		Features:      []string{"Leather Seats", "Navigation", "Panoramic Sunroof", "Heated Seats", "Premium Audio"},
		Location: domain.Location{
			City: "Miami", State: "FL", ZipCode: "33101",
			Latitude: 25.7617, Longitude: -80.1918,
		},
		Dealer: domain.Dealer{
			ID: "dealer5", Name: "Luxury Motors Miami",
			Phone: "(305) 555-9876", Email: "sales@luxurymotors.com",
			Address: "654 Ocean Drive, Miami, FL 33101",
			Rating:  4.6, Verified: true,
		},
		ArbitrageScore: 76,
		MarketValue:    55000,
		CreatedAt:      "2024-01-11T11:30:00Z",
		UpdatedAt:      "2024-01-11T11:30:00Z",
	},
}
