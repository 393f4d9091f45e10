package entities

import "time"

// Farm holds the descriptive profile a farmer fills in over time. All six
// profile fields are optional; completeness of this profile feeds the
// credit score.
type Farm struct {
	FarmID       uint    `gorm:"primaryKey" json:"farm_id"`
	UserID       uint    `json:"user_id" gorm:"index"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	SizeHectares float64 `json:"size_hectares"`
	SoilType     string  `json:"soil_type"`    // sand|loam|clay
	WaterSource  string  `json:"water_source"` // well|surface|rainfed|none
	Description  string  `json:"description"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Crop struct {
	CropID       uint      `gorm:"primaryKey" json:"crop_id"`
	FarmID       uint      `gorm:"index" json:"farm_id"`
	Name         string    `json:"name"`
	AreaHectares float64   `json:"area_hectares"`
	PlantedAt    time.Time `json:"planted_at"`

	// Expected is set when planting; actual only after harvest reporting.
	ExpectedYieldTons *float64 `json:"expected_yield_tons"`
	ActualYieldTons   *float64 `json:"actual_yield_tons"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
