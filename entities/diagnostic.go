package entities

import "time"

// Diagnostic is one AI crop-scan event. Only events from the trailing
// 90 days count as platform activity for scoring.
type Diagnostic struct {
	DiagnosticID uint   `gorm:"primaryKey" json:"diagnostic_id"`
	FarmID       uint   `gorm:"index" json:"farm_id"`
	CropName     string `json:"crop_name"`
	Finding      string `json:"finding"`
	Severity     string `json:"severity"` // none|low|moderate|severe
	PhotoURL     string `json:"photo_url"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
