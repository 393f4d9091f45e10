package service

import (
	"context"
	"time"
)

// CropYield is one crop's expected-versus-actual line in a yield report.
type CropYield struct {
	CropID       uint     `json:"crop_id"`
	FarmID       uint     `json:"farm_id"`
	Name         string   `json:"name"`
	ExpectedTons *float64 `json:"expected_tons"`
	ActualTons   *float64 `json:"actual_tons"`
	// Ratio is capped actual/expected, present only for harvested crops
	// with a recorded expectation.
	Ratio *float64 `json:"ratio,omitempty"`
}

type YieldReport struct {
	From          *time.Time  `json:"from,omitempty"`
	To            *time.Time  `json:"to,omitempty"`
	Crops         []CropYield `json:"crops"`
	MeasuredCount int         `json:"measured_count"`
	MeanRatio     float64     `json:"mean_ratio"`
	StdDevRatio   float64     `json:"std_dev_ratio"`
	TotalExpected float64     `json:"total_expected_tons"`
	TotalActual   float64     `json:"total_actual_tons"`
}

type AnalyticsService interface {
	// YieldAnalytics summarizes a user's crops planted inside the
	// optional date range; nil bounds mean unbounded.
	YieldAnalytics(ctx context.Context, userID uint, from, to *time.Time) (*YieldReport, error)
}
