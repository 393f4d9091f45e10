package types

import (
	"time"

	"agrimarket/entities"
)

type RiskLevel string

const (
	RiskVeryPoor  RiskLevel = "Very Poor"
	RiskPoor      RiskLevel = "Poor"
	RiskFair      RiskLevel = "Fair"
	RiskGood      RiskLevel = "Good"
	RiskVeryGood  RiskLevel = "Very Good"
	RiskExcellent RiskLevel = "Excellent"
)

// Result is the computed creditworthiness artifact returned to callers.
type Result struct {
	Score             int                   `json:"score"`
	RiskLevel         RiskLevel             `json:"risk_level"`
	RepaymentCapacity int                   `json:"repayment_capacity"`
	FarmViability     int                   `json:"farm_viability"`
	Factors           entities.ScoreFactors `json:"factors"`
	MaxLoanEligible   int                   `json:"max_loan_eligible"`
	CalculatedAt      time.Time             `json:"calculated_at"`
}
