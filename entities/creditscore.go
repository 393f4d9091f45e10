package entities

import "time"

// ScoreFactors are the five 0-100 sub-scores behind a credit score, stored
// as a JSON blob on the ledger row. MaxLoanEligible rides along so the
// ceiling can be rebuilt without re-running the formula.
type ScoreFactors struct {
	FarmCompleteness   float64 `json:"farm_completeness"`
	DiagnosticActivity float64 `json:"diagnostic_activity"`
	PaymentHistory     float64 `json:"payment_history"`
	YieldPerformance   float64 `json:"yield_performance"`
	SubscriptionStatus float64 `json:"subscription_status"`
	MaxLoanEligible    int     `json:"max_loan_eligible,omitempty"`
}

// CreditScore is one append-only ledger row. Rows are never updated in
// place; a recomputation inserts a new row and reads take the most recent.
type CreditScore struct {
	EntryID           uint         `gorm:"primaryKey" json:"entry_id"`
	UserID            uint         `gorm:"index" json:"user_id"`
	Score             int          `json:"score"`
	RiskLevel         string       `json:"risk_level"`
	RepaymentCapacity int          `json:"repayment_capacity"`
	FarmViability     int          `json:"farm_viability"`
	Factors           ScoreFactors `gorm:"serializer:json" json:"factors"`
	CalculatedAt      time.Time    `gorm:"index" json:"calculated_at"`
}
