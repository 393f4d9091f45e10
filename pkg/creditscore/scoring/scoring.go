// Package scoring holds the pure credit-score formula. Everything here is
// deterministic: identical inputs always produce an identical score.
package scoring

import (
	"math"
	"time"

	"agrimarket/entities"
	"agrimarket/pkg/creditscore/types"
)

// Blend weights, sum to 1.00.
const (
	WeightFarmCompleteness   = 0.20
	WeightDiagnosticActivity = 0.20
	WeightPaymentHistory     = 0.25
	WeightYieldPerformance   = 0.20
	WeightSubscription       = 0.15
)

const (
	ScoreFloor   = 300
	ScoreCeiling = 850

	// MaxLoanCeiling is the loan ceiling at a perfect score, in currency units.
	MaxLoanCeiling = 700000
)

const scoreRange = float64(ScoreCeiling - ScoreFloor)

// Risk classification thresholds, inclusive lower bounds.
const (
	riskExcellentMin = 750
	riskVeryGoodMin  = 700
	riskGoodMin      = 650
	riskFairMin      = 600
	riskPoorMin      = 550
)

const (
	ProfileFieldCount       = 6
	CropCountBonusThreshold = 3
	CropCountBonus          = 10

	RecentScanWindowDays = 90
	PointsPerRecentScan  = 20

	NoLoanHistoryScore  = 80
	UnresolvedLoanScore = 75
	DefaultPenalty      = 25
	DefaultedFloor      = 20
	RepaidBonus         = 5

	YieldRatioCap         = 1.2
	YieldBaselinePoints   = 80
	NoCropScore           = 50
	UnmeasuredCropScore   = 45
	YieldConsistencyMin   = 3
	YieldConsistencyBonus = 10

	SubscribedScore = 100
)

// Inputs bundles the account-activity facts the formula reads. Farm and
// Subscription are nil for accounts that have none.
type Inputs struct {
	Farm         *entities.Farm
	Crops        []entities.Crop
	Diagnostics  []entities.Diagnostic
	Loans        []entities.LoanApplication
	Subscription *entities.Subscription
	Now          time.Time
}

// Compute blends the five sub-scores into a bounded 300-850 credit score.
// It never fails: a brand-new account with no farms, loans or crops still
// gets a fully defined result from the sub-score defaults.
func Compute(in Inputs) types.Result {
	f := entities.ScoreFactors{
		FarmCompleteness:   FarmCompleteness(in.Farm, len(in.Crops)),
		DiagnosticActivity: DiagnosticActivity(in.Diagnostics, in.Now),
		PaymentHistory:     PaymentHistory(in.Loans),
		YieldPerformance:   YieldPerformance(in.Crops),
		SubscriptionStatus: SubscriptionStatus(in.Subscription),
	}
	raw := WeightFarmCompleteness*f.FarmCompleteness +
		WeightDiagnosticActivity*f.DiagnosticActivity +
		WeightPaymentHistory*f.PaymentHistory +
		WeightYieldPerformance*f.YieldPerformance +
		WeightSubscription*f.SubscriptionStatus

	score := int(math.Round(ScoreFloor + raw/100*scoreRange))
	return types.Result{
		Score:             score,
		RiskLevel:         RiskLevelFor(score),
		RepaymentCapacity: int(math.Round(f.PaymentHistory)),
		FarmViability:     int(math.Round(0.5*f.FarmCompleteness + 0.5*f.YieldPerformance)),
		Factors:           f,
		MaxLoanEligible:   MaxLoanFor(score),
		CalculatedAt:      in.Now,
	}
}

// FarmCompleteness scores the six optional profile fields, with a bonus
// for users who recorded at least three crops. No farm means zero.
func FarmCompleteness(farm *entities.Farm, cropCount int) float64 {
	if farm == nil {
		return 0
	}
	filled := 0
	if farm.Name != "" {
		filled++
	}
	if farm.Location != "" {
		filled++
	}
	if farm.SizeHectares > 0 {
		filled++
	}
	if farm.SoilType != "" {
		filled++
	}
	if farm.WaterSource != "" {
		filled++
	}
	if farm.Description != "" {
		filled++
	}
	score := float64(filled) / ProfileFieldCount * 100
	if cropCount >= CropCountBonusThreshold {
		score += CropCountBonus
	}
	return clamp(score)
}

// DiagnosticActivity counts AI crop scans within the trailing window;
// five or more recent scans saturate the metric.
func DiagnosticActivity(diags []entities.Diagnostic, now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -RecentScanWindowDays)
	recent := 0
	for _, d := range diags {
		if !d.CreatedAt.Before(cutoff) {
			recent++
		}
	}
	return clamp(float64(recent * PointsPerRecentScan))
}

// PaymentHistory rewards repaid loans and penalizes defaults. A user who
// has never applied gets the neutral default: no negative signal is not
// a bonus.
func PaymentHistory(loans []entities.LoanApplication) float64 {
	if len(loans) == 0 {
		return NoLoanHistoryScore
	}
	defaulted, repaid := 0, 0
	for _, l := range loans {
		switch l.Status {
		case entities.LoanDefaulted:
			defaulted++
		case entities.LoanRepaid:
			repaid++
		}
	}
	if defaulted > 0 {
		return math.Max(DefaultedFloor, NoLoanHistoryScore-float64(DefaultPenalty*defaulted))
	}
	if repaid > 0 {
		return math.Min(100, NoLoanHistoryScore+float64(RepaidBonus*repaid))
	}
	return UnresolvedLoanScore
}

// YieldPerformance averages actual/expected yield ratios over harvested
// crops. Ratios are capped so over-performance cannot runaway-inflate the
// score; meeting expectation exactly lands at the 80-point baseline.
func YieldPerformance(crops []entities.Crop) float64 {
	if len(crops) == 0 {
		return NoCropScore
	}
	measured := 0
	var sum float64
	for _, cr := range crops {
		if cr.ExpectedYieldTons == nil || *cr.ExpectedYieldTons <= 0 || cr.ActualYieldTons == nil {
			continue
		}
		ratio := *cr.ActualYieldTons / *cr.ExpectedYieldTons
		if ratio > YieldRatioCap {
			ratio = YieldRatioCap
		}
		sum += ratio
		measured++
	}
	if measured == 0 {
		return UnmeasuredCropScore
	}
	score := sum / float64(measured) * YieldBaselinePoints
	if measured >= YieldConsistencyMin {
		score += YieldConsistencyBonus
	}
	return clamp(score)
}

// SubscriptionStatus is a binary signal: active subscription or nothing.
func SubscriptionStatus(sub *entities.Subscription) float64 {
	if sub != nil && sub.Status == entities.SubscriptionActive {
		return SubscribedScore
	}
	return 0
}

func RiskLevelFor(score int) types.RiskLevel {
	switch {
	case score >= riskExcellentMin:
		return types.RiskExcellent
	case score >= riskVeryGoodMin:
		return types.RiskVeryGood
	case score >= riskGoodMin:
		return types.RiskGood
	case score >= riskFairMin:
		return types.RiskFair
	case score >= riskPoorMin:
		return types.RiskPoor
	}
	return types.RiskVeryPoor
}

// MaxLoanFor maps the score linearly to a loan ceiling: zero at the score
// floor, MaxLoanCeiling at a perfect score.
func MaxLoanFor(score int) int {
	return int(math.Round(float64(score-ScoreFloor) / scoreRange * MaxLoanCeiling))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
