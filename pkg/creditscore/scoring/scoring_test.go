package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimarket/entities"
	"agrimarket/pkg/creditscore/scoring"
	"agrimarket/pkg/creditscore/types"
)

var now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func fptr(v float64) *float64 { return &v }

func fullFarm() *entities.Farm {
	return &entities.Farm{
		Name:         "Green Acres",
		Location:     "Nakuru",
		SizeHectares: 4.5,
		SoilType:     "loam",
		WaterSource:  "well",
		Description:  "maize and beans, drip irrigated",
	}
}

func cropWithYield(expected, actual float64) entities.Crop {
	return entities.Crop{Name: "maize", ExpectedYieldTons: fptr(expected), ActualYieldTons: fptr(actual)}
}

func recentDiags(n int) []entities.Diagnostic {
	out := make([]entities.Diagnostic, n)
	for i := range out {
		out[i] = entities.Diagnostic{CreatedAt: now.AddDate(0, 0, -i)}
	}
	return out
}

func TestNewAccountDefaults(t *testing.T) {
	res := scoring.Compute(scoring.Inputs{Now: now})

	assert.Equal(t, 0.0, res.Factors.FarmCompleteness)
	assert.Equal(t, 0.0, res.Factors.DiagnosticActivity)
	assert.Equal(t, 80.0, res.Factors.PaymentHistory)
	assert.Equal(t, 50.0, res.Factors.YieldPerformance)
	assert.Equal(t, 0.0, res.Factors.SubscriptionStatus)

	// raw = 0.25*80 + 0.20*50 = 30 -> round(300 + 0.30*550) = 465
	assert.Equal(t, 465, res.Score)
	assert.Equal(t, types.RiskVeryPoor, res.RiskLevel)
	assert.Equal(t, 210000, res.MaxLoanEligible)
	assert.Equal(t, 80, res.RepaymentCapacity)
	assert.Equal(t, 25, res.FarmViability)
	assert.Equal(t, now, res.CalculatedAt)
}

func TestExcellentScenario(t *testing.T) {
	crops := []entities.Crop{
		cropWithYield(10, 10),
		cropWithYield(8, 8),
		cropWithYield(5, 5),
	}
	in := scoring.Inputs{
		Farm:         fullFarm(),
		Crops:        crops,
		Diagnostics:  recentDiags(5),
		Loans:        []entities.LoanApplication{{Status: entities.LoanRepaid}},
		Subscription: &entities.Subscription{Status: entities.SubscriptionActive},
		Now:          now,
	}
	res := scoring.Compute(in)

	assert.Equal(t, 100.0, res.Factors.FarmCompleteness)
	assert.Equal(t, 100.0, res.Factors.DiagnosticActivity)
	assert.Equal(t, 85.0, res.Factors.PaymentHistory)
	assert.Equal(t, 90.0, res.Factors.YieldPerformance)
	assert.Equal(t, 100.0, res.Factors.SubscriptionStatus)

	// raw = 20 + 20 + 21.25 + 18 + 15 = 94.25 -> round(818.375) = 818
	assert.Equal(t, 818, res.Score)
	assert.Equal(t, types.RiskExcellent, res.RiskLevel)
}

func TestComputeBoundsAndDeterminism(t *testing.T) {
	inputs := []scoring.Inputs{
		{Now: now},
		{Farm: fullFarm(), Now: now},
		{Farm: &entities.Farm{Name: "x"}, Crops: []entities.Crop{{Name: "beans"}}, Now: now},
		{
			Farm:         fullFarm(),
			Crops:        []entities.Crop{cropWithYield(1, 5), cropWithYield(1, 5), cropWithYield(1, 5), cropWithYield(1, 5)},
			Diagnostics:  recentDiags(40),
			Loans:        []entities.LoanApplication{{Status: entities.LoanRepaid}, {Status: entities.LoanRepaid}, {Status: entities.LoanRepaid}, {Status: entities.LoanRepaid}, {Status: entities.LoanRepaid}},
			Subscription: &entities.Subscription{Status: entities.SubscriptionActive},
			Now:          now,
		},
		{
			Loans: []entities.LoanApplication{
				{Status: entities.LoanDefaulted}, {Status: entities.LoanDefaulted},
				{Status: entities.LoanDefaulted}, {Status: entities.LoanDefaulted},
			},
			Now: now,
		},
	}
	for _, in := range inputs {
		res := scoring.Compute(in)
		assert.GreaterOrEqual(t, res.Score, scoring.ScoreFloor)
		assert.LessOrEqual(t, res.Score, scoring.ScoreCeiling)
		for _, f := range []float64{
			res.Factors.FarmCompleteness,
			res.Factors.DiagnosticActivity,
			res.Factors.PaymentHistory,
			res.Factors.YieldPerformance,
			res.Factors.SubscriptionStatus,
		} {
			assert.GreaterOrEqual(t, f, 0.0)
			assert.LessOrEqual(t, f, 100.0)
		}
		assert.Equal(t, res, scoring.Compute(in), "identical inputs must give identical results")
	}
}

func TestDiagnosticActivityMonotonic(t *testing.T) {
	prev := -1
	for n := 0; n <= 8; n++ {
		res := scoring.Compute(scoring.Inputs{Diagnostics: recentDiags(n), Now: now})
		assert.GreaterOrEqual(t, res.Score, prev, "more recent scans must never lower the score")
		prev = res.Score
	}

	// 5 scans saturate the metric
	five := scoring.DiagnosticActivity(recentDiags(5), now)
	nine := scoring.DiagnosticActivity(recentDiags(9), now)
	assert.Equal(t, 100.0, five)
	assert.Equal(t, five, nine)
}

func TestDiagnosticActivityWindow(t *testing.T) {
	diags := []entities.Diagnostic{
		{CreatedAt: now.AddDate(0, 0, -89)},
		{CreatedAt: now.AddDate(0, 0, -90)}, // inclusive boundary
		{CreatedAt: now.AddDate(0, 0, -91)}, // outside
	}
	assert.Equal(t, 40.0, scoring.DiagnosticActivity(diags, now))
}

func TestPaymentHistory(t *testing.T) {
	mk := func(statuses ...entities.LoanStatus) []entities.LoanApplication {
		out := make([]entities.LoanApplication, len(statuses))
		for i, s := range statuses {
			out[i] = entities.LoanApplication{Status: s}
		}
		return out
	}

	assert.Equal(t, 80.0, scoring.PaymentHistory(nil), "never applied is neutral")
	assert.Equal(t, 75.0, scoring.PaymentHistory(mk(entities.LoanPending)))
	assert.Equal(t, 75.0, scoring.PaymentHistory(mk(entities.LoanApproved, entities.LoanDisbursed)))
	assert.Equal(t, 85.0, scoring.PaymentHistory(mk(entities.LoanRepaid)))
	assert.Equal(t, 100.0, scoring.PaymentHistory(mk(
		entities.LoanRepaid, entities.LoanRepaid, entities.LoanRepaid,
		entities.LoanRepaid, entities.LoanRepaid)), "repaid bonus caps at 100")
	assert.Equal(t, 55.0, scoring.PaymentHistory(mk(entities.LoanDefaulted)))
	assert.Equal(t, 30.0, scoring.PaymentHistory(mk(entities.LoanDefaulted, entities.LoanDefaulted)))
	assert.Equal(t, 20.0, scoring.PaymentHistory(mk(
		entities.LoanDefaulted, entities.LoanDefaulted, entities.LoanDefaulted)), "penalty floors at 20")
	assert.Equal(t, 55.0, scoring.PaymentHistory(mk(entities.LoanDefaulted, entities.LoanRepaid)),
		"a default outweighs repayments")

	// default-no-penalty: never applied strictly beats one default
	assert.Greater(t, scoring.PaymentHistory(nil), scoring.PaymentHistory(mk(entities.LoanDefaulted)))
}

func TestYieldPerformance(t *testing.T) {
	assert.Equal(t, 50.0, scoring.YieldPerformance(nil), "no crops at all")
	assert.Equal(t, 45.0, scoring.YieldPerformance([]entities.Crop{{Name: "maize"}}),
		"crops exist but none harvested")

	// exactly meeting expectation lands on the 80-point baseline
	assert.Equal(t, 80.0, scoring.YieldPerformance([]entities.Crop{cropWithYield(10, 10)}))

	// three measured crops earn the consistency bonus
	assert.Equal(t, 90.0, scoring.YieldPerformance([]entities.Crop{
		cropWithYield(10, 10), cropWithYield(8, 8), cropWithYield(5, 5),
	}))
}

func TestYieldRatioCap(t *testing.T) {
	exact := scoring.YieldPerformance([]entities.Crop{cropWithYield(10, 12)}) // ratio 1.2
	over := scoring.YieldPerformance([]entities.Crop{cropWithYield(10, 20)})  // ratio 2.0, capped
	assert.Equal(t, exact, over, "over-performance past the cap contributes the same")
	assert.Equal(t, 96.0, exact)
}

func TestFarmCompleteness(t *testing.T) {
	assert.Equal(t, 0.0, scoring.FarmCompleteness(nil, 10), "no farm means zero, crops or not")

	half := &entities.Farm{Name: "a", Location: "b", SoilType: "clay"}
	assert.Equal(t, 50.0, scoring.FarmCompleteness(half, 0))

	assert.Equal(t, 100.0, scoring.FarmCompleteness(fullFarm(), 0))
	assert.Equal(t, 100.0, scoring.FarmCompleteness(fullFarm(), 3), "bonus is capped at 100")

	// bonus applies below the cap
	assert.Equal(t, 60.0, scoring.FarmCompleteness(half, 3))
}

func TestRiskLevels(t *testing.T) {
	cases := []struct {
		score int
		want  types.RiskLevel
	}{
		{850, types.RiskExcellent},
		{750, types.RiskExcellent},
		{749, types.RiskVeryGood},
		{700, types.RiskVeryGood},
		{699, types.RiskGood},
		{650, types.RiskGood},
		{649, types.RiskFair},
		{600, types.RiskFair},
		{599, types.RiskPoor},
		{550, types.RiskPoor},
		{549, types.RiskVeryPoor},
		{300, types.RiskVeryPoor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, scoring.RiskLevelFor(tc.score), "score %d", tc.score)
	}
}

func TestMaxLoanFor(t *testing.T) {
	require.Equal(t, 0, scoring.MaxLoanFor(300))
	require.Equal(t, 700000, scoring.MaxLoanFor(850))
	require.Equal(t, 210000, scoring.MaxLoanFor(465))
}
