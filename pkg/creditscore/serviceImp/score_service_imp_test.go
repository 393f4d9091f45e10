package serviceImp

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agrimarket/entities"
	"agrimarket/pkg/creditscore/repository"
	scoreRepoImp "agrimarket/pkg/creditscore/repositoryImp"
	"agrimarket/pkg/creditscore/types"
	diagRepoImp "agrimarket/pkg/diagnostic/repositoryImp"
	farmrepo "agrimarket/pkg/farm/repository"
	farmRepoImp "agrimarket/pkg/farm/repositoryImp"
	loanRepoImp "agrimarket/pkg/loan/repositoryImp"
	subRepoImp "agrimarket/pkg/subscription/repositoryImp"
)

var t0 = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Farm{},
		&entities.Crop{},
		&entities.Diagnostic{},
		&entities.LoanApplication{},
		&entities.Subscription{},
		&entities.CreditScore{},
	))
	return db
}

func newTestService(t *testing.T, db *gorm.DB) *ScoreSvc {
	t.Helper()
	svc := NewScoreService(
		scoreRepoImp.New(db),
		farmRepoImp.New(db),
		diagRepoImp.New(db),
		loanRepoImp.New(db),
		subRepoImp.New(db),
		zap.NewNop(),
	)
	svc.now = func() time.Time { return t0 }
	return svc
}

func ledgerRows(t *testing.T, db *gorm.DB, uid uint) []entities.CreditScore {
	t.Helper()
	var out []entities.CreditScore
	require.NoError(t, db.Where("user_id = ?", uid).Order("entry_id ASC").Find(&out).Error)
	return out
}

func TestGetCreditScoreFreshCacheHit(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	res1, isNew, err := svc.GetCreditScore(ctx, 1)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, 465, res1.Score) // empty-account boundary score
	assert.Equal(t, types.RiskVeryPoor, res1.RiskLevel)
	assert.Equal(t, 210000, res1.MaxLoanEligible)
	require.Len(t, ledgerRows(t, db, 1), 1)

	// within the freshness window the cached entry is served
	svc.now = func() time.Time { return t0.Add(23 * time.Hour) }
	res2, isNew, err := svc.GetCreditScore(ctx, 1)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.True(t, res2.CalculatedAt.Equal(res1.CalculatedAt))
	assert.Equal(t, res1.Score, res2.Score)
	assert.Equal(t, res1.MaxLoanEligible, res2.MaxLoanEligible)
	assert.Equal(t, res1.Factors.PaymentHistory, res2.Factors.PaymentHistory)
	require.Len(t, ledgerRows(t, db, 1), 1, "a cache hit must not append")
}

func TestGetCreditScoreRecomputesWhenStale(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	_, _, err := svc.GetCreditScore(ctx, 1)
	require.NoError(t, err)

	t1 := t0.Add(25 * time.Hour)
	svc.now = func() time.Time { return t1 }
	res, isNew, err := svc.GetCreditScore(ctx, 1)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.True(t, res.CalculatedAt.Equal(t1))

	rows := ledgerRows(t, db, 1)
	require.Len(t, rows, 2, "recomputation appends, never updates in place")
	assert.True(t, rows[0].CalculatedAt.Equal(t0), "the superseded entry is retained for audit")
}

type failingScores struct{ repository.ScoreRepository }

func (f failingScores) Append(context.Context, *entities.CreditScore) error {
	return errors.New("disk full")
}

func TestAppendFailureStillReturnsResult(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	svc.scores = failingScores{svc.scores}

	res, isNew, err := svc.GetCreditScore(context.Background(), 1)
	require.NoError(t, err, "persistence is cache, not correctness")
	assert.True(t, isNew)
	assert.Equal(t, 465, res.Score)
	assert.Empty(t, ledgerRows(t, db, 1))
}

type failingFarms struct{ farmrepo.FarmRepository }

func (f failingFarms) FirstByUser(context.Context, uint) (*entities.Farm, error) {
	return nil, errors.New("store unavailable")
}

func TestFetchFailurePropagates(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	svc.farms = failingFarms{svc.farms}

	_, _, err := svc.GetCreditScore(context.Background(), 1)
	require.Error(t, err, "a partial fetch must not become a silently wrong score")
	assert.Empty(t, ledgerRows(t, db, 1), "no ledger write after an aborted computation")
}

func TestGetCreditScoreSeededAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	fp := func(v float64) *float64 { return &v }
	farm := entities.Farm{
		UserID: 7, Name: "Green Acres", Location: "Nakuru", SizeHectares: 4.5,
		SoilType: "loam", WaterSource: "well", Description: "maize, drip irrigated",
	}
	require.NoError(t, db.Create(&farm).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&entities.Crop{
			FarmID: farm.FarmID, Name: "maize",
			ExpectedYieldTons: fp(10), ActualYieldTons: fp(10),
		}).Error)
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&entities.Diagnostic{
			FarmID: farm.FarmID, CreatedAt: t0.AddDate(0, 0, -i-1),
		}).Error)
	}
	require.NoError(t, db.Create(&entities.LoanApplication{
		UserID: 7, AmountRequested: 50000, Status: entities.LoanRepaid,
	}).Error)
	require.NoError(t, db.Create(&entities.Subscription{
		UserID: 7, Plan: "annual", Status: entities.SubscriptionActive, StartedAt: t0,
	}).Error)

	res, isNew, err := svc.GetCreditScore(ctx, 7)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, 818, res.Score)
	assert.Equal(t, types.RiskExcellent, res.RiskLevel)
	assert.Equal(t, 85, res.RepaymentCapacity)
	assert.Equal(t, 95, res.FarmViability)

	// the ledger row carries the factors and the ceiling for rebuilds
	rows := ledgerRows(t, db, 7)
	require.Len(t, rows, 1)
	assert.Equal(t, res.MaxLoanEligible, rows[0].Factors.MaxLoanEligible)

	// another user's score is unaffected by user 7's activity
	other, _, err := svc.GetCreditScore(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, 465, other.Score)
}
