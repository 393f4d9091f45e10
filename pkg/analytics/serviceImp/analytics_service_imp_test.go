package serviceImp_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agrimarket/entities"
	analyticsSvcImp "agrimarket/pkg/analytics/serviceImp"
	farmRepoImp "agrimarket/pkg/farm/repositoryImp"
)

func seedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Farm{}, &entities.Crop{}))
	return db
}

func TestYieldAnalytics(t *testing.T) {
	db := seedDB(t)
	fp := func(v float64) *float64 { return &v }
	planted := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	farm := entities.Farm{UserID: 3, Name: "Riverside"}
	require.NoError(t, db.Create(&farm).Error)
	crops := []entities.Crop{
		{FarmID: farm.FarmID, Name: "maize", PlantedAt: planted, ExpectedYieldTons: fp(10), ActualYieldTons: fp(8)},
		{FarmID: farm.FarmID, Name: "beans", PlantedAt: planted, ExpectedYieldTons: fp(5), ActualYieldTons: fp(12)}, // ratio capped at 1.2
		{FarmID: farm.FarmID, Name: "kale", PlantedAt: planted, ExpectedYieldTons: fp(2)},                           // not yet harvested
	}
	for i := range crops {
		require.NoError(t, db.Create(&crops[i]).Error)
	}

	svc := analyticsSvcImp.New(farmRepoImp.New(db))
	rep, err := svc.YieldAnalytics(context.Background(), 3, nil, nil)
	require.NoError(t, err)

	require.Len(t, rep.Crops, 3)
	assert.Equal(t, 2, rep.MeasuredCount)
	assert.Equal(t, 17.0, rep.TotalExpected)
	assert.Equal(t, 20.0, rep.TotalActual)
	assert.InDelta(t, 1.0, rep.MeanRatio, 1e-9) // (0.8 + 1.2) / 2
	assert.InDelta(t, 0.2, rep.StdDevRatio, 1e-9)
}

func TestYieldAnalyticsDateRange(t *testing.T) {
	db := seedDB(t)
	fp := func(v float64) *float64 { return &v }

	farm := entities.Farm{UserID: 3, Name: "Riverside"}
	require.NoError(t, db.Create(&farm).Error)
	early := entities.Crop{FarmID: farm.FarmID, Name: "maize",
		PlantedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ExpectedYieldTons: fp(10), ActualYieldTons: fp(10)}
	late := entities.Crop{FarmID: farm.FarmID, Name: "beans",
		PlantedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), ExpectedYieldTons: fp(5), ActualYieldTons: fp(4)}
	require.NoError(t, db.Create(&early).Error)
	require.NoError(t, db.Create(&late).Error)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := analyticsSvcImp.New(farmRepoImp.New(db))
	rep, err := svc.YieldAnalytics(context.Background(), 3, &from, nil)
	require.NoError(t, err)

	require.Len(t, rep.Crops, 1)
	assert.Equal(t, "beans", rep.Crops[0].Name)
	assert.InDelta(t, 0.8, rep.MeanRatio, 1e-9)
}

func TestYieldAnalyticsEmptyAccount(t *testing.T) {
	db := seedDB(t)
	svc := analyticsSvcImp.New(farmRepoImp.New(db))
	rep, err := svc.YieldAnalytics(context.Background(), 99, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rep.Crops)
	assert.Zero(t, rep.MeasuredCount)
	assert.Zero(t, rep.MeanRatio)
}
