package serviceImp

import (
	"context"
	"time"

	"github.com/montanaflynn/stats"

	"agrimarket/pkg/analytics/service"
	"agrimarket/pkg/creditscore/scoring"
	farmrepo "agrimarket/pkg/farm/repository"
)

type analyticsSvc struct{ farms farmrepo.FarmRepository }

func New(farms farmrepo.FarmRepository) service.AnalyticsService {
	return &analyticsSvc{farms: farms}
}

func (s *analyticsSvc) YieldAnalytics(ctx context.Context, userID uint, from, to *time.Time) (*service.YieldReport, error) {
	crops, err := s.farms.CropsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rep := &service.YieldReport{From: from, To: to, Crops: []service.CropYield{}}
	var ratios []float64
	for _, cr := range crops {
		if from != nil && cr.PlantedAt.Before(*from) {
			continue
		}
		if to != nil && cr.PlantedAt.After(*to) {
			continue
		}
		line := service.CropYield{
			CropID:       cr.CropID,
			FarmID:       cr.FarmID,
			Name:         cr.Name,
			ExpectedTons: cr.ExpectedYieldTons,
			ActualTons:   cr.ActualYieldTons,
		}
		if cr.ExpectedYieldTons != nil {
			rep.TotalExpected += *cr.ExpectedYieldTons
		}
		if cr.ActualYieldTons != nil {
			rep.TotalActual += *cr.ActualYieldTons
		}
		if cr.ExpectedYieldTons != nil && *cr.ExpectedYieldTons > 0 && cr.ActualYieldTons != nil {
			ratio := *cr.ActualYieldTons / *cr.ExpectedYieldTons
			if ratio > scoring.YieldRatioCap {
				ratio = scoring.YieldRatioCap
			}
			line.Ratio = &ratio
			ratios = append(ratios, ratio)
		}
		rep.Crops = append(rep.Crops, line)
	}

	rep.MeasuredCount = len(ratios)
	if len(ratios) > 0 {
		if m, err := stats.Mean(ratios); err == nil {
			rep.MeanRatio = m
		}
		if sd, err := stats.StandardDeviation(ratios); err == nil {
			rep.StdDevRatio = sd
		}
	}
	return rep, nil
}
