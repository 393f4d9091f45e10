package serviceImp

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"agrimarket/entities"
	"agrimarket/pkg/creditscore/repository"
	"agrimarket/pkg/creditscore/scoring"
	"agrimarket/pkg/creditscore/service"
	"agrimarket/pkg/creditscore/types"
	diagrepo "agrimarket/pkg/diagnostic/repository"
	farmrepo "agrimarket/pkg/farm/repository"
	loanrepo "agrimarket/pkg/loan/repository"
	subrepo "agrimarket/pkg/subscription/repository"
)

// FreshnessWindow is how long a ledger entry satisfies reads before the
// score is recomputed.
const FreshnessWindow = 24 * time.Hour

type ScoreSvc struct {
	scores repository.ScoreRepository
	farms  farmrepo.FarmRepository
	diags  diagrepo.DiagnosticRepository
	loans  loanrepo.LoanRepository
	subs   subrepo.SubscriptionRepository
	log    *zap.Logger
	now    func() time.Time
}

func NewScoreService(
	scores repository.ScoreRepository,
	farms farmrepo.FarmRepository,
	diags diagrepo.DiagnosticRepository,
	loans loanrepo.LoanRepository,
	subs subrepo.SubscriptionRepository,
	log *zap.Logger,
) *ScoreSvc {
	return &ScoreSvc{
		scores: scores,
		farms:  farms,
		diags:  diags,
		loans:  loans,
		subs:   subs,
		log:    log,
		now:    time.Now,
	}
}

var _ service.ScoreService = (*ScoreSvc)(nil)

func (s *ScoreSvc) GetCreditScore(ctx context.Context, userID uint) (types.Result, bool, error) {
	latest, err := s.scores.LatestByUser(ctx, userID)
	if err != nil {
		return types.Result{}, false, err
	}
	now := s.now()
	if !stale(latest, now) {
		return resultFromEntry(latest), false, nil
	}

	res, err := s.compute(ctx, userID, now)
	if err != nil {
		return types.Result{}, false, err
	}
	if err := s.scores.Append(ctx, entryFromResult(userID, res)); err != nil {
		// The just-computed result is still valid; the ledger write is
		// cache, not correctness. Must never be swallowed silently.
		s.log.Error("credit score ledger append failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}
	return res, true, nil
}

func (s *ScoreSvc) History(ctx context.Context, userID uint) ([]entities.CreditScore, error) {
	return s.scores.HistoryByUser(ctx, userID)
}

// stale is the two-state freshness policy: an absent entry, or one whose
// age reached the window, forces recomputation.
func stale(e *entities.CreditScore, now time.Time) bool {
	return e == nil || now.Sub(e.CalculatedAt) >= FreshnessWindow
}

// compute assembles the score inputs with independent concurrent reads,
// then runs the pure formula. Any fetch failure aborts the computation:
// a partial bundle would produce a silently wrong score.
func (s *ScoreSvc) compute(ctx context.Context, userID uint, now time.Time) (types.Result, error) {
	var (
		farm  *entities.Farm
		crops []entities.Crop
		diags []entities.Diagnostic
		loans []entities.LoanApplication
		sub   *entities.Subscription
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		farm, err = s.farms.FirstByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		crops, err = s.farms.CropsByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		diags, err = s.diags.RecentByUser(gctx, userID, now.AddDate(0, 0, -scoring.RecentScanWindowDays))
		return err
	})
	g.Go(func() error {
		var err error
		loans, err = s.loans.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		sub, err = s.subs.CurrentByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.Result{}, err
	}
	return scoring.Compute(scoring.Inputs{
		Farm:         farm,
		Crops:        crops,
		Diagnostics:  diags,
		Loans:        loans,
		Subscription: sub,
		Now:          now,
	}), nil
}

func entryFromResult(userID uint, r types.Result) *entities.CreditScore {
	f := r.Factors
	f.MaxLoanEligible = r.MaxLoanEligible
	return &entities.CreditScore{
		UserID:            userID,
		Score:             r.Score,
		RiskLevel:         string(r.RiskLevel),
		RepaymentCapacity: r.RepaymentCapacity,
		FarmViability:     r.FarmViability,
		Factors:           f,
		CalculatedAt:      r.CalculatedAt,
	}
}

func resultFromEntry(e *entities.CreditScore) types.Result {
	maxLoan := e.Factors.MaxLoanEligible
	if maxLoan == 0 {
		// older rows stored factors without the ceiling
		maxLoan = scoring.MaxLoanFor(e.Score)
	}
	f := e.Factors
	f.MaxLoanEligible = 0
	return types.Result{
		Score:             e.Score,
		RiskLevel:         types.RiskLevel(e.RiskLevel),
		RepaymentCapacity: e.RepaymentCapacity,
		FarmViability:     e.FarmViability,
		Factors:           f,
		MaxLoanEligible:   maxLoan,
		CalculatedAt:      e.CalculatedAt,
	}
}
