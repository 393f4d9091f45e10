package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"agrimarket/pkg/creditscore/service"
	"agrimarket/pkg/creditscore/types"
)

type ScoreCtrl struct{ svc service.ScoreService }

func New(svc service.ScoreService) *ScoreCtrl { return &ScoreCtrl{svc} }

type scoreResp struct {
	types.Result
	IsNew bool `json:"is_new"`
}

// Get returns the caller's credit score. Identity comes from the
// authenticated session only; no user id is accepted from the request.
func (h *ScoreCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(uint)
	res, isNew, err := h.svc.GetCreditScore(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, scoreResp{Result: res, IsNew: isNew})
}

func (h *ScoreCtrl) History(c echo.Context) error {
	uid := c.Get("uid").(uint)
	out, err := h.svc.History(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// ExportHistory streams the caller's full score ledger as a spreadsheet.
func (h *ScoreCtrl) ExportHistory(c echo.Context) error {
	uid := c.Get("uid").(uint)
	entries, err := h.svc.History(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Credit Scores"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Calculated At", "Score", "Risk Level", "Repayment Capacity",
		"Farm Viability", "Max Loan Eligible", "Farm Completeness",
		"Diagnostic Activity", "Payment History", "Yield Performance",
		"Subscription",
	}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	for row, e := range entries {
		vals := []any{
			e.CalculatedAt.Format(time.RFC3339),
			e.Score,
			e.RiskLevel,
			e.RepaymentCapacity,
			e.FarmViability,
			e.Factors.MaxLoanEligible,
			e.Factors.FarmCompleteness,
			e.Factors.DiagnosticActivity,
			e.Factors.PaymentHistory,
			e.Factors.YieldPerformance,
			e.Factors.SubscriptionStatus,
		}
		for col, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="credit_scores.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
