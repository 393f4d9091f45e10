package analyzer

import (
	"context"
	"strings"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

// AnalyzeCrop returns a keyword-driven verdict so local development works
// without an external model endpoint.
func (m *mockClient) AnalyzeCrop(_ context.Context, req ScanRequest) (ScanResult, error) {
	s := strings.ToLower(req.Symptoms)
	switch {
	case strings.Contains(s, "wilt") || strings.Contains(s, "rot"):
		return ScanResult{Finding: "suspected fusarium wilt; isolate affected rows", Severity: "severe"}, nil
	case strings.Contains(s, "spot") || strings.Contains(s, "lesion"):
		return ScanResult{Finding: "fungal leaf spot; apply copper-based fungicide", Severity: "moderate"}, nil
	case strings.Contains(s, "yellow"):
		return ScanResult{Finding: "chlorosis consistent with nitrogen deficiency", Severity: "low"}, nil
	case s == "":
		return ScanResult{Finding: "no visible symptoms reported", Severity: "none"}, nil
	}
	return ScanResult{Finding: "no disease pattern matched; monitor the crop", Severity: "low"}, nil
}
