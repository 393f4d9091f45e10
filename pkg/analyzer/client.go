package analyzer

import "context"

// ScanRequest describes one crop scan submitted by a farmer.
type ScanRequest struct {
	CropName string
	Symptoms string
	PhotoURL string
}

// ScanResult is the analyzer's verdict, persisted as a Diagnostic event.
type ScanResult struct {
	Finding  string
	Severity string // none|low|moderate|severe
}

type Client interface {
	AnalyzeCrop(ctx context.Context, req ScanRequest) (ScanResult, error)
}
