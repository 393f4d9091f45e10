package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) AnalyzeCrop(ctx context.Context, scan ScanRequest) (ScanResult, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a crop pathologist. Reply ONLY valid JSON."},
			{"role": "user", "content": renderScanPrompt(scan)},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return ScanResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return ScanResult{}, err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ScanResult{}, err
	}
	if len(out.Choices) == 0 {
		return ScanResult{}, fmt.Errorf("no choices")
	}

	var payload struct {
		Finding  string `json:"finding"`
		Severity string `json:"severity"`
	}
	raw := out.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return ScanResult{}, fmt.Errorf("parse scan result: %v / raw: %s", err, raw)
	}
	sev := strings.ToLower(strings.TrimSpace(payload.Severity))
	switch sev {
	case "none", "low", "moderate", "severe":
	default:
		sev = "low"
	}
	return ScanResult{Finding: strings.TrimSpace(payload.Finding), Severity: sev}, nil
}

func renderScanPrompt(scan ScanRequest) string {
	return fmt.Sprintf(`Diagnose this crop from the farmer's report.
Reply ONLY JSON: {"finding":"short actionable diagnosis","severity":"none|low|moderate|severe"}

CROP: %s
SYMPTOMS: %s
PHOTO: %s
`, scan.CropName, scan.Symptoms, scan.PhotoURL)
}
