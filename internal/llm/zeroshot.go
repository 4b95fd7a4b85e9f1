package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ZeroShotClient calls a hosted zero-shot classification endpoint
// (Hugging Face inference API shape: inputs + candidate labels in,
// parallel labels/scores arrays out).
type ZeroShotClient struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Model   string
}

func NewZeroShotClient(baseURL, apiKey, model string) *ZeroShotClient {
	return &ZeroShotClient{
		Client:  &http.Client{Timeout: 30 * time.Second},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

func (z *ZeroShotClient) Available() bool {
	return z != nil && z.APIKey != ""
}

type zeroShotRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		CandidateLabels []string `json:"candidate_labels"`
	} `json:"parameters"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Classify scores input against the candidate labels and returns the top
// label with its score.
func (z *ZeroShotClient) Classify(ctx context.Context, input string, labels []string) (string, float64, error) {
	if !z.Available() {
		return "", 0, fmt.Errorf("zero-shot client not configured")
	}

	reqBody := zeroShotRequest{Inputs: input}
	reqBody.Parameters.CandidateLabels = labels
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s/models/%s", z.BaseURL, z.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+z.APIKey)

	resp, err := z.Client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("classification API error (status %d): %s", resp.StatusCode, string(body))
	}

	var out zeroShotResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", 0, err
	}
	if len(out.Labels) == 0 || len(out.Scores) == 0 {
		return "", 0, fmt.Errorf("classification returned no labels")
	}
	return out.Labels[0], out.Scores[0], nil
}
