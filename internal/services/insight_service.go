package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/devwrapped/devwrapped/internal/models"
	"github.com/devwrapped/devwrapped/pkg/logger"
)

// InsightService is the boundary to the external narrative generator. It
// forwards a stats object and hands back whatever structured insight the
// generator produced; beyond requiring a non-empty payload it does no
// schema validation, that is the generator's responsibility.
type InsightService struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewInsightService(endpoint, apiKey, model string) *InsightService {
	return &InsightService{
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type insightRequest struct {
	Stats *models.YearStats `json:"stats"`
	Model string            `json:"model,omitempty"`
}

// Generate asks the generator for a narrative built from stats.
func (s *InsightService) Generate(ctx context.Context, stats *models.YearStats) (*models.Insights, error) {
	if s.endpoint == "" {
		return nil, fmt.Errorf("insight generator is not configured")
	}

	body, err := json.Marshal(insightRequest{Stats: stats, Model: s.model})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal insight request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create insight request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insight request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("insight generator returned status %d", resp.StatusCode)
	}

	var insights models.Insights
	if err := json.NewDecoder(resp.Body).Decode(&insights); err != nil {
		return nil, fmt.Errorf("failed to decode insight response: %w", err)
	}
	if insights.Empty() {
		return nil, ErrEmptyInsights
	}

	logger.WithField("archetype", insights.Archetype).Debug("insights generated")
	return &insights, nil
}
