package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// FeedbackClient asks the external text-generation service for a taunt.
// The rounded delta is the sole input; any error means the caller should
// use the local fallback instead.
type FeedbackClient interface {
	Generate(ctx context.Context, delta float64) (FeedbackResult, error)
}

var errFeedbackDisabled = errors.New("feedback service not configured")

// newFeedbackClient returns an HTTP-backed client, or a disabled client
// when no URL is configured so every round takes the local fallback.
func newFeedbackClient(url string, timeout time.Duration) FeedbackClient {
	if strings.TrimSpace(url) == "" {
		return disabledFeedbackClient{}
	}
	return &httpFeedbackClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type httpFeedbackClient struct {
	url    string
	client *http.Client
}

func (f *httpFeedbackClient) Generate(ctx context.Context, delta float64) (FeedbackResult, error) {
	body, err := json.Marshal(map[string]float64{"delta": delta})
	if err != nil {
		return FeedbackResult{}, fmt.Errorf("encode feedback request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return FeedbackResult{}, fmt.Errorf("build feedback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return FeedbackResult{}, fmt.Errorf("feedback request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FeedbackResult{}, fmt.Errorf("feedback service returned status %d", resp.StatusCode)
	}

	var result FeedbackResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return FeedbackResult{}, fmt.Errorf("decode feedback response: %w", err)
	}
	if strings.TrimSpace(result.Message) == "" {
		return FeedbackResult{}, errors.New("feedback service returned an empty message")
	}
	return result, nil
}

type disabledFeedbackClient struct{}

func (disabledFeedbackClient) Generate(context.Context, float64) (FeedbackResult, error) {
	return FeedbackResult{}, errFeedbackDisabled
}
