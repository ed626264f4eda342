package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Narrative is the prose returned by the text-generation collaborator.
type Narrative struct {
	Profile string `json:"profile"`
	Model   string `json:"model,omitempty"`
}

type Client interface {
	Generate(ctx context.Context, summary *Summary) (*Narrative, error)
}

type HTTPClient struct {
	baseURL    string
	token      string
	model      string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, token, model string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		token:      token,
		model:      model,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type generateRequest struct {
	Model   string   `json:"model,omitempty"`
	Summary *Summary `json:"summary"`
}

func (c *HTTPClient) Generate(ctx context.Context, summary *Summary) (*Narrative, error) {
	payload, err := json.Marshal(generateRequest{Model: c.model, Summary: summary})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/narratives", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("narrative service: %d %s", resp.StatusCode, string(body))
	}

	var n Narrative
	if err := json.Unmarshal(body, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
