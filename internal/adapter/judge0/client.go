// Package judge0 talks to a Judge0 CE compatible judging backend over HTTP.
package judge0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gitlab.com/dsa-judge.net/internal/config"
	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/ports/secondary"
	"gitlab.com/dsa-judge.net/internal/domain"
)

var _ secondary.JudgeClient = (*Client)(nil)

const statusFields = "token,status,stdout,stderr,compile_output,time,memory"

// Client implements the JudgeClient interface against the Judge0 batch API
type Client struct {
	baseURL         string
	authToken       string
	rapidAPIKey     string
	rapidAPIHost    string
	statusBatchSize int
	httpClient      *http.Client
	logger          primary.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the default http client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Judge0 client
func NewClient(cfg *config.JudgeConfig, logger primary.Logger, options ...ClientOption) *Client {
	c := &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		authToken:       cfg.AuthToken,
		rapidAPIKey:     cfg.RapidAPIKey,
		rapidAPIHost:    cfg.RapidAPIHost,
		statusBatchSize: cfg.StatusBatchSize,
		httpClient:      &http.Client{Timeout: cfg.RequestTimeout},
		logger:          logger,
	}
	if c.statusBatchSize <= 0 {
		c.statusBatchSize = 20
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// SubmitBatch posts all units in a single batch request
func (c *Client) SubmitBatch(ctx context.Context, units []domain.ExecutionUnit) ([]domain.Token, error) {
	body := batchRequest{Submissions: make([]submissionRequest, len(units))}
	for i, unit := range units {
		body.Submissions[i] = submissionRequest{
			SourceCode:     unit.SourceCode,
			LanguageID:     int(unit.LanguageCode),
			Stdin:          unit.Stdin,
			ExpectedOutput: unit.ExpectedOutput,
		}
	}

	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/submissions/batch", url.Values{"base64_encoded": {"false"}}, bytes.NewReader(bodyJSON))
	if err != nil {
		return nil, err
	}

	var created []tokenResponse
	if err := c.do(req, &created); err != nil {
		return nil, fmt.Errorf("failed to submit batch: %w", err)
	}

	tokens := make([]domain.Token, len(created))
	for i, t := range created {
		tokens[i] = domain.Token(t.Token)
	}

	c.logger.Debug("Batch submitted", "units", len(units), "tokens", len(tokens))
	return tokens, nil
}

// GetBatch fetches the state of the given tokens, chunked by the configured batch size
func (c *Client) GetBatch(ctx context.Context, tokens []domain.Token) ([]domain.UnitResult, error) {
	results := make([]domain.UnitResult, 0, len(tokens))

	for start := 0; start < len(tokens); start += c.statusBatchSize {
		end := min(start+c.statusBatchSize, len(tokens))

		ids := make([]string, 0, end-start)
		for _, token := range tokens[start:end] {
			ids = append(ids, string(token))
		}

		query := url.Values{
			"tokens":         {strings.Join(ids, ",")},
			"base64_encoded": {"false"},
			"fields":         {statusFields},
		}
		req, err := c.newRequest(ctx, http.MethodGet, "/submissions/batch", query, nil)
		if err != nil {
			return nil, err
		}

		var batch batchStatusResponse
		if err := c.do(req, &batch); err != nil {
			return nil, fmt.Errorf("failed to get batch status: %w", err)
		}

		for _, submission := range batch.Submissions {
			if submission == nil {
				continue
			}
			results = append(results, toUnitResult(submission))
		}
	}

	return results, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("X-Auth-Token", c.authToken)
	}
	if c.rapidAPIKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.rapidAPIKey)
		req.Header.Set("X-RapidAPI-Host", c.rapidAPIHost)
	}

	return req, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func toUnitResult(s *submissionResponse) domain.UnitResult {
	result := domain.UnitResult{
		Token:         domain.Token(s.Token),
		Status:        domain.StatusUnknown,
		Stdout:        s.Stdout,
		Stderr:        s.Stderr,
		CompileOutput: s.CompileOutput,
		Memory:        s.Memory,
	}

	if s.Status != nil {
		result.Status = translateStatus(s.Status.ID)
		result.StatusLabel = s.Status.Description
	}

	if s.Time != nil {
		if seconds, err := strconv.ParseFloat(*s.Time, 64); err == nil {
			result.Time = &seconds
		}
	}

	return result
}
