// Package mlservice is the HTTP client for the career ML inference service.
package mlservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/Abraxas-365/pathway/guidance/prediction"
)

const maxErrorBody = 64 << 10

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// predictionWire mirrors the service's response, where skills_match is a fraction
type predictionWire struct {
	PrimaryCareer      string                         `json:"primary_career"`
	Confidence         float64                        `json:"confidence"`
	AlternativeCareers []prediction.AlternativeCareer `json:"alternative_careers"`
	SkillsMatch        float64                        `json:"skills_match"`
	Recommendations    []string                       `json:"recommendations"`
	Note               string                         `json:"note,omitempty"`
}

// Predict calls POST /predict
func (c *Client) Predict(ctx context.Context, profile prediction.CandidateProfile) (*prediction.CareerPrediction, error) {
	var wire predictionWire
	if err := c.do(ctx, http.MethodPost, "/predict", profile, &wire); err != nil {
		return nil, err
	}

	alternatives := wire.AlternativeCareers
	if alternatives == nil {
		alternatives = []prediction.AlternativeCareer{}
	}
	return &prediction.CareerPrediction{
		PrimaryCareer:      wire.PrimaryCareer,
		Confidence:         wire.Confidence,
		AlternativeCareers: alternatives,
		SkillsMatch:        percentOf(wire.SkillsMatch),
		Recommendations:    wire.Recommendations,
		Note:               wire.Note,
	}, nil
}

// Careers calls GET /careers
func (c *Client) Careers(ctx context.Context) (*prediction.Catalog, error) {
	var catalog prediction.Catalog
	if err := c.do(ctx, http.MethodGet, "/careers", nil, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// GeneratePlan calls POST /generate-path
func (c *Client) GeneratePlan(ctx context.Context, req learningpath.GenerateRequest) (*learningpath.Plan, error) {
	var plan learningpath.Plan
	if err := c.do(ctx, http.MethodPost, "/generate-path", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Ping calls GET /health
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isUnreachable(err) {
			return fmt.Errorf("%w: %v", prediction.ErrServiceUnavailable, err)
		}
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return responseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// responseError extracts FastAPI's "detail" or a generic "message" from an error answer
func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload struct {
		Detail  any    `json:"detail"`
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(raw, &payload) == nil {
		switch d := payload.Detail.(type) {
		case string:
			msg = d
		case nil:
		default:
			if b, err := json.Marshal(d); err == nil {
				msg = string(b)
			}
		}
		if msg == "" {
			msg = payload.Message
		}
	}
	return &prediction.ServiceError{StatusCode: resp.StatusCode, Message: msg}
}

// isUnreachable reports a refused connection or a timeout
func isUnreachable(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// percentOf turns the service's fractional skills_match into a 0..100 integer.
// The service reports len(skills)/10, so values above 1 saturate.
func percentOf(v float64) int {
	return int(min(max(math.Round(v*100), 0), 100))
}
