// Package api is the HTTP client for the usuarios backend. It owns the wire
// contract (bearer injection, request correlation, Portuguese JSON bodies)
// and translates non-2xx answers into typed APIErrors; screen sequencing
// lives in internal/flow.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"savoia/internal/models"
	"savoia/internal/storage"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient wires the resty client: base URL and timeout from config, bearer
// token read from the store before every request, and defensive session
// invalidation on any 401 answer.
func NewClient(config models.APIConfiguration, tokens storage.ITokenStore, logger *zap.Logger) *Client {
	r := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(time.Duration(config.TimeoutSeconds) * time.Second).
		SetHeader("Content-Type", "application/json")

	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.New().String())
		if token := tokens.Get(); token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})

	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			logger.Warn("Backend rejected authorization, clearing stored token",
				zap.String("path", resp.Request.URL))
			tokens.Remove()
		}
		return nil
	})

	return &Client{http: r, logger: logger}
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	var payload models.ErrorPayload

	req := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetError(&payload)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}

	if resp.IsError() {
		c.logger.Debug("Backend rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.String("message", payload.BestMessage()))
		return &APIError{
			StatusCode: resp.StatusCode(),
			Message:    payload.BestMessage(),
			Fields:     payload.Fields,
		}
	}
	return nil
}
