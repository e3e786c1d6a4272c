package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"qkart-cli/internal/client/models"
	"qkart-cli/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// HTTPClient is the concrete Client talking JSON over HTTP to the backend.
type HTTPClient struct {
	endpointURL string
	httpClient  *http.Client
	log         logging.Logger
}

// NewHTTPClient builds a client for the backend at endpointURL (scheme,
// host and API prefix, no trailing slash required).
func NewHTTPClient(endpointURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		endpointURL: strings.TrimRight(endpointURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		log:         log,
	}
}

// errorPayload is the backend's error body for auth and cart endpoints.
type errorPayload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// authResponse is the body of a successful login or register call.
type authResponse struct {
	Success  bool            `json:"success"`
	Token    string          `json:"token"`
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
	Message  string          `json:"message"`
}

func (c *HTTPClient) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return c.FetchProducts(ctx)
	}
	var products []models.Product
	path := "/products/search?value=" + url.QueryEscape(q)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) FetchCart(ctx context.Context, token string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := c.do(ctx, http.MethodGet, "/cart", token, nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *HTTPClient) UpsertCartLine(ctx context.Context, token, productID string, quantity int) ([]models.CartLine, error) {
	body := models.CartLine{ProductID: productID, Quantity: quantity}
	var lines []models.CartLine
	if err := c.do(ctx, http.MethodPost, "/cart", token, body, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.Session, error) {
	body := map[string]string{"username": username, "password": password}
	var ar authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &ar); err != nil {
		return nil, err
	}
	if !ar.Success {
		if ar.Message != "" {
			return nil, &ValidationError{Message: ar.Message}
		}
		return nil, fmt.Errorf("login: %w", ErrUnavailable)
	}
	return &models.Session{Token: ar.Token, Username: ar.Username, Balance: ar.Balance}, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var ar authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", body, &ar); err != nil {
		return err
	}
	if !ar.Success {
		if ar.Message != "" {
			return &ValidationError{Message: ar.Message}
		}
		return fmt.Errorf("register: %w", ErrUnavailable)
	}
	return nil
}

// do issues one request and decodes a 2xx JSON body into out. Transport
// failures, undecodable bodies and unexpected statuses all map to the
// package sentinel errors here so callers never see a raw HTTP error.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed",
			"method", method, "path", path, "request_id", reqID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Warn(ctx, "undecodable response",
				"method", method, "path", path, "request_id", reqID, "error", err)
			return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
		}
		return nil
	}

	return c.mapStatus(ctx, method, path, reqID, resp)
}

// mapStatus converts a non-2xx response to the error taxonomy, keeping the
// backend's human-readable message where one was provided.
func (c *HTTPClient) mapStatus(ctx context.Context, method, path, reqID string, resp *http.Response) error {
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	c.log.Warn(ctx, "backend rejected request",
		"method", method, "path", path, "request_id", reqID,
		"status", resp.StatusCode, "message", payload.Message)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		if payload.Message != "" {
			return fmt.Errorf("%s: %w", payload.Message, ErrNotFound)
		}
		return ErrNotFound
	case http.StatusBadRequest:
		if payload.Message != "" {
			return &ValidationError{Message: payload.Message}
		}
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	default:
		return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, ErrUnavailable)
	}
}
