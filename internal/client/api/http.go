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

	"phonestock/internal/client/models"
	"phonestock/internal/common"
)

// HTTPClient talks HTTP+JSON to the marketplace API. It keeps the current
// bearer token in memory only; the session layer decides when to persist or
// clear credentials.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewHTTPClient constructs a client for the API rooted at baseURL
// (e.g. "http://127.0.0.1:8080/api"). timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.token = ""
}

// doJSON performs one request/response round trip. body is marshalled as
// JSON when non-nil; a 2xx response is decoded into out when out is non-nil.
// Transport failures wrap common.ErrUnavailable; non-2xx responses become a
// *ServerError carrying the server's message payload.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		// A missing or unparsable body falls back to a generic message.
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return &ServerError{Status: resp.StatusCode, Message: er.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &ServerError{Status: resp.StatusCode, Message: "malformed response body"}
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var ar AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &ar); err != nil {
		return nil, err
	}
	if err := validateAuthResponse(&ar); err != nil {
		return nil, err
	}
	return &ar, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password, role string) (*AuthResponse, error) {
	req := registerRequest{Name: name, Email: email, Password: password, Role: role}
	var ar AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/user", req, &ar); err != nil {
		return nil, err
	}
	if err := validateAuthResponse(&ar); err != nil {
		return nil, err
	}
	return &ar, nil
}

// validateAuthResponse rejects duck-typed success bodies that lack the token
// or user identity, so callers never see zero-valued credentials.
func validateAuthResponse(ar *AuthResponse) error {
	if ar.Token == "" || ar.User.ID == "" || ar.User.Email == "" {
		return &ServerError{Status: http.StatusOK, Message: "malformed response: missing token or user"}
	}
	return nil
}

// VerifyToken checks the currently held bearer token against the server.
// The returned user reflects the server's view, not any locally cached copy.
func (c *HTTPClient) VerifyToken(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, "/verify-token", nil, &u); err != nil {
		return nil, err
	}
	if u.ID == "" || u.Email == "" {
		return nil, &ServerError{Status: http.StatusOK, Message: "malformed response: missing user fields"}
	}
	return &u, nil
}

// Logout invalidates the server-side session. The response body is ignored.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *HTTPClient) ListPhones(ctx context.Context) ([]models.Phone, error) {
	var phones []models.Phone
	if err := c.doJSON(ctx, http.MethodGet, "/Phone", nil, &phones); err != nil {
		return nil, err
	}
	return phones, nil
}

func (c *HTTPClient) GetPhone(ctx context.Context, id string) (*models.Phone, error) {
	var p models.Phone
	if err := c.doJSON(ctx, http.MethodGet, "/Phone/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreatePhone(ctx context.Context, phone models.Phone) (*models.Phone, error) {
	phone.ID = "" // the server assigns ids
	var created models.Phone
	if err := c.doJSON(ctx, http.MethodPost, "/Phone", phone, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdatePhone(ctx context.Context, phone models.Phone) (*models.Phone, error) {
	var updated models.Phone
	if err := c.doJSON(ctx, http.MethodPut, "/Phone/"+url.PathEscape(phone.ID), phone, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListSellouts returns the sold-items history. Entries share the Phone shape;
// Quantity is the number of units sold.
func (c *HTTPClient) ListSellouts(ctx context.Context) ([]models.Phone, error) {
	var phones []models.Phone
	if err := c.doJSON(ctx, http.MethodGet, "/sellouts", nil, &phones); err != nil {
		return nil, err
	}
	return phones, nil
}

func (c *HTTPClient) SellPhone(ctx context.Context, req SellRequest) (*SellConfirmation, error) {
	var conf SellConfirmation
	if err := c.doJSON(ctx, http.MethodPost, "/delete", req, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}
