package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

type httpAuthClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// envelope mirrors [models.Response] with Data left undecoded, since its
// shape depends on the outcome.
type envelope struct {
	Code    models.ResponseCode    `json:"code"`
	Message models.ResponseMessage `json:"message"`
	Data    json.RawMessage        `json:"data"`
}

// NewHTTPAuthClient constructs an [AuthClient] for the server at address.
// A bare "host:port" address is treated as plain HTTP.
func NewHTTPAuthClient(address string, timeout time.Duration, logger *logger.Logger) (AuthClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpAuthClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpAuthClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpAuthClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *httpAuthClient) SignUp(ctx context.Context, req models.SignUpRequest) (models.UserData, error) {
	resp, err := c.jsonRequest(ctx, req).Post("/api/auth/sign-up")
	if err != nil {
		return models.UserData{}, fmt.Errorf("sign up request: %w", err)
	}

	return userDataFromResponse(resp)
}

func (c *httpAuthClient) SignIn(ctx context.Context, req models.SignInRequest) (models.UserData, error) {
	resp, err := c.jsonRequest(ctx, req).Post("/api/auth/sign-in")
	if err != nil {
		return models.UserData{}, fmt.Errorf("sign in request: %w", err)
	}

	data, err := userDataFromResponse(resp)
	if err != nil {
		return models.UserData{}, err
	}

	token, ok := parseBearerToken(resp.Header().Get("Authorization"))
	if !ok {
		return models.UserData{}, ErrNoToken
	}
	c.SetToken(token)

	c.logger.Debug().Str("email", data.Email).Msg("signed in")
	return data, nil
}

func (c *httpAuthClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.UserData, error) {
	resp, err := c.jsonRequest(ctx, req).Put("/api/auth/password")
	if err != nil {
		return models.UserData{}, fmt.Errorf("change password request: %w", err)
	}

	return userDataFromResponse(resp)
}

func (c *httpAuthClient) Me(ctx context.Context) (models.UserData, error) {
	resp, err := c.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.UserData{}, fmt.Errorf("me request: %w", err)
	}

	return userDataFromResponse(resp)
}

func (c *httpAuthClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	return strings.TrimSpace(resp.String()), nil
}

func (c *httpAuthClient) jsonRequest(ctx context.Context, body any) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func (c *httpAuthClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// userDataFromResponse maps resp to the user data of a success envelope or
// to the error matching its status.
func userDataFromResponse(resp *resty.Response) (models.UserData, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return models.UserData{}, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		var data models.UserData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return models.UserData{}, fmt.Errorf("decode user data: %w", err)
		}
		return data, nil
	case http.StatusBadRequest:
		return models.UserData{}, &models.Failure{Code: env.Code, Reason: reasonOf(env)}
	case http.StatusUnauthorized:
		return models.UserData{}, fmt.Errorf("%w: %s", ErrUnauthorized, reasonOf(env))
	default:
		return models.UserData{}, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode(), env.Message)
	}
}

// reasonOf returns the failure reason, falling back to the fixed message
// when data is not a string.
func reasonOf(env envelope) string {
	var reason string
	if err := json.Unmarshal(env.Data, &reason); err != nil || reason == "" {
		return string(env.Message)
	}
	return reason
}

func parseBearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
