package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pet-portal/internal/config"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/utils"
	"github.com/MKhiriev/go-pet-portal/models"
)

// API paths.
const (
	loginPath      = "/api/v1/auth/login"
	getUserPath    = "/api/v1/auth/getuser"
	updateUserPath = "/api/v1/auth/updateUser"
	addPetPath     = "/addPet"

	// EmailHeader identifies the target account of an update.
	EmailHeader = "email"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress
// (adding "http://" when no scheme is given) and applies the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(logger)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request starts a request carrying ctx and, when a token is stored, the
// bearer credential.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// Login implements [ServerAdapter]. It POSTs {"email": email} to
// POST /api/v1/auth/login and returns the token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", ErrEmptyIdentity
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post(loginPath)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(opLogin, resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	return token, nil
}

// CreatePet implements [ServerAdapter]. It POSTs the pet to POST /addPet.
func (h *httpServerAdapter) CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	var created models.Pet

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(pet).
		SetResult(&created).
		Post(addPetPath)
	if err != nil {
		return models.Pet{}, fmt.Errorf("create pet request: %w", err)
	}
	if err = mapHTTPError(opCreatePet, resp); err != nil {
		return models.Pet{}, err
	}

	if len(resp.Body()) == 0 {
		return pet, nil
	}
	return created, nil
}

// GetUser implements [ServerAdapter]. It requests
// GET /api/v1/auth/getuser?email=<email>. Attributes other than the profile
// fields are ignored.
func (h *httpServerAdapter) GetUser(ctx context.Context, email string) (models.UserProfile, error) {
	if email == "" {
		return models.UserProfile{}, ErrEmptyIdentity
	}

	var profile models.UserProfile

	resp, err := h.request(ctx).
		SetQueryParam("email", email).
		SetResult(&profile).
		Get(getUserPath)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(opGetUser, resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// UpdateUser implements [ServerAdapter]. It PUTs the profile to
// PUT /api/v1/auth/updateUser with the target email in the "email" header.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, email string, profile models.UserProfile) (models.UserProfile, error) {
	if email == "" {
		return models.UserProfile{}, ErrEmptyIdentity
	}

	var updated models.UserProfile

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(EmailHeader, email).
		SetBody(profile).
		SetResult(&updated).
		Put(updateUserPath)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(opUpdateUser, resp); err != nil {
		return models.UserProfile{}, err
	}

	if len(resp.Body()) == 0 {
		return profile, nil
	}
	return updated, nil
}
