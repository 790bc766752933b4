package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pet-portal/internal/adapter"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/store"
	"github.com/MKhiriev/go-pet-portal/internal/utils"
	"github.com/MKhiriev/go-pet-portal/models"
)

type clientSessionService struct {
	cookies    store.CookieStore
	adapter    adapter.ServerAdapter
	cookieName string
	logger     *logger.Logger
}

// NewClientSessionService constructs a [ClientSessionService] that keeps the
// session token in the cookie named cookieName. Every credential it reads or
// stores is also handed to serverAdapter as the bearer token.
func NewClientSessionService(cookies store.CookieStore, serverAdapter adapter.ServerAdapter, cookieName string, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		cookies:    cookies,
		adapter:    serverAdapter,
		cookieName: cookieName,
		logger:     logger,
	}
}

func (s *clientSessionService) Credential(ctx context.Context) (models.Credential, error) {
	cookie, err := s.cookies.Get(ctx, s.cookieName)
	if errors.Is(err, store.ErrCookieNotFound) {
		s.adapter.SetToken("")
		return models.Credential{}, nil
	}
	if err != nil {
		return models.Credential{}, fmt.Errorf("read session cookie: %w", err)
	}

	cred, err := decodeCredential(cookie.Value)
	if err != nil {
		s.adapter.SetToken("")
		return models.Credential{}, err
	}

	s.adapter.SetToken(cred.Token)
	return cred, nil
}

func (s *clientSessionService) ImportToken(ctx context.Context, token string) (models.Credential, error) {
	cred, err := decodeCredential(token)
	if err != nil {
		return models.Credential{}, err
	}

	if err = s.cookies.Set(ctx, models.Cookie{Name: s.cookieName, Value: cred.Token}); err != nil {
		return models.Credential{}, fmt.Errorf("store session cookie: %w", err)
	}

	s.adapter.SetToken(cred.Token)
	s.logger.Info().Str("email", cred.Email).Msg("session token stored")
	return cred, nil
}

func (s *clientSessionService) Login(ctx context.Context, email string) (models.Credential, error) {
	token, err := s.adapter.Login(ctx, email)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	return s.ImportToken(ctx, token)
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	if err := s.cookies.Delete(ctx, s.cookieName); err != nil {
		return fmt.Errorf("delete session cookie: %w", err)
	}

	s.adapter.SetToken("")
	s.logger.Info().Msg("session token removed")
	return nil
}

// decodeCredential reads the identity claim of token without verifying it.
func decodeCredential(token string) (models.Credential, error) {
	token = strings.TrimSpace(token)
	email, err := utils.ParseSubjectUnverified(token)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	return models.Credential{Token: token, Email: email}, nil
}
