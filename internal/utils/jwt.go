package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pet-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a token carries no "sub" claim.
var ErrEmptySubject = errors.New("empty subject in token")

// ErrInvalidAuthHeader is returned when an Authorization header is not of the
// form "Bearer <token>".
var ErrInvalidAuthHeader = errors.New("invalid authorization header")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given
// account email.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account email, the client's identity claim
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("pet-portal", "u@x.com", time.Hour, "secret")
func GenerateJWTToken(issuer, email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || email == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Email: email}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the account email from its subject.
//
// Validation includes signature verification with tokenSignKey, the issuer
// check against tokenIssuer, the expiration check, and presence of the
// subject claim.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	email, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if email == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{Token: token, SignedString: tokenString, Email: email}, nil
}

const bearerScheme = "Bearer"

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) || parts[1] == "" {
		return "", ErrInvalidAuthHeader
	}
	return parts[1], nil
}

// ParseSubjectUnverified decodes the payload of tokenString and returns its
// "sub" claim without verifying the signature or the expiry.
//
// Clients do not hold the signing key; the server remains the only authority
// on token validity. This is only suitable for reading the identity claim.
func ParseSubjectUnverified(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(tokenString), jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("read subject claim: %w", err)
	}
	if sub == "" {
		return "", ErrEmptySubject
	}

	return sub, nil
}
