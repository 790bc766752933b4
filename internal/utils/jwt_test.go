package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	email := "u@x.com"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, email, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Email != email {
		t.Errorf("expected email %s, got %s", email, token.Email)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != email {
		t.Errorf("expected subject %q, got %s", email, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u@x.com", time.Hour, "key"},
		{"empty email", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u@x.com", 0, "key"},
		{"empty key", "iss", "u@x.com", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, "owner@pets.io", 5*time.Minute, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Email != "owner@pets.io" {
		t.Errorf("expected email owner@pets.io, got %s", parsedToken.Email)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "u@x.com", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "u@x.com", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "u@x.com", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"missing token", "Bearer", "", true},
		{"empty", "", "", true},
		{"too many parts", "Bearer a b", "", true},
		{"lower-case scheme", "bearer abc", "abc", false},
		{"basic scheme", "Basic xyz", "", true},
		{"token without scheme", "abc.def.ghi", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseSubjectUnverified_ReadsSubjectWithoutKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "u@x.com", time.Hour, "server-only-key")

	sub, err := ParseSubjectUnverified(genToken.SignedString)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sub != "u@x.com" {
		t.Errorf("expected u@x.com, got %s", sub)
	}
}

func TestParseSubjectUnverified_ExpiredTokenStillDecodes(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "u@x.com", -time.Hour, "key")

	sub, err := ParseSubjectUnverified(genToken.SignedString)
	if err != nil {
		t.Fatalf("expiry is not enforced client-side, got %v", err)
	}
	if sub != "u@x.com" {
		t.Errorf("expected u@x.com, got %s", sub)
	}
}

func TestParseSubjectUnverified_NoSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"name": "x"})
	signed, err := token.SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ParseSubjectUnverified(signed)
	if !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}
}

func TestParseSubjectUnverified_Garbage(t *testing.T) {
	if _, err := ParseSubjectUnverified("garbage"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}
