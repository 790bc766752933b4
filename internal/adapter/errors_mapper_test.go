package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithStatus(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().SetContext(context.Background()).Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "conflict", status: http.StatusConflict, want: ErrConflict},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(opGetUser, responseWithStatus(t, tt.status, "details"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "details")
			assert.True(t, strings.HasPrefix(err.Error(), "get user: "))
		})
	}
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, mapHTTPError(opCreatePet, responseWithStatus(t, http.StatusOK, "")))
	assert.NoError(t, mapHTTPError(opCreatePet, responseWithStatus(t, http.StatusCreated, "")))
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	err := mapHTTPError(opCreatePet, responseWithStatus(t, http.StatusTeapot, ""))
	require.Error(t, err)
	assert.Equal(t, "add pet: http 418: I'm a teapot", err.Error())
}
