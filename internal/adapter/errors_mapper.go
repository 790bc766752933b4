package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Operation names prefixed to every mapped error, so a failed save can be
// told apart from a failed profile fetch in the client log.
const (
	opLogin      = "login"
	opCreatePet  = "add pet"
	opGetUser    = "get user"
	opUpdateUser = "update user"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError turns a non-2xx response of op into a sentinel error carrying
// the response body. Statuses without a sentinel keep their code and text.
func mapHTTPError(op string, resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%s: %w: %s", op, sentinel, body)
	}
	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("%s: http %d: %s", op, status, body)
}
