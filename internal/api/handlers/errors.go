package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/threecommas/internal/store"
	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// Error codes carried in the "error" field of the envelope.
const (
	CodeNotFound      = "record_not_found"
	CodeInvalid       = "record_invalid"
	CodeInternalError = "internal_server_error"
)

func errorJSON(c echo.Context, status int, code, description string) error {
	return c.JSON(status, threecommas.ErrorBody{
		Error:            code,
		ErrorDescription: description,
	})
}

func notFound(c echo.Context) error {
	return errorJSON(c, http.StatusNotFound, CodeNotFound, "Not found")
}

func invalid(c echo.Context, description string) error {
	return errorJSON(c, http.StatusUnprocessableEntity, CodeInvalid, description)
}

// storeError maps a store error onto the matching HTTP response.
func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return notFound(c)
	case errors.Is(err, store.ErrInvalidValue):
		return invalid(c, err.Error())
	default:
		return errorJSON(c, http.StatusInternalServerError, CodeInternalError, err.Error())
	}
}

// pathID parses a numeric path parameter. ok is false when the value is not
// a positive integer.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt64 parses an optional integer query parameter, returning 0 when it
// is absent or malformed.
func queryInt64(c echo.Context, name string) int64 {
	v, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func page(c echo.Context) store.Page {
	return store.ParsePage(c.QueryParam("limit"), c.QueryParam("offset"))
}

// emptyIfNil keeps list responses as [] rather than null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
