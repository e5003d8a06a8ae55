package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/placeholder-api/internal/api/httpx"
	"github.com/baharkarakas/placeholder-api/internal/api/validate"
	"github.com/baharkarakas/placeholder-api/internal/middleware"
	"github.com/baharkarakas/placeholder-api/internal/models"
	"github.com/baharkarakas/placeholder-api/internal/services"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// writeErr maps service and validation errors onto status codes. Anything
// unrecognised is logged and answered with a generic 500.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var ve *validate.Error
	switch {
	case errors.As(err, &ve):
		httpx.WriteError(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrPostNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrOwnerNotFound),
		errors.Is(err, services.ErrNoFields),
		errors.Is(err, services.ErrDuplicateUser):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		middleware.Logger(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(r, v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// pathID parses {id}. A value that is not an integer cannot name a record,
// so the caller answers it like a missing one.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func pageParams(r *http.Request) models.Page {
	q := r.URL.Query()
	return models.Page{
		Page:  positiveInt(q.Get("page"), defaultPage),
		Limit: positiveInt(q.Get("limit"), defaultLimit),
	}
}

func positiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// jsonID is an integer id sent either as a JSON number or as a numeric
// string. An empty string reads as zero.
type jsonID int64

func (id *jsonID) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*id = 0
			return nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("id %q is not an integer", s)
	}
	*id = jsonID(n)
	return nil
}

func (id *jsonID) int64Ptr() *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}
