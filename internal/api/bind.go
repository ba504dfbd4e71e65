package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/crisisvoices/backend/pkg/response"
)

var errTrailingData = errors.New("request body must contain a single JSON object")

// decodeJSON decodes exactly one JSON object from the request body into dst.
// Unknown fields are rejected.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return errTrailingData
	}
	return nil
}

// bindJSON decodes the body and answers 413 or 400 itself on failure. It
// reports whether the handler should continue.
func bindJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeJSON(r, dst)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.RequestTooLarge(w, "request body too large")
		return false
	}
	if errors.Is(err, io.EOF) {
		response.BadRequest(w, "request body is empty")
		return false
	}
	response.BadRequest(w, "invalid request body")
	return false
}
