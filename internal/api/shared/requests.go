package shared

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const (
	// FormContentType is the media type of URL-encoded form bodies.
	FormContentType = "application/x-www-form-urlencoded"

	// JSONContentType is the media type of JSON bodies.
	JSONContentType = "application/json"
)

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
// An empty body decodes to the zero value and is not an error.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		// No body at all is an empty request
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	// Otherwise, use the struct validator
	return validate.Struct(v)
}

// mediaType returns the media type of the request body, or "" when the
// Content-Type header is absent or unparsable.
func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

// IsFormRequest reports whether the request body is URL-encoded form data.
func IsFormRequest(r *http.Request) bool {
	return mediaType(r) == FormContentType
}

// IsJSONRequest reports whether the request body should be read as JSON.
// A request without a Content-Type header counts as JSON.
func IsJSONRequest(r *http.Request) bool {
	if r.Header.Get("Content-Type") == "" {
		return true
	}
	return mediaType(r) == JSONContentType
}
