package shared

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name        string
		requestBody string
		want        payload
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "test"}`,
			want:        payload{Name: "test"},
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "test",}`,
			wantErr:     true,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			want:        payload{},
		},
		{
			name:        "empty object",
			requestBody: "{}",
			want:        payload{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var got payload
			err := DecodeJSON(req, &got)

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeJSONNilBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Body = nil

	var v struct{}
	assert.NoError(t, DecodeJSON(req, &v))
}

func TestIsFormRequest(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{contentType: "application/x-www-form-urlencoded", want: true},
		{contentType: "application/x-www-form-urlencoded; charset=utf-8", want: true},
		{contentType: "application/json", want: false},
		{contentType: "", want: false},
		{contentType: ";;bad", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", nil)
			req.Header.Set("Content-Type", tc.contentType)
			assert.Equal(t, tc.want, IsFormRequest(req))
		})
	}
}

func TestIsJSONRequest(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{contentType: "", want: true},
		{contentType: "application/json", want: true},
		{contentType: "application/json; charset=utf-8", want: true},
		{contentType: "text/plain", want: false},
		{contentType: "application/x-www-form-urlencoded", want: false},
		{contentType: ";;bad", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", nil)
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			assert.Equal(t, tc.want, IsJSONRequest(req))
		})
	}
}

type selfValidating struct {
	err error
}

func (s selfValidating) Validate() error {
	return s.err
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}

	t.Run("struct tags pass", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(payload{Name: "ok"}))
	})

	t.Run("struct tags fail", func(t *testing.T) {
		err := ValidateRequest(payload{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("validate method is preferred", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(selfValidating{}))
		assert.EqualError(t, ValidateRequest(selfValidating{err: assert.AnError}), assert.AnError.Error())
	})
}
