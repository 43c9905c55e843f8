package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/catalog-service/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createUserPayload struct {
	UserName  string `json:"user_name" validate:"required,min=1,max=30"`
	UserEmail string `json:"user_email" validate:"required,max=128"`
}

func (p *createUserPayload) Validate() error { return Struct(p) }

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantFields []string
	}{
		{
			name:    "valid payload",
			body:    `{"user_name": "Ada", "user_email": "ada@example.com"}`,
			wantErr: false,
		},
		{
			name:       "missing required fields",
			body:       `{}`,
			wantErr:    true,
			wantFields: []string{"user_name", "user_email"},
		},
		{
			name:       "name too long",
			body:       `{"user_name": "` + strings.Repeat("a", 31) + `", "user_email": "ada@example.com"}`,
			wantErr:    true,
			wantFields: []string{"user_name"},
		},
		{
			name:    "email is a plain bounded string, any format passes",
			body:    `{"user_name": "Ada", "user_email": "not-an-email"}`,
			wantErr: false,
		},
		{
			name:       "email too long",
			body:       `{"user_name": "Ada", "user_email": "` + strings.Repeat("a", 129) + `"}`,
			wantErr:    true,
			wantFields: []string{"user_email"},
		},
		{
			name:    "malformed json",
			body:    `{"user_name": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newJSONContext(t, tt.body)

			var payload createUserPayload
			err := BindAndValidate(c, &payload)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var httpErr *errs.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)

			gotFields := make([]string, 0, len(httpErr.Errors))
			for _, fe := range httpErr.Errors {
				gotFields = append(gotFields, fe.Field)
			}
			for _, want := range tt.wantFields {
				assert.Contains(t, gotFields, want)
			}
		})
	}
}

func TestBindAndValidate_BoundaryLengths(t *testing.T) {
	c := newJSONContext(t, `{"user_name": "`+strings.Repeat("a", 30)+`", "user_email": "ada@example.com"}`)

	var payload createUserPayload
	assert.NoError(t, BindAndValidate(c, &payload))
}

func TestBindAndValidate_FieldErrorMessages(t *testing.T) {
	c := newJSONContext(t, `{"user_name": "`+strings.Repeat("a", 31)+`", "user_email": "ada@example.com"}`)

	var payload createUserPayload
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "user_name", httpErr.Errors[0].Field)
	assert.Equal(t, "must not exceed 30 characters", httpErr.Errors[0].Error)
}
