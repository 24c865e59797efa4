package validation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type pageQuery struct {
	Page int `form:"page,default=1" binding:"min=1"`
}

func bindJSON(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst signup
	return w, BindAndValidateJSON(c, &dst)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBindAndValidateJSON_Valid(t *testing.T) {
	_, ok := bindJSON(t, `{"email":"ada@example.com","password":"long enough"}`)
	assert.True(t, ok)
}

func TestBindAndValidateJSON_FieldErrors(t *testing.T) {
	w, ok := bindJSON(t, `{"email":"nope","password":"short"}`)
	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode(t, w)
	assert.Equal(t, CodeValidationFailed, resp.Code)
	require.Len(t, resp.Errors, 2)

	assert.Equal(t, "email", resp.Errors[0].Field)
	assert.Equal(t, "email must be a valid email", resp.Errors[0].Message)
	assert.Equal(t, "password", resp.Errors[1].Field)
	assert.Equal(t, "password must be at least 8", resp.Errors[1].Message)
}

func TestBindAndValidateJSON_Syntax(t *testing.T) {
	w, ok := bindJSON(t, `{"email":`)
	require.False(t, ok)

	resp := decode(t, w)
	assert.Equal(t, CodeInvalidBody, resp.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "syntax", resp.Errors[0].Rule)
}

func TestBindAndValidateQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		ok    bool
		code  string
	}{
		{"default", "", true, ""},
		{"explicit", "page=3", true, ""},
		{"not a number", "page=abc", false, CodeInvalidQuery},
		{"below minimum", "page=0", false, CodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			var dst pageQuery
			ok := BindAndValidateQuery(c, &dst)
			require.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.GreaterOrEqual(t, dst.Page, 1)
				return
			}
			assert.Equal(t, tt.code, decode(t, w).Code)
		})
	}
}

func TestWireName(t *testing.T) {
	type sample struct {
		Email      string `json:"email,omitempty"`
		SortBy     string `form:"sortBy"`
		Internal   string `json:"-"`
		PostalCode string
	}

	typ := reflect.TypeOf(sample{})
	want := []string{"email", "sortBy", "", "postalCode"}
	for i, name := range want {
		assert.Equal(t, name, wireName(typ.Field(i)))
	}
}

func TestBindAndValidateQuery_ReportsFormName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=0", nil)

	var dst pageQuery
	require.False(t, BindAndValidateQuery(c, &dst))

	resp := decode(t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "page", resp.Errors[0].Field)
	assert.Equal(t, "page must be at least 1", resp.Errors[0].Message)
}
