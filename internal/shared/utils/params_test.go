package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, url string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	return c, w
}

func TestParseDaysParam(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"missing falls back to default", "/stats", 7},
		{"valid value", "/stats?days=30", 30},
		{"not a number falls back", "/stats?days=week", 7},
		{"zero falls back", "/stats?days=0", 7},
		{"negative falls back", "/stats?days=-3", 7},
		{"above max is clamped", "/stats?days=9999", 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testContext(t, tt.url)
			assert.Equal(t, tt.want, ParseDaysParam(c, 7, 365))
		})
	}
}

func TestParseIDParam(t *testing.T) {
	c, _ := testContext(t, "/items/42")
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, ok := ParseIDParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestParseIDParamRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-1", ""} {
		c, w := testContext(t, "/items/"+raw)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		_, ok := ParseIDParam(c, "id")
		assert.False(t, ok, "value %q should be rejected", raw)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
