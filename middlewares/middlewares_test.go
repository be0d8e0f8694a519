package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamshad-ansari/fitpro-backend/middlewares"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthedRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middlewares.AuthRequired(secret), func(c *gin.Context) {
		id, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": id.Hex()})
	})
	return r
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	r := newAuthedRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_BadToken(t *testing.T) {
	r := newAuthedRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_ValidToken(t *testing.T) {
	const secret = "test-secret"
	userID := "64f1b2c3d4e5f6a7b8c9d0e1"

	token, err := utils.GenerateJWT(secret, userID, "a@b.com", time.Hour)
	require.NoError(t, err)

	r := newAuthedRouter(secret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID)
}

func TestIPRateLimiter_Blocks(t *testing.T) {
	limiter := middlewares.NewIPRateLimiter(1, 2)

	r := gin.New()
	r.GET("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[3], "burst exhausted")
}

func TestHTTPMetrics_CountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := middlewares.NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(metrics.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "fitpro_http_requests_total")
	assert.Contains(t, names, "fitpro_http_request_duration_seconds")
}
