package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eazywed/config"
	"eazywed/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSanitizeBody(t *testing.T) {
	got := sanitizeBody([]byte(`{"email":"a@b.pk","password":"hunter2","otp":"1234"}`), 1000)
	assert.Contains(t, got, `"email":"a@b.pk"`)
	assert.NotContains(t, got, "hunter2")
	assert.NotContains(t, got, "1234")
	assert.Contains(t, got, `"password":"[REDACTED]"`)

	assert.False(t, hasBody([]byte(" {} ")))
	assert.False(t, hasBody(nil))
	assert.True(t, hasBody([]byte(`{"rating":5}`)))
	assert.True(t, hasBody([]byte("plain text")))

	assert.Equal(t, "plain text", sanitizeBody([]byte("plain text"), 1000))

	large := `{"note":"` + strings.Repeat("x", 1000) + `"}`
	assert.Equal(t, "[Large payload - 1011 bytes]", sanitizeBody([]byte(large), 1000))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core), 1000))
	var seenBody string
	r.POST("/dashboard/user/reviews", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		seenBody = string(raw)
		_, hasLogger := c.Get("logger")
		assert.True(t, hasLogger)
		c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully"})
	})

	body := `{"bookingId":"b-1","rating":5,"password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/dashboard/user/reviews", strings.NewReader(body))
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, body, seenBody, "handler must see the original body")
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	bodyLogs := logs.FilterMessage("request body").All()
	require.Len(t, bodyLogs, 1)
	logged := bodyLogs[0].ContextMap()["body"].(string)
	assert.NotContains(t, logged, "secret")

	var finished []observer.LoggedEntry
	for _, e := range logs.All() {
		if strings.HasPrefix(e.Message, "POST /dashboard/user/reviews - Status: 201 - Duration: ") {
			finished = append(finished, e)
		}
	}
	require.Len(t, finished, 1)
	assert.Equal(t, "req-1", finished[0].ContextMap()["requestID"])
}

func TestRequestLogger_SkipsGetBodies(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core), 1000))
	r.GET("/dashboard/user/stats", func(c *gin.Context) { c.Status(http.StatusUnauthorized) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/user/stats", nil))

	assert.Equal(t, 0, logs.FilterMessage("request body").Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestLogger_DefaultConfigLogsBodies(t *testing.T) {
	prevConfig, prevLogger := config.AppConfig, utils.Logger
	t.Cleanup(func() {
		config.AppConfig, utils.Logger = prevConfig, prevLogger
	})

	v := viper.New()
	config.SetDefaults(v)
	require.NoError(t, v.Unmarshal(&config.AppConfig))
	utils.Logger = nil
	core, logs := observer.New(utils.GetLogger().Level())

	r := gin.New()
	r.Use(RequestLogger(zap.New(core), config.AppConfig.LogBodyLimit))
	r.POST("/dashboard/user/bookings", func(c *gin.Context) { c.Status(http.StatusCreated) })

	send := func(body string) {
		req := httptest.NewRequest(http.MethodPost, "/dashboard/user/bookings", strings.NewReader(body))
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	send(`{"service_id":"svc-1","date_time":"2026-03-01"}`)
	send(`{}`)

	bodyLogs := logs.FilterMessage("request body").All()
	require.Len(t, bodyLogs, 1)
	assert.Contains(t, bodyLogs[0].ContextMap()["body"], "svc-1")
}
