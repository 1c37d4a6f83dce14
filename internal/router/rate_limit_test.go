package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/draftpost/internal/http/response"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newLimitedEngine(client *redis.Client, rule RateLimitRule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(client, rule, KeyByIPAndMethod))
	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func statusCodeOf(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	r := newLimitedEngine(nil, RateLimitRule{WindowSeconds: 60, MaxRequests: 1})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
		if !strings.Contains(w.Body.String(), `"ok":true`) {
			t.Fatalf("request %d should pass without redis, got %s", i, w.Body.String())
		}
	}
}

func TestRateLimitMiddlewareBlocksAfterLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := newLimitedEngine(client, RateLimitRule{Prefix: "dp:rate:admin", WindowSeconds: 30, MaxRequests: 2})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
		if !strings.Contains(w.Body.String(), `"ok":true`) {
			t.Fatalf("request %d should pass, got %s", i, w.Body.String())
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
	if code := statusCodeOf(t, w); code != response.CodeTooManyRequests {
		t.Fatalf("third request want 429 got %d", code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("blocked response should carry Retry-After")
	}

	keys := mr.Keys()
	if len(keys) != 1 || !strings.HasPrefix(keys[0], "dp:rate:admin:post|") {
		t.Fatalf("unexpected limiter keys: %v", keys)
	}

	mr.FastForward(31 * time.Second)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("window should reset after expiry, got %s", w.Body.String())
	}
}

func TestRateLimitMiddlewareRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	r := newLimitedEngine(client, RateLimitRule{WindowSeconds: 30, MaxRequests: 2})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
	if code := statusCodeOf(t, w); code != response.CodeUnavailable {
		t.Fatalf("redis failure want 503 got %d", code)
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(10), want: 10, ok: true},
		{name: "int", input: int(11), want: 11, ok: true},
		{name: "float64", input: float64(13.9), want: 13, ok: true},
		{name: "string", input: "bad", want: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.input)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("want (%d,%v) got (%d,%v)", tc.want, tc.ok, got, ok)
			}
		})
	}
}
