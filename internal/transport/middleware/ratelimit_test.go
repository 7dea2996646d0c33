package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/studyquest-backend/pkg/ctxutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(h http.Handler, remote string, ctx context.Context) int {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil).WithContext(ctx)
	req.RemoteAddr = remote
	h.ServeHTTP(rec, req)
	return rec.Code
}

func newTestLimiter(t *testing.T) (*RateLimiter, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(clock, time.Minute)
	t.Cleanup(rl.Stop)
	return rl, clock
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl, _ := newTestLimiter(t)
	handler := rl.Limit(10)(okHandler())

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "1.2.3.4:1234", context.Background()), "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl, _ := newTestLimiter(t)
	handler := rl.Limit(5)(okHandler())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "1.2.3.4:1234", context.Background()))
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.RemoteAddr = "1.2.3.4:9999"
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestRateLimiter_DifferentCallersIndependent(t *testing.T) {
	rl, _ := newTestLimiter(t)
	handler := rl.Limit(2)(okHandler())

	for i := 0; i < 2; i++ {
		hit(handler, "1.1.1.1:1234", context.Background())
	}

	assert.Equal(t, http.StatusOK, hit(handler, "2.2.2.2:5678", context.Background()))

	userCtx := ctxutil.WithUserID(context.Background(), uuid.New())
	assert.Equal(t, http.StatusOK, hit(handler, "1.1.1.1:1234", userCtx))
	assert.Equal(t, http.StatusOK, hit(handler, "1.1.1.1:1234", userCtx))
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "1.1.1.1:1234", userCtx))
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	rl, clock := newTestLimiter(t)

	// 60 per minute = 1 per second
	handler := rl.Limit(60)(okHandler())

	for i := 0; i < 60; i++ {
		hit(handler, "3.3.3.3:1234", context.Background())
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "3.3.3.3:1234", context.Background()))

	clock.Advance(1100 * time.Millisecond)

	assert.Equal(t, http.StatusOK, hit(handler, "3.3.3.3:1234", context.Background()))
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl, _ := newTestLimiter(t)
	handler := rl.Limit(0)(okHandler())

	for i := 0; i < 100; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "4.4.4.4:1", context.Background()))
	}
}

func TestRateLimiter_SweepDropsIdleBuckets(t *testing.T) {
	rl, clock := newTestLimiter(t)
	handler := rl.Limit(1)(okHandler())

	hit(handler, "5.5.5.5:1", context.Background())
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "5.5.5.5:1", context.Background()))

	clock.Advance(bucketIdleTTL + time.Second)
	rl.sweep()

	_, ok := rl.buckets.Load("ip:5.5.5.5")
	assert.False(t, ok)
}
