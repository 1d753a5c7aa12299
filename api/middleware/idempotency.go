package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/plumbbid/backend/api/responses"
	pkgerrors "github.com/plumbbid/backend/pkg/errors"
	"github.com/plumbbid/backend/pkg/logger"
	pkgredis "github.com/plumbbid/backend/pkg/redis"
)

const (
	idempotencyHeader = "Idempotency-Key"

	defaultIdempotencyTTL = 24 * time.Hour
	jobIdempotencyTTL     = 7 * 24 * time.Hour
)

type idempotencyRule struct {
	method  string
	pattern string
	prefix  bool
	ttl     time.Duration
}

func (rule idempotencyRule) matches(method, pattern string) bool {
	if rule.method != method {
		return false
	}
	if rule.prefix {
		return strings.HasPrefix(pattern, rule.pattern)
	}
	return pattern == rule.pattern
}

// Job mutations carry the long TTL: a replayed create or reconciliation
// would silently re-snapshot prices.
var idempotencyRules = []idempotencyRule{
	{method: http.MethodPost, pattern: "/api/v1/bid-items", ttl: defaultIdempotencyTTL},
	{method: http.MethodPost, pattern: "/api/v1/fixture-items", ttl: defaultIdempotencyTTL},
	{method: http.MethodPost, pattern: "/api/v1/contractors", ttl: defaultIdempotencyTTL},
	{method: http.MethodPost, pattern: "/api/v1/jobs", ttl: jobIdempotencyTTL},
	{method: http.MethodPut, pattern: "/api/v1/jobs/", prefix: true, ttl: jobIdempotencyTTL},
}

func routeTTL(method, pattern string) (time.Duration, bool) {
	if pattern == "" {
		return 0, false
	}
	for _, rule := range idempotencyRules {
		if rule.matches(method, pattern) {
			return rule.ttl, true
		}
	}
	return 0, false
}

// storedResponse is the redis payload replayed on a repeated key.
type storedResponse struct {
	Status      int               `json:"status"`
	Body        string            `json:"body"`
	Headers     map[string]string `json:"headers,omitempty"`
	RequestHash string            `json:"request_hash"`
}

// Idempotency replays the stored response when a guarded mutation arrives
// twice with the same Idempotency-Key. A nil store disables the guard.
func Idempotency(store pkgredis.IdempotencyStore, logg *logger.Logger) func(http.Handler) http.Handler {
	guard := idempotencyGuard{store: store, logg: logg}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ttl, guarded := routeTTL(r.Method, routePattern(r))
			if !guarded || guard.store == nil {
				next.ServeHTTP(w, r)
				return
			}
			guard.serve(w, r, next, ttl)
		})
	}
}

type idempotencyGuard struct {
	store pkgredis.IdempotencyStore
	logg  *logger.Logger
}

func (g idempotencyGuard) serve(w http.ResponseWriter, r *http.Request, next http.Handler, ttl time.Duration) {
	clientKey := strings.TrimSpace(r.Header.Get(idempotencyHeader))
	if clientKey == "" {
		responses.WriteError(r.Context(), g.logg, w, pkgerrors.New(pkgerrors.CodeValidation, idempotencyHeader+" header required"))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		responses.WriteError(r.Context(), g.logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	sum := sha256.Sum256(body)
	digest := hex.EncodeToString(sum[:])
	storeKey := g.store.IdempotencyKey(r.Method+"|"+r.URL.Path, clientKey)

	stored, getErr := g.store.Get(r.Context(), storeKey)
	switch {
	case getErr != nil && !errors.Is(getErr, redis.Nil):
		responses.WriteError(r.Context(), g.logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, getErr, "check idempotency"))
		return
	case stored != "":
		g.replay(w, r, stored, digest)
		return
	}

	capture := &responseCapture{ResponseWriter: w}
	next.ServeHTTP(capture, r)
	g.persist(r.Context(), storeKey, capture, digest, ttl)
}

func (g idempotencyGuard) replay(w http.ResponseWriter, r *http.Request, stored, digest string) {
	var saved storedResponse
	if err := json.Unmarshal([]byte(stored), &saved); err != nil {
		responses.WriteError(r.Context(), g.logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode idempotency record"))
		return
	}
	if saved.RequestHash != digest {
		responses.WriteError(r.Context(), g.logg, w, pkgerrors.New(pkgerrors.CodeConflict, "idempotency key reused with different request body"))
		return
	}

	if ct := saved.Headers["Content-Type"]; ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(saved.Status)
	if decoded, err := base64.StdEncoding.DecodeString(saved.Body); err == nil {
		_, _ = w.Write(decoded)
	}
}

func (g idempotencyGuard) persist(ctx context.Context, storeKey string, capture *responseCapture, digest string, ttl time.Duration) {
	saved := storedResponse{
		Status:      capture.Status(),
		Body:        base64.StdEncoding.EncodeToString(capture.body.Bytes()),
		RequestHash: digest,
	}
	if ct := capture.Header().Get("Content-Type"); ct != "" {
		saved.Headers = map[string]string{"Content-Type": ct}
	}

	payload, err := json.Marshal(saved)
	if err != nil {
		if g.logg != nil {
			g.logg.Error(ctx, "marshal idempotency record", err)
		}
		return
	}
	if _, err := g.store.SetNX(ctx, storeKey, string(payload), ttl); err != nil {
		if g.logg != nil {
			g.logg.Error(ctx, "persist idempotency record", err)
		}
	}
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if pattern := rc.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

type responseCapture struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (c *responseCapture) WriteHeader(code int) {
	c.status = code
	c.ResponseWriter.WriteHeader(code)
}

func (c *responseCapture) Write(payload []byte) (int, error) {
	c.body.Write(payload)
	return c.ResponseWriter.Write(payload)
}

func (c *responseCapture) Status() int {
	if c.status == 0 {
		return http.StatusOK
	}
	return c.status
}
