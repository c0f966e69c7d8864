// Package fetch retrieves record collections from the remote API.
//
// Reads are cached per endpoint with stale-while-revalidate semantics: a fresh
// entry is served without network access, a stale entry is served immediately
// while a detached refresh runs, and only a cold endpoint blocks on the
// network. Failures never reach the caller; they yield an empty collection and
// are recorded in logs, trace spans and per-endpoint Stats.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"postboard/internal/cache"
	"postboard/internal/jsonutil"
	"postboard/internal/model"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultRevalidateInterval is how long a cached collection stays fresh.
	DefaultRevalidateInterval = 60 * time.Second
	// DefaultLimitParam is the query parameter carrying the result-count limit.
	DefaultLimitParam = "_limit"
	// DefaultItemsPath and DefaultUsersPath locate the two collections.
	DefaultItemsPath = "/posts"
	DefaultUsersPath = "/users"
)

// ErrStatus is wrapped by Error when the server answered with a non-2xx status.
var ErrStatus = errors.New("non-success status")

// Error describes a failed fetch: transport failure, non-2xx status or an
// undecodable body.
type Error struct {
	Endpoint   string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Stats is the operational record for one endpoint.
type Stats struct {
	Successes   int
	Failures    int
	CacheHits   int
	StaleServed int
	LastError   error
	LastSuccess time.Time
}

// Fetcher reads JSON array endpoints under a common base URL.
type Fetcher struct {
	baseURL    string
	itemsPath  string
	usersPath  string
	limitParam string
	revalidate time.Duration
	client     *http.Client
	store      cache.Store
	logger     *zap.Logger
	tracer     trace.Tracer
	now        func() time.Time

	group singleflight.Group
	wg    sync.WaitGroup

	mu         sync.Mutex
	stats      map[string]*Stats
	refreshing map[string]bool
	forced     map[string]bool // keys marked stale by Invalidate
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the client used for GET requests.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithStore sets the cache backend.
func WithStore(s cache.Store) Option {
	return func(f *Fetcher) { f.store = s }
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// WithTracer sets the tracer used for network fetch spans.
func WithTracer(t trace.Tracer) Option {
	return func(f *Fetcher) { f.tracer = t }
}

// WithRevalidateInterval sets how long cached collections stay fresh.
func WithRevalidateInterval(d time.Duration) Option {
	return func(f *Fetcher) { f.revalidate = d }
}

// WithLimitParam sets the query parameter name carrying the limit.
func WithLimitParam(name string) Option {
	return func(f *Fetcher) { f.limitParam = name }
}

// WithPaths sets the items and users collection paths.
func WithPaths(items, users string) Option {
	return func(f *Fetcher) {
		f.itemsPath = items
		f.usersPath = users
	}
}

// WithClock replaces time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(f *Fetcher) { f.now = now }
}

// New creates a Fetcher for baseURL.
func New(baseURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		itemsPath:  DefaultItemsPath,
		usersPath:  DefaultUsersPath,
		limitParam: DefaultLimitParam,
		revalidate: DefaultRevalidateInterval,
		client:     &http.Client{Timeout: 10 * time.Second},
		store:      cache.NewMemoryStore(),
		logger:     zap.NewNop(),
		tracer:     otel.Tracer("postboard/fetch"),
		now:        time.Now,
		stats:      make(map[string]*Stats),
		refreshing: make(map[string]bool),
		forced:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Items returns up to limit items (limit <= 0 means no limit parameter).
func (f *Fetcher) Items(ctx context.Context, limit int) []model.Item {
	return model.ItemsFromPosts(Fetch[model.Post](ctx, f, f.itemsPath, limit))
}

// Users returns all users.
func (f *Fetcher) Users(ctx context.Context) []model.User {
	return Fetch[model.User](ctx, f, f.usersPath, 0)
}

// Fetch returns the decoded collection served at path. It never fails: on
// error the result is an empty, non-nil slice.
func Fetch[T any](ctx context.Context, f *Fetcher, path string, limit int) []T {
	key := cacheKey(path, limit)
	f.touch(key)

	entry, err := f.store.Get(ctx, key)
	switch {
	case err == nil:
		if f.isStale(key, entry) {
			f.update(key, func(s *Stats) { s.StaleServed++ })
			revalidate[T](ctx, f, path, limit)
		} else {
			f.update(key, func(s *Stats) { s.CacheHits++ })
		}
		rows, derr := jsonutil.UnmarshalArray[T](entry.Body, key)
		if derr != nil {
			f.logger.Warn("cached body undecodable", zap.String("key", key), zap.Error(derr))
			return []T{}
		}
		return rows
	case !errors.Is(err, cache.ErrMiss):
		f.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := f.group.Do(key, func() (any, error) {
		return refresh[T](ctx, f, path, limit)
	})
	if err != nil {
		return []T{}
	}
	rows, err := jsonutil.UnmarshalArray[T](v.([]byte), key)
	if err != nil {
		return []T{}
	}
	return rows
}

// revalidate starts a detached refresh of path unless one is already running.
// The caller's cancellation does not propagate to the refresh.
func revalidate[T any](ctx context.Context, f *Fetcher, path string, limit int) {
	key := cacheKey(path, limit)
	f.mu.Lock()
	if f.refreshing[key] {
		f.mu.Unlock()
		return
	}
	f.refreshing[key] = true
	f.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer func() {
			f.mu.Lock()
			delete(f.refreshing, key)
			f.mu.Unlock()
		}()
		_, _, _ = f.group.Do(key, func() (any, error) {
			return refresh[T](bg, f, path, limit)
		})
	}()
}

// refresh performs the GET, validates the body as []T and stores it.
func refresh[T any](ctx context.Context, f *Fetcher, path string, limit int) ([]byte, error) {
	key := cacheKey(path, limit)
	endpoint := f.endpointURL(path, limit)

	ctx, span := f.tracer.Start(ctx, "fetch "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("postboard.endpoint", endpoint),
			attribute.Int("postboard.limit", limit),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, f.fail(span, key, &Error{Endpoint: endpoint, Err: err})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.fail(span, key, &Error{Endpoint: endpoint, Err: err})
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, f.fail(span, key, &Error{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: ErrStatus})
	}

	raw, rows, err := jsonutil.ReadAll[T](resp.Body, endpoint)
	if err != nil {
		return nil, f.fail(span, key, &Error{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err})
	}

	if err := f.store.Set(ctx, key, cache.Entry{Body: raw, FetchedAt: f.now()}); err != nil {
		f.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	span.SetAttributes(attribute.Int("postboard.records", len(rows)))
	f.update(key, func(s *Stats) {
		s.Successes++
		s.LastSuccess = f.now()
	})
	f.mu.Lock()
	delete(f.forced, key)
	f.mu.Unlock()
	f.logger.Debug("fetched", zap.String("endpoint", endpoint), zap.Int("records", len(rows)))
	return raw, nil
}

// fail records err everywhere it should be visible and returns it.
func (f *Fetcher) fail(span trace.Span, key string, err *Error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	f.update(key, func(s *Stats) {
		s.Failures++
		s.LastError = err
	})
	f.logger.Warn("fetch failed",
		zap.String("endpoint", err.Endpoint),
		zap.Int("status", err.StatusCode),
		zap.Error(err.Err),
	)
	return err
}

// Stats returns a snapshot of the record for path and limit.
func (f *Fetcher) Stats(path string, limit int) Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.stats[cacheKey(path, limit)]; ok {
		return *s
	}
	return Stats{}
}

// ItemsStats returns the record for the items endpoint at limit.
func (f *Fetcher) ItemsStats(limit int) Stats {
	return f.Stats(f.itemsPath, limit)
}

// UsersStats returns the record for the users endpoint.
func (f *Fetcher) UsersStats() Stats {
	return f.Stats(f.usersPath, 0)
}

// Invalidate marks every endpoint read so far as stale. The next read of each
// serves its cached value and refreshes in the background.
func (f *Fetcher) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.stats {
		f.forced[key] = true
	}
}

// Wait blocks until all background refreshes have finished.
func (f *Fetcher) Wait() {
	f.wg.Wait()
}

func (f *Fetcher) isStale(key string, e cache.Entry) bool {
	f.mu.Lock()
	forced := f.forced[key]
	f.mu.Unlock()
	return forced || e.Age(f.now()) > f.revalidate
}

func (f *Fetcher) touch(key string) {
	f.update(key, func(*Stats) {})
}

func (f *Fetcher) update(key string, fn func(*Stats)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.stats[key]
	if !ok {
		s = &Stats{}
		f.stats[key] = s
	}
	fn(s)
}

func (f *Fetcher) endpointURL(path string, limit int) string {
	u := f.baseURL + path
	if limit > 0 {
		q := url.Values{}
		q.Set(f.limitParam, strconv.Itoa(limit))
		u += "?" + q.Encode()
	}
	return u
}

// cacheKey generates a cache key from path and limit.
func cacheKey(path string, limit int) string {
	return fmt.Sprintf("%s:%d", path, limit)
}
