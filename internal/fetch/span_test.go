package fetch

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, Option) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return rec, WithTracer(tp.Tracer("test"))
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestSpans_Success(t *testing.T) {
	srv := newServer(t, &postsAPI{})
	rec, withTracer := newRecorder(t)
	f := newFetcher(srv, withTracer)

	f.Items(context.Background(), 5)
	f.Items(context.Background(), 5) // cache hit, no span

	spans := rec.Ended()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, "fetch /posts", s.Name())
	attrs := attrMap(s.Attributes())
	assert.Equal(t, srv.URL+"/posts?_limit=5", attrs["postboard.endpoint"].AsString())
	assert.Equal(t, int64(http.StatusOK), attrs["http.status_code"].AsInt64())
	assert.Equal(t, int64(2), attrs["postboard.records"].AsInt64())
	assert.Equal(t, codes.Unset, s.Status().Code)
}

func TestSpans_FailureRecorded(t *testing.T) {
	api := &postsAPI{}
	api.status.Store(http.StatusServiceUnavailable)
	srv := newServer(t, api)
	rec, withTracer := newRecorder(t)
	f := newFetcher(srv, withTracer)

	f.Items(context.Background(), 5)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
