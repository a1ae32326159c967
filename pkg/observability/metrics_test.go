package observability

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandEvent(name string, err error) *domain.CommandEvent {
	return &domain.CommandEvent{
		EventBase: domain.EventBase{Type: domain.EventCommand, Level: 1},
		Command:   name,
		Duration:  5 * time.Millisecond,
		Err:       err,
	}
}

func TestMetrics_Commands(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnCommand(ctx, commandEvent("hello", nil))
	hooks.OnCommand(ctx, commandEvent("hello", nil))
	hooks.OnCommand(ctx, commandEvent("change", errors.New("boom")))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.commands.WithLabelValues("hello", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commands.WithLabelValues("change", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.durations))
}

func TestMetrics_Unknown(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	hooks := m.Hooks()

	hooks.OnUnknownCommand(context.Background(), commandEvent("foo", nil))
	hooks.OnUnknownCommand(context.Background(), commandEvent("bar", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.unknown))
}

func TestMetrics_LoopDepth(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	hooks := m.Hooks()
	ctx := context.Background()

	enter := func(level int) {
		hooks.OnLoopEnter(ctx, &domain.LoopEvent{EventBase: domain.EventBase{Level: level}})
	}
	exit := func(level int) {
		hooks.OnLoopExit(ctx, &domain.LoopEvent{EventBase: domain.EventBase{Level: level}})
	}

	enter(1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.depth))
	enter(2)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.depth))
	exit(2)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.depth))
	exit(1)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.depth))
}

func TestNewMetrics_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.Hooks().OnCommand(context.Background(), commandEvent("hello", nil))

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `parley_commands_total{command="hello",outcome="ok"} 1`))

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", string(body))

	resp, err = http.Post(srv.URL+"/metrics", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
