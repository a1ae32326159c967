package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aretw0/parley/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainConfig() *config.Config {
	return &config.Config{
		Prompt:       ">> ",
		Banner:       true,
		MaxInputSize: 4096,
	}
}

func runScript(t *testing.T, cfg *config.Config, script string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := RunSession(context.Background(), cfg, "test", Streams{
		In:  strings.NewReader(script),
		Out: &out,
		Err: &errOut,
	})
	return out.String(), errOut.String(), err
}

func TestRunSession_PlainConversation(t *testing.T) {
	out, _, err := runScript(t, plainConfig(), "converse Bob\nhello\nchange Carol\nhello\nexit\nexit\n")
	require.NoError(t, err)

	for _, want := range []string{
		"interacting with: Bob\n",
		"Bob>> ",
		"You said hello to Bob I guess\n",
		"you changed their name to Carol\n",
		"You said hello to Carol I guess\n",
		"left conversation with Carol\n",
	} {
		assert.Contains(t, out, want)
	}
	// No banner outside a terminal.
	assert.True(t, strings.HasPrefix(out, "info: type 'help' for a list of commands\n"))
}

func TestRunSession_EOFIsAnError(t *testing.T) {
	_, _, err := runScript(t, plainConfig(), "help\n")
	assert.ErrorIs(t, err, io.EOF)
}

func TestRunSession_DebugLogsUnknownCommands(t *testing.T) {
	cfg := plainConfig()
	cfg.Debug = true

	out, logs, err := runScript(t, cfg, "convers Bob\nexit\n")
	require.NoError(t, err)

	assert.NotContains(t, out, "convers")
	assert.Contains(t, logs, "unknown command")
	assert.Contains(t, logs, "suggestion=converse")
}

func TestRunSession_CustomPrompt(t *testing.T) {
	cfg := plainConfig()
	cfg.Prompt = "$ "

	out, _, err := runScript(t, cfg, "exit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "$ ")
}

func TestRunSession_MetricsAddrInUse(t *testing.T) {
	srv, err := startMetricsServer("127.0.0.1:0", prometheus.NewRegistry(), createLogger(false, io.Discard))
	require.NoError(t, err)
	defer srv.Stop()

	cfg := plainConfig()
	cfg.MetricsAddr = srv.addr.String()

	_, _, err = runScript(t, cfg, "exit\n")
	assert.ErrorContains(t, err, "metrics listener")
}

func TestStartMetricsServer(t *testing.T) {
	srv, err := startMetricsServer("127.0.0.1:0", prometheus.NewRegistry(), createLogger(false, io.Discard))
	require.NoError(t, err)

	resp, err := http.Get("http://" + srv.addr.String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	srv.Stop()

	_, err = http.Get("http://" + srv.addr.String() + "/healthz")
	assert.Error(t, err)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(strings.NewReader("")))
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestRunSession_SanitizeFromConfig(t *testing.T) {
	out, _, err := runScript(t, plainConfig(), "converse B\x07ob\nexit\nexit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "interacting with: B\x07ob\n")

	cfg := plainConfig()
	cfg.Sanitize = true
	out, _, err = runScript(t, cfg, "converse B\x07ob\nexit\nexit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "interacting with: Bob\n")
}
