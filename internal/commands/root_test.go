package commands

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/diogo/symptrack/internal/api"
	"github.com/diogo/symptrack/internal/config"
	"github.com/diogo/symptrack/internal/models"
	"github.com/diogo/symptrack/internal/tui"
)

// testEnv wires fake dependencies and captures output
type testEnv struct {
	deps    *Dependencies
	client  *api.MockClient
	cfg     config.Config
	gotCfg  config.Config
	prefs   string
	stdin   *strings.Reader
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	copied  []string
	chatRun *tui.Options
	tty     bool
	piped   bool
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	e := &testEnv{
		client: &api.MockClient{},
		cfg:    config.DefaultConfig(),
		prefs:  filepath.Join(t.TempDir(), "prefs.json"),
		stdin:  strings.NewReader(""),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	e.deps = &Dependencies{
		LoadConfig: func() (config.Config, error) { return e.cfg, nil },
		OpenPrefs:  func() (*config.Prefs, error) { return config.OpenPrefs(e.prefs) },
		NewClient: func(cfg config.Config, _ *zap.Logger) (api.ServiceClient, error) {
			e.gotCfg = cfg
			return e.client, nil
		},
		NewLogger: func(config.Config) *zap.Logger { return zap.NewNop() },
		RunChat: func(opts tui.Options) error {
			e.chatRun = &opts
			return nil
		},
		Clipboard: func(text string) error {
			e.copied = append(e.copied, text)
			return nil
		},
		IsTTY:    func() bool { return e.tty },
		HasStdin: func() bool { return e.piped },
		Stdin:    e.stdin,
		Stdout:   e.stdout,
		Stderr:   e.stderr,
	}
	return e
}

func (e *testEnv) run(args ...string) error {
	cmd := NewRootCmd(e.deps)
	cmd.SetArgs(args)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	return cmd.ExecuteContext(context.Background())
}

func TestRootCmd_Version(t *testing.T) {
	e := newTestEnv(t)

	require.NoError(t, e.run("--version"))
	assert.Contains(t, e.stdout.String(), "symptrack "+Version)
	assert.Nil(t, e.chatRun, "version must not start the chat")
}

func TestRootCmd_DefaultRunsChat(t *testing.T) {
	e := newTestEnv(t)

	require.NoError(t, e.run())
	require.NotNil(t, e.chatRun)
	assert.Same(t, e.client, e.chatRun.Client)
	assert.Equal(t, models.ThemeDark, e.chatRun.Theme)
	assert.NotNil(t, e.chatRun.Prefs)
	assert.True(t, e.client.CloseCalled, "client should be closed after the chat exits")
}

func TestChatCmd_UsesStoredTheme(t *testing.T) {
	e := newTestEnv(t)
	prefs, err := config.OpenPrefs(e.prefs)
	require.NoError(t, err)
	require.NoError(t, prefs.Set(models.ThemeKey, "light"))

	require.NoError(t, e.run("chat"))
	require.NotNil(t, e.chatRun)
	assert.Equal(t, models.ThemeLight, e.chatRun.Theme)
	assert.Equal(t, "light", e.chatRun.Markdown.Style)
}

func TestRootCmd_BaseURLOverride(t *testing.T) {
	e := newTestEnv(t)
	e.client.Result = &models.PredictResult{Prediction: &models.Prediction{Disease: "Flu"}}

	require.NoError(t, e.run("--base-url", " http://example.test:8080/ ", "predict", "fever"))
	assert.Equal(t, "http://example.test:8080", e.gotCfg.BaseURL)
}

func TestRootCmd_VerboseOverride(t *testing.T) {
	e := newTestEnv(t)

	require.NoError(t, e.run("--verbose", "config"))
	assert.Contains(t, e.stdout.String(), `"verbose": true`)
}

func TestRootCmd_ConfigLoadWarning(t *testing.T) {
	e := newTestEnv(t)
	e.deps.LoadConfig = func() (config.Config, error) {
		return config.DefaultConfig(), errors.New("failed to parse config file")
	}

	require.NoError(t, e.run("--version"))
	assert.Contains(t, e.stderr.String(), "Warning: failed to parse config file")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	e := newTestEnv(t)

	assert.Error(t, e.run("unexpected"))
	assert.Nil(t, e.chatRun)
}

func TestRootCmd_ClientCreationFails(t *testing.T) {
	e := newTestEnv(t)
	e.deps.NewClient = func(config.Config, *zap.Logger) (api.ServiceClient, error) {
		return nil, errors.New("base URL is empty")
	}

	err := e.run("chat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create client")
}
