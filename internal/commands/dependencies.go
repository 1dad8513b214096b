package commands

import (
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/diogo/symptrack/internal/api"
	"github.com/diogo/symptrack/internal/config"
	"github.com/diogo/symptrack/internal/logging"
	"github.com/diogo/symptrack/internal/tui"
)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	LoadConfig func() (config.Config, error)
	OpenPrefs  func() (*config.Prefs, error)
	NewClient  func(cfg config.Config, logger *zap.Logger) (api.ServiceClient, error)
	NewLogger  func(cfg config.Config) *zap.Logger
	RunChat    func(opts tui.Options) error
	Clipboard  func(text string) error

	// IsTTY reports whether stdout is a terminal; HasStdin whether input is piped
	IsTTY    func() bool
	HasStdin func() bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		LoadConfig: config.LoadConfig,
		OpenPrefs:  config.LoadPrefs,
		NewClient:  newServiceClient,
		NewLogger:  newFileLogger,
		RunChat:    tui.Run,
		Clipboard:  clipboard.WriteAll,
		IsTTY:      isStdoutTTY,
		HasStdin:   hasPipedStdin,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

func newServiceClient(cfg config.Config, logger *zap.Logger) (api.ServiceClient, error) {
	return api.NewClient(cfg.BaseURL,
		api.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
		api.WithLegacyEndpoints(cfg.LegacyEndpoints),
		api.WithLogger(logger),
	)
}

func newFileLogger(cfg config.Config) *zap.Logger {
	path, err := config.GetLogPath(cfg)
	if err != nil {
		return logging.Nop()
	}
	return logging.New(logging.Options{Path: path, Verbose: cfg.Verbose})
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func hasPipedStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
