package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/explorer"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/movieapi"
	"github.com/five82/marquee/internal/poster"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
	"github.com/five82/marquee/internal/view"
)

// posterProbeLimit bounds concurrent poster checks.
const posterProbeLimit = 4

// Options configure a marquee session.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	APIBaseURL string // overrides the config file and environment
	Debug      bool
	Version    string

	// Console receives log lines in headless mode. Nil means stderr.
	Console io.Writer
}

// Session holds the components shared by the TUI and the headless commands.
type Session struct {
	Config     config.Config
	Logger     *logging.Logger
	Client     *movieapi.Client
	Controller *explorer.Controller
	Prober     *poster.Prober
}

// NewSession loads configuration and wires the explorer. Interactive sessions
// log to the configured file; headless ones log to opts.Console.
func NewSession(opts Options, interactive bool) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if base := strings.TrimSpace(opts.APIBaseURL); base != "" {
		cfg.APIBaseURL = base
	}

	logOpts := logging.Options{Level: cfg.LogLevel, Debug: opts.Debug, Console: opts.Console}
	if interactive {
		logOpts.File = cfg.LogFile
		if logOpts.File == "" {
			// The terminal belongs to the UI.
			logOpts.Console = io.Discard
		}
	}
	logger, err := logging.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	clientLog := logger.Component("movieapi")
	client, err := movieapi.NewClient(cfg.APIBaseURL,
		movieapi.WithTimeout(cfg.RequestTimeout),
		movieapi.WithUserAgent(userAgent(opts.Version)),
		movieapi.WithLogger(clientLog),
	)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("init movie api client: %w", err)
	}

	explorerLog := logger.Component("explorer")
	s := &Session{
		Config:     cfg,
		Logger:     logger,
		Client:     client,
		Controller: explorer.New(state.NewStore(cfg.LatestOnly), client, &explorerLog),
	}
	if cfg.ProbePosters && interactive {
		posterLog := logger.Component("poster")
		s.Prober = poster.NewProber(cfg.RequestTimeout, posterProbeLimit, &posterLog)
	}

	logger.Debug().
		Str("api", client.BaseURL()).
		Bool("latest_only", cfg.LatestOnly).
		Bool("probe_posters", s.Prober != nil).
		Msg("session ready")
	return s, nil
}

// ViewOptions returns the rendering options derived from config.
func (s *Session) ViewOptions() view.Options {
	return view.Options{
		Placeholder:     s.Config.PlaceholderPoster,
		IMDbURLTemplate: s.Config.IMDbTitleURL,
		PosterFailed:    s.Prober.Failed,
	}
}

// Close releases the log file.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	return s.Logger.Close()
}

// Run boots the marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := NewSession(opts, true)
	if err != nil {
		return err
	}
	defer s.Close()

	userPrefs := prefs.Load(opts.PrefsPath)

	uiLog := s.Logger.Component("ui")
	uiOpts := ui.Options{
		Context:         ctx,
		Controller:      s.Controller,
		Prober:          s.Prober,
		Logger:          &uiLog,
		Placeholder:     s.Config.PlaceholderPoster,
		IMDbURLTemplate: s.Config.IMDbTitleURL,
		ThemeName:       userPrefs.Theme,
		PrefsPath:       opts.PrefsPath,
		LogPath:         s.Logger.Path(),
	}
	s.Logger.Info().Str("api", s.Client.BaseURL()).Msg("marquee started")
	err = ui.Run(uiOpts)
	s.Logger.Info().Msg("marquee stopped")
	return err
}

func userAgent(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	return "marquee/" + version
}
