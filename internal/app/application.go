package app

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/quillan/threadline/internal/config"
	"github.com/quillan/threadline/internal/core"
	"github.com/quillan/threadline/internal/dispatcher"
	"github.com/quillan/threadline/internal/eventbus"
	"github.com/quillan/threadline/internal/models"
	"github.com/quillan/threadline/internal/session"
	"github.com/quillan/threadline/internal/transport"
	"github.com/quillan/threadline/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	runner     *update.RevealRunner
	service    *core.ChatService
	model      *AppModel
	logFile    *os.File
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, logFile := newLogger()

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(busErr eventbus.BusError) {
		logger.Warn().Err(busErr.Err).Str("operation", busErr.Operation).Msg("dropped event")
	})
	disp := dispatcher.NewEventDispatcher(eb)
	runner := update.NewRevealRunner(eb)

	statePath, err := config.StatePath()
	if err != nil {
		return nil, err
	}
	sess := session.NewManager(session.NewFileStore(statePath))

	backend, backendLabel := buildBackend(cfg)

	chatService, err := core.NewChatService(backend, sess, eb, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize chat service")
		return nil, err
	}
	chatService.AddWelcomeMessages(backendLabel)

	model := &AppModel{
		appModel:   createInitialAppModel(),
		dispatcher: disp,
		eventBus:   eb,
		runner:     runner,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		runner:     runner,
		service:    chatService,
		model:      model,
		logFile:    logFile,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model)
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.runner.StopAll()
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	if app.logFile != nil {
		app.logFile.Close()
	}
}

// buildBackend picks the transport per config: the agent server by default,
// the OpenAI-compatible endpoint when direct mode is configured.
func buildBackend(cfg *config.Config) (transport.Backend, string) {
	if cfg.Mode == config.ModeDirect && cfg.DirectConfigured() {
		return transport.NewDirect(cfg.Direct.APIKey, cfg.Direct.BaseURL, cfg.Direct.Model),
			"direct / " + cfg.Direct.Model
	}
	url := cfg.EffectiveServerURL()
	return transport.NewClient(url), url
}

// newLogger writes to the log file next to the config; the TUI owns stdout.
// Logging failures degrade to a no-op logger rather than break the app.
func newLogger() (zerolog.Logger, *os.File) {
	logPath, err := config.LogPath()
	if err != nil {
		return zerolog.Nop(), nil
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), nil
	}
	return zerolog.New(f).With().Timestamp().Logger(), f
}

func createInitialAppModel() models.AppModel {
	// No initial messages in UI - they come from core as single source of truth
	return models.AppModel{
		Messages: make([]models.Display, 0),
		Status:   "Ready",
		Loading:  false,
	}
}
