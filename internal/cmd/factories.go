package cmd

import (
	"context"
	"fmt"

	adapterstorage "github.com/tiennsloit/get-agent-sub001/internal/adapters/storage"
	adapterworkspace "github.com/tiennsloit/get-agent-sub001/internal/adapters/workspace"
	"github.com/tiennsloit/get-agent-sub001/internal/config"
	"github.com/tiennsloit/get-agent-sub001/internal/logging"
	"github.com/tiennsloit/get-agent-sub001/internal/ports"
	"github.com/tiennsloit/get-agent-sub001/internal/services"
	"github.com/tiennsloit/get-agent-sub001/internal/snippet"
	"github.com/tiennsloit/get-agent-sub001/internal/state"
)

// ContainerOptions selects the session and backing store
type ContainerOptions struct {
	Ephemeral bool
	SessionID string
	Settings  *config.Settings
	// Store overrides the session store; the container takes ownership
	Store ports.SessionStore
}

// Container holds all dependencies for the application
type Container struct {
	// State
	AppStore     *state.AppStore
	ContextStore *state.ContextStore
	SettingStore *state.SettingStore

	// Services
	ChatService        *services.ChatService
	ContextService     *services.ContextService
	JumpService        *services.JumpService
	PersistenceService *services.PersistenceService

	// Internal - for cleanup only
	sessionStore ports.SessionStore
}

// NewContainer creates a new Container with all dependencies wired and the
// session's stored state restored
func NewContainer(ctx context.Context, opts ContainerOptions) (*Container, error) {
	settings := opts.Settings
	if settings == nil {
		settings = &config.Settings{}
	}

	sessionStore, err := newSessionStore(opts)
	if err != nil {
		return nil, err
	}

	scanner, err := adapterworkspace.NewScanner(scanConfig(settings))
	if err != nil {
		sessionStore.Close()
		return nil, fmt.Errorf("invalid scan settings: %w", err)
	}
	reader := adapterworkspace.NewFileReader()

	locator := snippet.Locator{}
	if settings.StripCarriageReturn != nil {
		locator.StripCarriageReturn = *settings.StripCarriageReturn
	}

	appStore := state.NewAppStore(settings.InitialAppState())
	contextStore := state.NewContextStore()
	settingStore := state.NewSettingStore()

	persistenceService := services.NewPersistenceService(sessionStore, opts.SessionID)
	for _, p := range []services.Persistable{appStore, contextStore, settingStore} {
		if err := persistenceService.Bind(ctx, p); err != nil {
			persistenceService.Close()
			sessionStore.Close()
			return nil, err
		}
	}

	logging.Logger.Debug("Container ready",
		"session", opts.SessionID,
		"ephemeral", opts.Ephemeral)

	return &Container{
		AppStore:           appStore,
		ContextStore:       contextStore,
		SettingStore:       settingStore,
		ChatService:        services.NewChatService(contextStore),
		ContextService:     services.NewContextService(contextStore, reader, scanner),
		JumpService:        services.NewJumpService(contextStore, locator),
		PersistenceService: persistenceService,
		sessionStore:       sessionStore,
	}, nil
}

func newSessionStore(opts ContainerOptions) (ports.SessionStore, error) {
	switch {
	case opts.Store != nil:
		return opts.Store, nil
	case opts.Ephemeral:
		return adapterstorage.NewMemoryStore(), nil
	default:
		return adapterstorage.NewSQLiteStore(config.GetDBPath())
	}
}

func scanConfig(settings *config.Settings) adapterworkspace.ScanConfig {
	cfg := adapterworkspace.ScanConfig{ExcludePatterns: settings.ScanExclude}
	if settings.ScanIncludeHidden != nil {
		cfg.IncludeHidden = *settings.ScanIncludeHidden
	}
	if settings.ScanMaxDepth != nil {
		cfg.MaxDepth = *settings.ScanMaxDepth
	}
	return cfg
}

// SaveError reports an auto-save failure from the last mutation
func (c *Container) SaveError() error {
	if err := c.PersistenceService.LastError(); err != nil {
		return fmt.Errorf("state changed but was not saved: %w", err)
	}
	return nil
}

// Close saves every bound store once more if an auto-save failed during
// the run, then releases the session store
func (c *Container) Close() error {
	var err error
	if c.PersistenceService.LastError() != nil {
		logging.Logger.Info("Retrying failed saves before exit", "session", c.PersistenceService.SessionID())
		if err = c.PersistenceService.SaveAll(context.Background()); err != nil {
			err = fmt.Errorf("state changed but was not saved: %w", err)
		}
	}
	c.PersistenceService.Close()
	if c.sessionStore != nil {
		if closeErr := c.sessionStore.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}
