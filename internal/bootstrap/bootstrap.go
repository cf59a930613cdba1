// Package bootstrap prepares a page once: it caches the window, root and body
// handles, detects the legacy-browser marker and flags the root as ready.
package bootstrap

import (
	"sync"

	"github.com/mattsenior/mjs/internal/browser"
	"github.com/mattsenior/mjs/internal/dom"
	"github.com/mattsenior/mjs/internal/log"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// State is assigned once by Initialize and never modified afterwards.
type State struct {
	Window dom.Window
	Root   dom.Element
	Body   dom.Element

	// LegacyBrowser is true when the root carried the legacy class before initialization.
	LegacyBrowser bool
	BrowserTier   browser.Tier
}

// Initialize captures env's handles and marks its root element ready.
// Callers wanting exactly-once behavior should go through App.
func Initialize(env dom.Environment, config Config) *State {
	state := &State{
		Window: env.Window(),
		Root:   env.RootElement(),
		Body:   env.Body(),
	}
	state.LegacyBrowser = state.Root.HasClass(config.LegacyClass)
	state.BrowserTier = browser.Classify(state.Window.UserAgent())
	state.Root.AddClass(config.ReadyClass)
	return state
}

type Option func(*App)

// WithLogger sets the destination for App.Log. Defaults to log.Nop.
func WithLogger(logger log.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// App owns a page's bootstrap state. The zero value is not usable; call New.
type App struct {
	config Config
	logger log.Logger

	once        sync.Once
	initialized *atomic.Bool
	state       *State
}

func New(config Config, options ...Option) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "bootstrap")
	}
	app := &App{
		config:      config,
		logger:      log.Nop(),
		initialized: atomic.NewBool(false),
	}
	for _, option := range options {
		option(app)
	}
	return app, nil
}

// Init initializes the page from env on the first call and returns the cached
// State on every call. Repeat calls ignore env and have no side effects.
// A first call that panics still consumes the guard.
func (a *App) Init(env dom.Environment) *State {
	a.once.Do(func() {
		a.initialized.Store(true)
		a.state = Initialize(env, a.config)
		log.Debugf("bootstrap: initialized, legacy browser: %t, tier: %s", a.state.LegacyBrowser, a.state.BrowserTier)
	})
	return a.state
}

func (a *App) Initialized() bool {
	return a.initialized.Load()
}

// State returns the cached state, or nil if Init has not completed.
func (a *App) State() *State {
	if !a.Initialized() {
		return nil
	}
	a.once.Do(func() {}) // waits for an in-flight Init
	return a.state
}

// Log forwards value to the injected logger.
func (a *App) Log(value interface{}) {
	a.logger.Log(value)
}
