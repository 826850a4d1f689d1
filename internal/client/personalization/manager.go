// Package personalization maintains the canonical in-memory display
// preferences, applies them to the presentation layer immediately on every
// change (optimistic UI), and persists them in the background.
package personalization

import (
	"context"
	"sync"
	"time"

	"github.com/daybookapp/daybook/internal/client/models"
	"github.com/daybookapp/daybook/internal/logging"
)

// DefaultSaveDebounce is the quiet period before changed settings are pushed
// to the server.
const DefaultSaveDebounce = 1000 * time.Millisecond

// saveTimeout bounds a background settings save.
const saveTimeout = 10 * time.Second

// SettingsService persists the full configuration. api.Client satisfies it.
type SettingsService interface {
	PutSettings(ctx context.Context, s *models.Settings) error
}

// Params configures a Manager. Sink, Settings and Logger are required.
type Params struct {
	Sink     Sink
	Settings SettingsService
	Logger   logging.Logger
	Debounce time.Duration
}

// Manager is the single writer for the session's personalization state.
// Setters are safe to call from multiple goroutines, but the intended use is
// one interactive caller.
type Manager struct {
	sink     Sink
	svc      SettingsService
	logger   logging.Logger
	debounce time.Duration

	mu     sync.Mutex
	cfg    models.Settings
	timer  *time.Timer
	closed bool
}

// NewManager constructs a Manager holding the built-in defaults, already
// applied to the sink.
func NewManager(p Params) *Manager {
	if p.Debounce <= 0 {
		p.Debounce = DefaultSaveDebounce
	}
	m := &Manager{
		sink:     p.Sink,
		svc:      p.Settings,
		logger:   p.Logger.With("module", "personalization"),
		debounce: p.Debounce,
		cfg:      Defaults(),
	}
	m.mu.Lock()
	m.applyLocked()
	m.mu.Unlock()
	return m
}

// Config returns a copy of the current configuration.
func (m *Manager) Config() models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// LoadUserSettings installs stored settings (with defaults filled in for
// missing fields) in a single atomic update and applies them. Used once per
// session start, before dependent UI renders. It does not schedule a save.
func (m *Manager) LoadUserSettings(stored models.Settings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = Normalize(stored)
	m.applyLocked()
}

// SetTheme selects a base palette and resets the color overrides to that
// theme's defaults. Color setters called afterwards layer on top.
func (m *Manager) SetTheme(key string) {
	theme := ResolveTheme(key)
	m.update(func(cfg *models.Settings) {
		cfg.Theme = key
		cfg.PrimaryColor = theme.Primary
		cfg.AccentColor = theme.Accent
		cfg.BackgroundColor = theme.Background
	})
}

// SetPrimaryColor overrides the primary color without changing the theme.
func (m *Manager) SetPrimaryColor(value string) {
	m.update(func(cfg *models.Settings) { cfg.PrimaryColor = value })
}

// SetAccentColor overrides the accent color without changing the theme.
func (m *Manager) SetAccentColor(value string) {
	m.update(func(cfg *models.Settings) { cfg.AccentColor = value })
}

// SetBackgroundColor overrides the background color without changing the theme.
func (m *Manager) SetBackgroundColor(value string) {
	m.update(func(cfg *models.Settings) { cfg.BackgroundColor = value })
}

// SetFontFamily selects a font family key.
func (m *Manager) SetFontFamily(value string) {
	m.update(func(cfg *models.Settings) { cfg.FontFamily = value })
}

// SetFontSize selects a font size key.
func (m *Manager) SetFontSize(value string) {
	m.update(func(cfg *models.Settings) { cfg.FontSize = value })
}

// SetBackgroundType selects how BackgroundValue is interpreted.
func (m *Manager) SetBackgroundType(value string) {
	m.update(func(cfg *models.Settings) { cfg.BackgroundType = value })
}

// SetBackgroundValue sets the palette key, hex color, URL or pattern key,
// depending on the background type.
func (m *Manager) SetBackgroundValue(value string) {
	m.update(func(cfg *models.Settings) { cfg.BackgroundValue = value })
}

// SetBackgroundBlur sets the blur radius in pixels; only meaningful for image
// backgrounds. Negative values clamp to zero.
func (m *Manager) SetBackgroundBlur(px int) {
	if px < 0 {
		px = 0
	}
	m.update(func(cfg *models.Settings) { cfg.BackgroundBlur = px })
}

// ResetToDefaults restores the built-in configuration and re-applies it. It
// does not persist; the caller decides whether to save the reset.
func (m *Manager) ResetToDefaults() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = Defaults()
	m.applyLocked()
}

// SaveSettings sends the full current configuration to the settings service.
// Failures are logged, never surfaced: the applied state stays the source of
// truth and a later save carries it forward.
func (m *Manager) SaveSettings(ctx context.Context) {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	cfg := m.cfg
	m.mu.Unlock()

	if err := m.svc.PutSettings(ctx, &cfg); err != nil {
		m.logger.Error(ctx, "settings save failed", "error", err)
	}
}

// Close stops the pending debounced save, if any.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// update mutates the config, re-applies the full resolved style, and arms the
// debounced save.
func (m *Manager) update(fn func(cfg *models.Settings)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	fn(&m.cfg)
	m.applyLocked()
	m.armSaveLocked()
}

// applyLocked pushes every resolved variable, not just the changed slice, so
// the sink state is always a pure function of the config.
func (m *Manager) applyLocked() {
	if m.sink == nil {
		return
	}
	for _, v := range Resolve(m.cfg) {
		m.sink.SetVariable(v.Name, v.Value)
	}
}

func (m *Manager) armSaveLocked() {
	if m.svc == nil {
		return
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.debounce, func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		m.SaveSettings(ctx)
	})
}
