package tui

import (
	"time"

	"github.com/Veraticus/parceiro/internal/actions"
	"github.com/Veraticus/parceiro/internal/notify"
	"github.com/Veraticus/parceiro/internal/service"
	"github.com/Veraticus/parceiro/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme         themes.Theme
	Store         service.RecordStore
	Actions       *actions.Service
	Notifications *notify.Channel
	Clock         func() time.Time
	ReferralLink  string
	PartnerName   string
	Width         int
	Height        int
	MouseSupport  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Clock:        time.Now,
		Width:        80,
		Height:       24,
		MouseSupport: true,
	}
}

// WithStore sets the record store the pages are loaded from.
func WithStore(store service.RecordStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithActions sets the service that runs copy, open, export and save.
func WithActions(svc *actions.Service) Option {
	return func(c *Config) {
		c.Actions = svc
	}
}

// WithNotifications sets the channel the actions notify on. It should be
// the notifier the actions service was built with.
func WithNotifications(ch *notify.Channel) Option {
	return func(c *Config) {
		c.Notifications = ch
	}
}

// WithClock sets the time source of the period filters.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Clock = now
	}
}

// WithReferralLink sets the partner's referral link.
func WithReferralLink(link string) Option {
	return func(c *Config) {
		c.ReferralLink = link
	}
}

// WithPartnerName overrides the name greeted in the header.
func WithPartnerName(name string) Option {
	return func(c *Config) {
		c.PartnerName = name
	}
}

// WithMouse toggles mouse support.
func WithMouse(enabled bool) Option {
	return func(c *Config) {
		c.MouseSupport = enabled
	}
}
