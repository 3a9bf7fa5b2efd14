package searchselect

import (
	"log/slog"
	"slices"

	"github.com/ruminaider/search-select/match"
	"github.com/ruminaider/search-select/option"
)

// Placement is where the dedicated search bar sits in the panel.
type Placement int

const (
	SearchBottom Placement = iota
	SearchTop
)

// Side is the edge of the display surface the panel aligns to.
type Side int

const (
	PanelLeft Side = iota
	PanelRight
)

const (
	// DefaultEmptyResultText is shown when no entry matches the query.
	DefaultEmptyResultText = "No option matched."

	// DefaultMaxVisibleEntries is the entry list viewport height in rows.
	DefaultMaxVisibleEntries = 8
)

// Config is the per-instance widget configuration. It is built once from
// DefaultConfig and a list of Options and never shared between widgets.
type Config struct {
	Data              []option.Source
	Filter            match.Func
	Sort              option.Comparator // nil keeps input order
	VisibleClass      string            // extra class tag on the display surface
	MaxVisibleEntries int               // 0 shows every entry
	SearchPlacement   Placement
	PanelSide         Side

	// ShowInlineSearch makes the visible cloned field double as the search
	// surface. When false, the panel carries its own search bar, which
	// takes focus on open.
	ShowInlineSearch bool
	EmptyResultText  string

	OnActivate func()         // any click inside the container
	OnKeyDown  func(KeyEvent) // after internal key handling
	OnBlur     func()

	Logger *slog.Logger
}

// Option adjusts a Config under construction.
type Option func(*Config)

// DefaultConfig returns the named defaults every widget starts from.
func DefaultConfig() Config {
	return Config{
		Filter:            match.StartsWith,
		MaxVisibleEntries: DefaultMaxVisibleEntries,
		ShowInlineSearch:  true,
		EmptyResultText:   DefaultEmptyResultText,
		Logger:            slog.New(slog.DiscardHandler),
	}
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	cfg.Data = slices.Clone(cfg.Data)
	if cfg.EmptyResultText == "" {
		cfg.EmptyResultText = DefaultEmptyResultText
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

func (c Config) validate() error {
	if c.Filter == nil {
		return &ConfigurationError{Field: "filter", Reason: "no filter policy"}
	}
	if c.MaxVisibleEntries < 0 {
		return &ConfigurationError{Field: "maxVisibleEntries", Reason: "must not be negative"}
	}
	if c.SearchPlacement != SearchBottom && c.SearchPlacement != SearchTop {
		return &ConfigurationError{Field: "searchPlacement", Reason: "unknown placement"}
	}
	if c.PanelSide != PanelLeft && c.PanelSide != PanelRight {
		return &ConfigurationError{Field: "panelSide", Reason: "unknown side"}
	}
	return nil
}

// WithData sets the initial option data.
func WithData(src ...option.Source) Option {
	return func(c *Config) { c.Data = src }
}

// WithStrings sets the initial option data from bare labels.
func WithStrings(labels ...string) Option {
	return WithData(option.Strings(labels...)...)
}

// WithFilter sets the matching policy.
func WithFilter(fn match.Func) Option {
	return func(c *Config) { c.Filter = fn }
}

// WithSort sorts option data once, whenever a render list is built.
func WithSort(cmp option.Comparator) Option {
	return func(c *Config) { c.Sort = cmp }
}

// WithVisibleClass adds a class tag to the display surface.
func WithVisibleClass(class string) Option {
	return func(c *Config) { c.VisibleClass = class }
}

// WithMaxVisibleEntries sets the entry list viewport height.
func WithMaxVisibleEntries(n int) Option {
	return func(c *Config) { c.MaxVisibleEntries = n }
}

// WithSearchPlacement places the dedicated search bar above or below the list.
func WithSearchPlacement(p Placement) Option {
	return func(c *Config) { c.SearchPlacement = p }
}

// WithPanelSide aligns the panel.
func WithPanelSide(s Side) Option {
	return func(c *Config) { c.PanelSide = s }
}

// WithInlineSearch chooses between the merged (true) and dedicated (false)
// search surface.
func WithInlineSearch(inline bool) Option {
	return func(c *Config) { c.ShowInlineSearch = inline }
}

// WithEmptyResultText sets the no-match entry's content.
func WithEmptyResultText(text string) Option {
	return func(c *Config) { c.EmptyResultText = text }
}

// WithOnActivate registers the container click callback.
func WithOnActivate(fn func()) Option {
	return func(c *Config) { c.OnActivate = fn }
}

// WithOnKeyDown registers the search surface key-down callback.
func WithOnKeyDown(fn func(KeyEvent)) Option {
	return func(c *Config) { c.OnKeyDown = fn }
}

// WithOnBlur registers the search surface blur callback.
func WithOnBlur(fn func()) Option {
	return func(c *Config) { c.OnBlur = fn }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
