package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ruminaider/search-select/form"
	"github.com/ruminaider/search-select/match"
	"github.com/ruminaider/search-select/option"
	"github.com/ruminaider/search-select/searchselect"
	"go.yaml.in/yaml/v3"
)

// Settings represents a widget settings file (YAML).
type Settings struct {
	Field             string      `yaml:"field,omitempty"`
	Placeholder       string      `yaml:"placeholder,omitempty"`
	SearchPlaceholder string      `yaml:"search_placeholder,omitempty"`
	Value             string      `yaml:"value,omitempty"`
	Disabled          bool        `yaml:"disabled,omitempty"`
	Filter            string      `yaml:"filter,omitempty"`
	Sort              string      `yaml:"sort,omitempty"`
	VisibleClass      string      `yaml:"visible_class,omitempty"`
	MaxVisibleEntries *int        `yaml:"max_visible_entries,omitempty"`
	SearchPosition    string      `yaml:"search_position,omitempty"`
	PanelSide         string      `yaml:"panel_side,omitempty"`
	InlineSearch      *bool       `yaml:"inline_search,omitempty"`
	EmptyText         string      `yaml:"empty_text,omitempty"`
	Data              option.List `yaml:"data,omitempty"`
}

// DefaultFieldID names the bound field when the file does not.
const DefaultFieldID = "selection"

// Parse parses settings YAML bytes.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// Load reads and parses a settings file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	return Parse(data)
}

// LoadData reads an option list file, replacing s.Data.
func (s *Settings) LoadData(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}
	src, err := option.Parse(data)
	if err != nil {
		return err
	}
	s.Data = src
	return nil
}

// FieldID returns the bound field's id.
func (s Settings) FieldID() string {
	if s.Field == "" {
		return DefaultFieldID
	}
	return s.Field
}

// Form builds the form holding the bound field, pre-filled with Value.
func (s Settings) Form() *form.Form {
	f := form.NewField(s.FieldID())
	f.Placeholder = s.Placeholder
	f.Disabled = s.Disabled
	f.SetValue(s.Value)
	if s.SearchPlaceholder != "" {
		f.SetAttr("search-placeholder", s.SearchPlaceholder)
	}
	return form.New(f)
}

// Options converts the settings into widget options. Unknown names are
// reported as configuration errors naming the offending key.
func (s Settings) Options() ([]searchselect.Option, error) {
	opts := []searchselect.Option{searchselect.WithData(s.Data...)}

	if s.Filter != "" {
		fn, err := match.Lookup(s.Filter)
		if err != nil {
			return nil, invalid("filter", err)
		}
		opts = append(opts, searchselect.WithFilter(fn))
	}

	sortFn, err := option.LookupSort(s.Sort)
	if err != nil {
		return nil, invalid("sort", err)
	}
	if sortFn != nil {
		opts = append(opts, searchselect.WithSort(sortFn))
	}

	switch strings.ToLower(s.SearchPosition) {
	case "", "bottom":
	case "top":
		opts = append(opts, searchselect.WithSearchPlacement(searchselect.SearchTop))
	default:
		return nil, invalid("search_position", fmt.Errorf("unknown value %q (want top or bottom)", s.SearchPosition))
	}

	switch strings.ToLower(s.PanelSide) {
	case "", "left":
	case "right":
		opts = append(opts, searchselect.WithPanelSide(searchselect.PanelRight))
	default:
		return nil, invalid("panel_side", fmt.Errorf("unknown value %q (want left or right)", s.PanelSide))
	}

	if s.MaxVisibleEntries != nil {
		opts = append(opts, searchselect.WithMaxVisibleEntries(*s.MaxVisibleEntries))
	}
	if s.InlineSearch != nil {
		opts = append(opts, searchselect.WithInlineSearch(*s.InlineSearch))
	}
	if s.VisibleClass != "" {
		opts = append(opts, searchselect.WithVisibleClass(s.VisibleClass))
	}
	if s.EmptyText != "" {
		opts = append(opts, searchselect.WithEmptyResultText(s.EmptyText))
	}
	return opts, nil
}

func invalid(key string, err error) error {
	return &searchselect.ConfigurationError{Field: key, Reason: "bad setting", Err: err}
}
