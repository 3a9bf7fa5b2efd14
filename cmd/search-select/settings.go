package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ruminaider/search-select/internal/config"
	"github.com/ruminaider/search-select/internal/paths"
	"github.com/ruminaider/search-select/searchselect"
	"github.com/spf13/cobra"
)

// settingsFlags are the flags shared by pick and filter. Values given on
// the command line override the settings file.
type settingsFlags struct {
	configFile  string
	dataFile    string
	filter      string
	sort        string
	placeholder string
	inline      bool
	maxVisible  int
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configFile, "config", "", "settings file (YAML); defaults to ~/.search-select/config.yaml when present")
	cmd.Flags().StringVar(&f.dataFile, "data", "", "options file: a YAML or JSON list of strings or {label, value, subtext} maps")
	cmd.Flags().StringVar(&f.filter, "filter", "", "match policy: startswith, contains or fuzzy")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort order: none, alphabetic or label")
}

func (f *settingsFlags) registerDisplay(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.placeholder, "placeholder", "", "text shown while nothing is selected")
	cmd.Flags().BoolVar(&f.inline, "inline", true, "type into the field itself instead of a search bar in the panel")
	cmd.Flags().IntVar(&f.maxVisible, "max-visible", searchselect.DefaultMaxVisibleEntries, "entries shown before the list scrolls (0 shows all)")
}

// load reads the settings file and data file, then applies changed flags.
// Without --config the default settings file is used if it exists.
func (f *settingsFlags) load(cmd *cobra.Command) (config.Settings, error) {
	path := f.configFile
	if path == "" {
		if _, err := os.Stat(paths.ConfigFile()); err == nil {
			path = paths.ConfigFile()
		} else if !errors.Is(err, fs.ErrNotExist) {
			return config.Settings{}, err
		}
	}

	var s config.Settings
	if path != "" {
		var err error
		if s, err = config.Load(path); err != nil {
			return config.Settings{}, err
		}
		logger.Debug("settings loaded", "path", path)
	}
	if f.dataFile != "" {
		if err := s.LoadData(f.dataFile); err != nil {
			return config.Settings{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("filter") {
		s.Filter = f.filter
	}
	if flags.Changed("sort") {
		s.Sort = f.sort
	}
	if flags.Changed("placeholder") {
		s.Placeholder = f.placeholder
	}
	if flags.Changed("inline") {
		s.InlineSearch = &f.inline
	}
	if flags.Changed("max-visible") {
		s.MaxVisibleEntries = &f.maxVisible
	}
	return s, nil
}

// newWidget binds a widget to the settings' field.
func newWidget(s config.Settings) (*searchselect.Widget, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, searchselect.WithLogger(logger))
	return searchselect.New(s.Form(), "#"+s.FieldID(), opts...)
}
