package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/search-select/cmd/search-select/tui"
	"github.com/spf13/cobra"
)

var (
	pickFlags settingsFlags
	pickTitle string
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a value interactively and print it",
	Long: `Opens a searchable select box. Type to filter, move with the arrow keys
or the mouse, Enter to select. Enter again submits and prints the value;
Esc or Ctrl+C cancels.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickFlags.register(pickCmd)
	pickFlags.registerDisplay(pickCmd)
	pickCmd.Flags().StringVar(&pickTitle, "title", "", "heading shown above the field (defaults to the field id)")
}

func runPick(cmd *cobra.Command, args []string) error {
	// TTY guard: the picker needs an interactive terminal.
	if !term.IsTerminal(os.Stdin.Fd()) {
		return errors.New("pick needs an interactive terminal; use 'search-select filter' in scripts")
	}

	s, err := pickFlags.load(cmd)
	if err != nil {
		return err
	}
	w, err := newWidget(s)
	if err != nil {
		return err
	}
	defer w.Detach()

	title := pickTitle
	if title == "" {
		title = s.FieldID()
	}

	p := tea.NewProgram(tui.NewModel(title, w), tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m := finalModel.(tui.Model)
	if m.Aborted {
		logger.Info("pick cancelled")
		return huh.ErrUserAborted
	}

	value := m.Value()
	if value == "" {
		var submitEmpty bool
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Nothing is selected. Submit an empty value?").
					Value(&submitEmpty),
			),
		).Run()
		if err != nil {
			return err
		}
		if !submitEmpty {
			return huh.ErrUserAborted
		}
	}

	logger.Info("pick submitted", "value", value)
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
