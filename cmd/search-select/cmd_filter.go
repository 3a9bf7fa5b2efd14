package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var filterFlags settingsFlags

var filterCmd = &cobra.Command{
	Use:   "filter [QUERY]",
	Short: "Print the options a query leaves visible",
	Long: `Runs the widget without a terminal UI: the query is typed into the
search field and the entries left visible are printed as a table. When
nothing matches, the no-match text is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func init() {
	filterFlags.register(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	s, err := filterFlags.load(cmd)
	if err != nil {
		return err
	}
	w, err := newWidget(s)
	if err != nil {
		return err
	}
	defer w.Detach()

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	w.OpenDropdown(true)
	w.Search(query)

	out := cmd.OutOrStdout()
	if w.VisibleCount() == 0 {
		fmt.Fprintln(out, w.Config().EmptyResultText)
		return nil
	}

	var data [][]string
	for _, e := range w.Entries() {
		if e.Hidden() {
			continue
		}
		data = append(data, []string{e.Record.Label, e.Record.Value, e.Record.Subtext})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"LABEL", "VALUE", "SUBTEXT"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	logger.Debug("filter printed", "query", query, "visible", len(data))
	return nil
}
