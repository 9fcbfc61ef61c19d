// grep.go implements the "thebook grep" command for regex line matching.
//
// Unlike search, grep does not rank: it reports every matching line in book
// order with familiar Unix grep flags.

package search

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/thebook/cmd"
	"github.com/jpl-au/thebook/extension"
	"github.com/jpl-au/thebook/internal/format"
	"github.com/jpl-au/thebook/internal/grep"
	"github.com/jpl-au/thebook/internal/log"
)

func (e *Extension) newGrepCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "grep <pattern>",
		Short: "Search pages using regex",
		Long: `Search the cached pages using regular expressions, like Unix grep.

  thebook grep "impl.*Display"   # every matching line
  thebook grep -i "TRAIT OBJECT" # case-insensitive
  thebook grep -l "unsafe"       # names of matching pages only
  thebook grep -C 2 "Box::new"   # two lines of context

For relevancy-ranked results, use 'thebook search' instead.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runGrep,
	}
	c.Flags().BoolP(extension.FlagFilesWithMatch, "l", false, "Only print names of matching pages")
	c.Flags().BoolP(extension.FlagIgnoreCase, "i", false, "Ignore case distinctions")
	c.Flags().BoolP(extension.FlagInvertMatch, "v", false, "Select non-matching lines")
	c.Flags().BoolP(extension.FlagCount, "c", false, "Only print the count of matching lines per page")
	c.Flags().IntP(extension.FlagContext, "C", 0, "Print N lines of context around matches")
	return c
}

func (e *Extension) runGrep(c *cobra.Command, args []string) error {
	pattern := args[0]

	namesOnly, _ := c.Flags().GetBool(extension.FlagFilesWithMatch)
	ignoreCase, _ := c.Flags().GetBool(extension.FlagIgnoreCase)
	invert, _ := c.Flags().GetBool(extension.FlagInvertMatch)
	countOnly, _ := c.Flags().GetBool(extension.FlagCount)
	context, _ := c.Flags().GetInt(extension.FlagContext)

	if context < 0 {
		return cmd.PrintJSONError(fmt.Errorf("context lines (-C) must be >= 0, got %d", context))
	}

	opts := grep.Options{
		IgnoreCase: ignoreCase,
		Invert:     invert,
		NamesOnly:  namesOnly,
		CountOnly:  countOnly,
		Context:    context,
	}

	result, err := grep.Search(c.Context(), e.svc.Documents(), pattern, opts)

	log.Event("search:grep", "search").
		Query(pattern).
		Results(len(result.Hits)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("grep %q: %w", pattern, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(format.HitsJSON(result.Hits, !namesOnly && !countOnly))
	}
	grep.Write(cmd.Out(), result, opts)
	return nil
}
