// query.go implements the "thebook search" command.

package search

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpl-au/thebook/cmd"
	"github.com/jpl-au/thebook/extension"
	"github.com/jpl-au/thebook/internal/format"
	"github.com/jpl-au/thebook/internal/log"
)

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <query...>",
		Short: "Rank pages of the book for a query",
		Long: `Rank every page of the book for a query and print the matches,
most relevant first.

All arguments are joined into one query. Every combination of the query
words is searched; see "thebook guide scoring".

  thebook search ownership
  thebook search borrow checker -p 2    # show the two best paragraphs
  thebook search match -n 5 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runSearch,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 0, "Maximum results (default search.limit)")
	c.Flags().IntP(extension.FlagParagraphs, "p", 0, "Best paragraphs to show per page")
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	paragraphs, _ := c.Flags().GetInt(extension.FlagParagraphs)
	if limit < 0 || paragraphs < 0 {
		return cmd.PrintJSONError(fmt.Errorf("--%s and --%s must not be negative", extension.FlagLimit, extension.FlagParagraphs))
	}

	docs, err := e.svc.Search(c.Context(), query, limit)

	log.Event("search:search", "search").
		Query(query).
		Results(len(docs)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search %q: %w", query, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(format.ListJSON(docs, paragraphs, false))
	}
	return format.Results(cmd.Out(), docs, paragraphs)
}
