// ls.go implements the "thebook ls" command.

package search

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/thebook/cmd"
	"github.com/jpl-au/thebook/extension"
	"github.com/jpl-au/thebook/internal/format"
	"github.com/jpl-au/thebook/internal/log"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls",
		Short: "List pages of the book",
		Long:  `List the cached pages in book order.`,
		Args:  cobra.NoArgs,
		RunE:  e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Show size, paragraph count, and file name")
	return c
}

func (e *Extension) runLs(c *cobra.Command, _ []string) error {
	long, _ := c.Flags().GetBool(extension.FlagLong)
	docs := e.svc.Documents()

	log.Event("search:ls", "list").
		Path(e.svc.Dir()).
		Results(len(docs)).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(format.ListJSON(docs, 0, false))
	}
	if long {
		return format.Long(cmd.Out(), docs)
	}
	return format.List(cmd.Out(), docs)
}
