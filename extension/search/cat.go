// cat.go implements the "thebook cat" command for reading a page.
//
// Terminal output gets glamour rendering; pipes and redirects get the raw
// markdown as cached.

package search

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/thebook/cmd"
	"github.com/jpl-au/thebook/extension"
	"github.com/jpl-au/thebook/internal/format"
	"github.com/jpl-au/thebook/internal/log"
	"github.com/jpl-au/thebook/internal/render"
)

func (e *Extension) newCatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cat <title|file>",
		Short: "Print a page of the book",
		Long: `Print a page by its title (case-insensitive) or cached file name.

  thebook cat "ch04 01 what is ownership"
  thebook cat ch04-01-what-is-ownership.md --raw`,
		Args: cobra.ExactArgs(1),
		RunE: e.runCat,
	}
	c.Flags().Bool(extension.FlagRaw, false, "Output raw markdown without rendering")
	return c
}

func (e *Extension) runCat(c *cobra.Command, args []string) error {
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	name := args[0]

	doc, err := e.svc.Find(name)
	log.Event("search:cat", "read").Path(name).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("cat %q: %w", name, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(format.ToJSON(doc, 0, true))
	}

	if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
		width, _, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width = 80
		}
		if r, rErr := render.New(e.cfg.Style()); rErr == nil {
			if out, rErr := r.Render(doc.Text, width); rErr == nil {
				fmt.Fprint(cmd.Out(), out)
				return nil
			}
		}
	}

	fmt.Fprint(cmd.Out(), doc.Text)
	return nil
}
