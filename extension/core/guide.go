// guide.go implements the "thebook guide" command.
//
// Guides are embedded in the binary via the guide package. Terminal output
// gets glamour rendering; pipes and redirects get raw markdown.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/thebook/cmd"
	"github.com/jpl-au/thebook/guide"
	"github.com/jpl-au/thebook/internal/config"
	"github.com/jpl-au/thebook/internal/log"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the thebook usage guide",
		Long: `Outputs the thebook guide.

  thebook guide           # main guide
  thebook guide reader    # live reader keys and layout
  thebook guide scoring   # how pages are ranked`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			log.Event("core:guide", "read").Detail("topic", name).Write(err)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				style := config.DefaultStyle
				if cfg, err := config.Load(); err == nil {
					style = cfg.Style()
				}
				rendered, err := glamour.Render(content, style)
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}
