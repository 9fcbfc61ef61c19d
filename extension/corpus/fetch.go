// fetch.go implements the "thebook fetch" command.

package corpus

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/thebook/cmd"
	"github.com/jpl-au/thebook/extension"
	"github.com/jpl-au/thebook/internal/corpus"
	"github.com/jpl-au/thebook/internal/fetch"
	"github.com/jpl-au/thebook/internal/log"
)

// FlagForce re-downloads an existing corpus.
const FlagForce = "force"

func (e *Extension) newFetchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "fetch",
		Short: "Download the book into the local cache",
		Long: `Download every page of the book from GitHub into the corpus directory.

  thebook fetch             # download when nothing is cached yet
  thebook fetch --force     # download again, replacing cached pages
  thebook fetch --dry-run   # list the pages that would be downloaded
  thebook fetch --diff      # show what changed since the last fetch

See "thebook guide fetch" for the sources used.`,
		Args: cobra.NoArgs,
		RunE: e.runFetch,
	}
	c.Flags().BoolP(FlagForce, "f", false, "Download even if a corpus is cached")
	c.Flags().BoolP(extension.FlagDryRun, "n", false, "List pages without downloading")
	c.Flags().Bool(extension.FlagDiff, false, "Show differences against the cached pages")
	return c
}

func (e *Extension) runFetch(c *cobra.Command, _ []string) error {
	force, _ := c.Flags().GetBool(FlagForce)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)

	ext, err := cmd.Extensions()
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	cfg := ext.Config()
	dir := cfg.CorpusDir()

	if corpus.Exists(dir) && !force && !dryRun && !showDiff {
		err := fmt.Errorf("corpus already cached in %s (use --force to download again)", dir)
		log.Event("corpus:fetch", "fetch").Path(dir).Write(err)
		return cmd.PrintJSONError(err)
	}

	opts := fetch.Options{
		TreeURL:   cfg.TreeURL(),
		RawURL:    cfg.RawURL(),
		Prefix:    cfg.Prefix(),
		Suffix:    cfg.Suffix(),
		UserAgent: cfg.UserAgent(),
		Dir:       dir,
		DryRun:    dryRun,
		Diff:      showDiff,
	}

	result, err := fetch.Run(c.Context(), opts)

	log.Event("corpus:fetch", "fetch").
		Path(dir).
		Results(result.Written).
		Detail("files", len(result.Files)).
		Detail("dry_run", dryRun).
		Detail("changed", len(result.Changes)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("fetch: %w", err))
	}

	if cmd.JSON() {
		names := make([]string, len(result.Files))
		for i, f := range result.Files {
			names[i] = f.Name
		}
		changed := make([]string, len(result.Changes))
		for i, ch := range result.Changes {
			changed[i] = ch.Old
		}
		return cmd.PrintJSON(map[string]any{
			"dir":     dir,
			"files":   names,
			"written": result.Written,
			"dry_run": dryRun,
			"changed": changed,
		})
	}

	w := cmd.Out()
	if dryRun {
		for _, f := range result.Files {
			fmt.Fprintf(w, "%s -> %s\n", f.URL, f.Name)
		}
		fmt.Fprintf(w, "%d pages would be downloaded to %s\n", len(result.Files), dir)
		return nil
	}

	if showDiff {
		colour := term.IsTerminal(int(os.Stdout.Fd()))
		for _, ch := range result.Changes {
			fmt.Fprint(w, ch.Format(colour))
		}
		fmt.Fprintf(w, "%d of %d pages changed\n", len(result.Changes), result.Written)
	}
	fmt.Fprintf(w, "Downloaded %d pages to %s\n", result.Written, dir)
	return nil
}
