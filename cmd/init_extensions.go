/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until first
// command execution, so they can declare commands before the book has been
// downloaded. The service is created once and shared across all extensions
// via the Context.

package cmd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jpl-au/thebook/extension"
	"github.com/jpl-au/thebook/internal/config"
	"github.com/jpl-au/thebook/internal/corpus"
	"github.com/jpl-au/thebook/internal/document"
	"github.com/jpl-au/thebook/internal/log"
	"github.com/jpl-au/thebook/internal/service"
)

// noCorpusCommands lists commands that run without a cached corpus.
// Built from the bootstrap commands plus extension-declared ones.
var noCorpusCommands map[string]bool

// buildNoCorpusCommands creates the set of commands that skip corpus loading.
//
// Bootstrap commands (guide, config, help, completion) explain or configure
// thebook before a book exists. Extensions add their own by implementing
// extension.CorpusOptional, e.g. fetch, which is what creates the corpus.
//
// When adding a new command: if it's a core bootstrap command, add it here.
// Otherwise, implement extension.CorpusOptional in your extension.
func buildNoCorpusCommands() map[string]bool {
	cmds := map[string]bool{
		"guide":      true,
		"config":     true,
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.CorpusOptional); ok {
			for _, name := range s.NoCorpusCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	extService *document.Service
	corpusErr  error
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads config and, when cached, the corpus, then injects
// the shared context into every Initializable extension.
//
// A missing corpus is not an error at this stage: commands that need it
// call requireCorpus, and the rest (fetch, serve) run with a nil service.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		if d := Dir(); d != "" {
			cfg.Corpus.Dir = d
		}

		var svc service.Service
		s, err := document.New(cfg)
		switch {
		case err == nil:
			extService = s
			svc = s
			log.SetCorpus(s.Dir())
		case errors.Is(err, corpus.ErrNoCorpus):
			corpusErr = fmt.Errorf("%w (looked in %s)\n\nRun: thebook fetch", corpus.ErrNoCorpus, cfg.CorpusDir())
			log.SetCorpus(cfg.CorpusDir())
		default:
			initErr = fmt.Errorf("loading corpus: %w", err)
			return
		}

		extContext = extension.NewContext(svc, cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// requireCorpus initialises extensions and fails if no corpus is cached.
func requireCorpus() error {
	if err := initExtensions(); err != nil {
		return fmt.Errorf("initialise extensions: %w", err)
	}
	return corpusErr
}

// Extensions returns the shared extension context, initialising it on
// first use. Its Service is nil when the book has not been downloaded.
func Extensions() (extension.Context, error) {
	if err := initExtensions(); err != nil {
		return nil, fmt.Errorf("initialise extensions: %w", err)
	}
	return extContext, nil
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		noCorpusCommands = buildNoCorpusCommands()
	})
}
