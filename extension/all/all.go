// Package all imports all built-in thebook extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each extension registers itself via init()
	_ "github.com/jpl-au/thebook/extension/core"
	_ "github.com/jpl-au/thebook/extension/corpus"
	_ "github.com/jpl-au/thebook/extension/reader"
	_ "github.com/jpl-au/thebook/extension/search"
)
