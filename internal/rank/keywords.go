package rank

// keywords are the reserved words of Rust, the language the book describes.
// A candidate phrase equal to one of them is boosted by keywordMultiplier.
// Candidates are lower-cased, so "Self" never matches; it stays in the list
// because it is a keyword.
var keywords = map[string]struct{}{}

func init() {
	for _, k := range []string{
		"as", "async", "await", "break", "const", "continue", "crate", "dyn", "else", "enum", "extern",
		"false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod", "move", "mut", "pub",
		"ref", "return", "Self", "self", "static", "struct", "super", "trait", "true", "type", "union",
		"unsafe", "use", "where", "while", "abstract", "become", "box", "do", "final", "macro",
		"override", "priv", "try", "typeof", "unsized", "virtual", "yield",
	} {
		keywords[k] = struct{}{}
	}
}

// IsKeyword reports whether phrase is in the keyword boost set.
func IsKeyword(phrase string) bool {
	_, ok := keywords[phrase]
	return ok
}
