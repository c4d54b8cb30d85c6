package config

import "strings"

//go:generate enumer -type=BlockKind -trimprefix=Block -transform=lower -json -text -yaml

// BlockKind is the closed set of block types the engine can classify and
// validate. Classification of document nodes into kinds lives in
// internal/classifier; this enum is declared here because rule configurations
// name kinds directly.
type BlockKind int

const (
	// BlockUnknown marks nodes that match no known kind. Unknown blocks are
	// never validated.
	BlockUnknown BlockKind = iota

	// BlockParagraph is a plain text paragraph.
	BlockParagraph

	// BlockListing is a source or listing block.
	BlockListing

	// BlockLiteral is a literal block. Literal blocks share rules with
	// listings: a literal without a declared language is still a listing for
	// rule purposes.
	BlockLiteral

	// BlockTable is a table block.
	BlockTable

	// BlockImage is a block image macro.
	BlockImage

	// BlockVerse is a verse block (quote with attribution or verse style).
	BlockVerse

	// BlockQuote is a generic quote block.
	BlockQuote

	// BlockAdmonition is an admonition (NOTE, TIP, WARNING, ...).
	BlockAdmonition

	// BlockPass is a pass-through block.
	BlockPass

	// BlockVideo is a block video macro.
	BlockVideo
)

// ParseBlockKind resolves a configured type name ("listing", "table", ...)
// to a BlockKind. Unrecognized names yield BlockUnknown and false.
func ParseBlockKind(name string) (BlockKind, bool) {
	kind, err := BlockKindString(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || kind == BlockUnknown {
		return BlockUnknown, false
	}

	return kind, true
}
