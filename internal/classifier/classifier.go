// Package classifier maps opaque document nodes to the closed set of block
// kinds the rule engine understands.
package classifier

import (
	"strings"

	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
)

// Classify tags a node with its block kind. It is deterministic, total, and
// side-effect free: a node that resolves to nothing yields BlockUnknown, and
// malformed node data never aborts a validation run.
//
// Dispatch is primarily on the raw node kind. Ambiguous kinds are
// disambiguated through style, attributes, and roles, in that order.
func Classify(node *document.Node) config.BlockKind {
	if node == nil {
		return config.BlockUnknown
	}

	switch strings.ToLower(node.Kind) {
	case document.KindParagraph:
		return config.BlockParagraph

	case document.KindListing:
		return config.BlockListing

	case document.KindLiteral:
		// A literal block without a declared language is still a listing
		// for rule purposes.
		return config.BlockListing

	case document.KindTable:
		return config.BlockTable

	case document.KindImage:
		return config.BlockImage

	case document.KindPass:
		return config.BlockPass

	case document.KindVideo:
		return config.BlockVideo

	case document.KindAdmonition:
		return config.BlockAdmonition

	case document.KindVerse:
		return config.BlockVerse

	case document.KindQuote:
		return classifyQuote(node)

	case document.KindExample, document.KindSidebar, document.KindOpen:
		return classifyContainer(node)

	default:
		return config.BlockUnknown
	}
}

// classifyQuote splits quote nodes into verses and generic quotes. A quote
// carrying an attribution, a citation title, or the verse style is a verse.
func classifyQuote(node *document.Node) config.BlockKind {
	if node.HasAttr("attribution") || node.HasAttr("citetitle") {
		return config.BlockVerse
	}

	if strings.EqualFold(node.Style, "verse") {
		return config.BlockVerse
	}

	return config.BlockQuote
}

// classifyContainer resolves example, sidebar, and open blocks through their
// declared style, then role markers, before giving up.
func classifyContainer(node *document.Node) config.BlockKind {
	switch strings.ToLower(node.Style) {
	case "source", "listing":
		return config.BlockListing
	case "verse":
		return config.BlockVerse
	}

	if node.HasRole("image") {
		return config.BlockImage
	}

	return config.BlockUnknown
}
