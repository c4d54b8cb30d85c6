// Package document defines the read-only node tree consumed by the
// validation engine. Nodes are produced by a parser (internal/parser or any
// external AsciiDoc reader) and are never mutated during validation.
package document

import "strings"

// Well-known node kinds as emitted by the parser. Validators never switch on
// these directly; classification happens in internal/classifier.
const (
	KindDocument   = "document"
	KindSection    = "section"
	KindParagraph  = "paragraph"
	KindListing    = "listing"
	KindLiteral    = "literal"
	KindTable      = "table"
	KindImage      = "image"
	KindVerse      = "verse"
	KindQuote      = "quote"
	KindAdmonition = "admonition"
	KindPass       = "pass"
	KindVideo      = "video"
	KindExample    = "example"
	KindSidebar    = "sidebar"
	KindOpen       = "open"
)

// Node is a single element of the parsed document tree.
type Node struct {
	// Kind is the raw native kind string (e.g. "section", "listing").
	Kind string

	// Style is the declared block style, when one was given
	// (e.g. "source" on an example block, "verse" on a quote).
	Style string

	// Title is the block or section title, empty when absent.
	Title string

	// Level is the section nesting depth, 1-based. Zero for non-sections.
	Level int

	// Attributes holds named attributes ("language", "role", "width", ...).
	Attributes map[string]string

	// Content is the raw textual content of the node, empty for containers.
	Content string

	// Children are the nested nodes in document order.
	Children []*Node

	// Line is the 1-based source line the node starts on. Zero means the
	// parser could not determine a position.
	Line int
}

// Attr returns the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attributes == nil {
		return "", false
	}

	v, ok := n.Attributes[name]

	return v, ok
}

// AttrOr returns the named attribute or the given fallback.
func (n *Node) AttrOr(name, fallback string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}

	return fallback
}

// HasAttr reports whether the named attribute is present, even when empty.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)

	return ok
}

// HasRole reports whether the node carries the given role. Roles are stored
// as a space-separated list in the "role" attribute.
func (n *Node) HasRole(role string) bool {
	raw, ok := n.Attr("role")
	if !ok {
		return false
	}

	for r := range strings.FieldsSeq(raw) {
		if r == role {
			return true
		}
	}

	return false
}

// Text returns the node content, falling back to the joined content of its
// children when the node itself carries none.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}

	if n.Content != "" {
		return n.Content
	}

	if len(n.Children) == 0 {
		return ""
	}

	parts := make([]string, 0, len(n.Children))

	for _, child := range n.Children {
		if t := child.Text(); t != "" {
			parts = append(parts, t)
		}
	}

	return strings.Join(parts, "\n")
}

// Lines splits the node text into lines. Returns nil for empty content.
func (n *Node) Lines() []string {
	text := n.Text()
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

// NonBlankLineCount counts lines that contain at least one non-whitespace
// character. Blank separator lines do not count toward paragraph length.
func (n *Node) NonBlankLineCount() int {
	count := 0

	for _, line := range n.Lines() {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}

	return count
}

// Sections returns the child nodes that are sections, in document order.
func (n *Node) Sections() []*Node {
	if n == nil {
		return nil
	}

	sections := make([]*Node, 0, len(n.Children))

	for _, child := range n.Children {
		if child.Kind == KindSection {
			sections = append(sections, child)
		}
	}

	return sections
}

// Blocks returns the child nodes that are not sections, in document order.
func (n *Node) Blocks() []*Node {
	if n == nil {
		return nil
	}

	blocks := make([]*Node, 0, len(n.Children))

	for _, child := range n.Children {
		if child.Kind != KindSection {
			blocks = append(blocks, child)
		}
	}

	return blocks
}
