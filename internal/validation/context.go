package validation

import (
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
)

// OccurrenceKey identifies one counted config entry. Keys are compared
// structurally; two differently-named configs for the same kind count
// independently, while unnamed configs share the kind-wide counter.
type OccurrenceKey struct {
	// Scope is the section path the config is declared under
	// ("" for document level, "usage/examples" for nested sections).
	Scope string

	// Kind is the counted category: a block kind name, "section", or a
	// validator-private namespace such as "admonition-type".
	Kind string

	// Name disambiguates multiple configs of the same kind.
	Name string
}

// BlockKey builds the occurrence key for a block config within a scope.
func BlockKey(scope string, cfg *config.BlockConfig) OccurrenceKey {
	return OccurrenceKey{
		Scope: scope,
		Kind:  cfg.Kind().String(),
		Name:  cfg.Name,
	}
}

// SectionKey builds the occurrence key for a section config within a scope.
func SectionKey(scope string, cfg *config.SectionConfig) OccurrenceKey {
	return OccurrenceKey{
		Scope: scope,
		Kind:  "section",
		Name:  cfg.Name,
	}
}

// ChildScope extends a scope path with a section name.
func ChildScope(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "/" + name
}

// Encounter records one tracked (key, node) pair in document order.
type Encounter struct {
	Key   OccurrenceKey
	Node  *document.Node
	Index int
}

// Context is the mutable per-document state of one validation pass:
// occurrence counters and the encounter order. It is created at the start of
// a pass and discarded at the end.
//
// A Context is not safe for concurrent use. One document is validated
// single-threaded; callers validating several documents in parallel must give
// each its own Context.
type Context struct {
	path       string
	counts     map[OccurrenceKey]int
	encounters []Encounter
	first      map[OccurrenceKey]*document.Node
	last       map[OccurrenceKey]*document.Node
}

// NewContext creates a Context for the document at the given path.
func NewContext(path string) *Context {
	return &Context{
		path:   path,
		counts: make(map[OccurrenceKey]int),
		first:  make(map[OccurrenceKey]*document.Node),
		last:   make(map[OccurrenceKey]*document.Node),
	}
}

// Path returns the document path the context is scoped to.
func (c *Context) Path() string {
	return c.path
}

// Track records one matched node for the given key and returns the updated
// count. Occurrence bounds are checked in a post-pass, never here: a later
// sibling could still satisfy a minimum.
func (c *Context) Track(key OccurrenceKey, node *document.Node) int {
	c.counts[key]++

	c.encounters = append(c.encounters, Encounter{
		Key:   key,
		Node:  node,
		Index: len(c.encounters),
	})

	if _, ok := c.first[key]; !ok {
		c.first[key] = node
	}

	c.last[key] = node

	return c.counts[key]
}

// Count returns the current counter for the key, zero if never tracked.
func (c *Context) Count(key OccurrenceKey) int {
	return c.counts[key]
}

// Encounters returns all tracked pairs in document order.
func (c *Context) Encounters() []Encounter {
	return c.encounters
}

// First returns the first node tracked under the key, nil if none.
func (c *Context) First(key OccurrenceKey) *document.Node {
	return c.first[key]
}

// Last returns the most recent node tracked under the key, nil if none.
func (c *Context) Last(key OccurrenceKey) *document.Node {
	return c.last[key]
}

// Location resolves a node's source location. The line defaults to 1 when
// the parser could not determine a position; a location is always returned.
func (c *Context) Location(node *document.Node) Location {
	line := 1
	if node != nil && node.Line > 0 {
		line = node.Line
	}

	return Location{Path: c.path, Line: line}
}
