// Package parser reads AsciiDoc text into the document node tree the
// validation engine consumes. It is a structural reader: sections, block
// boundaries, titles, and attributes are resolved with accurate source
// lines, while inline markup is passed through untouched.
package parser

import (
	"regexp"
	"strings"

	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

var (
	headingRe    = regexp.MustCompile(`^(={1,6})\s+(.+?)\s*$`)
	attrEntryRe  = regexp.MustCompile(`^:([^:\s]+):\s*(.*)$`)
	admonitionRe = regexp.MustCompile(`^(NOTE|TIP|IMPORTANT|WARNING|CAUTION):\s+(.*)$`)
	macroRe      = regexp.MustCompile(`^(image|video)::([^\[]+)\[(.*)\]\s*$`)
)

// admonitionStyles are the block styles that turn a delimited example block
// into an admonition.
var admonitionStyles = map[string]bool{
	"NOTE":      true,
	"TIP":       true,
	"IMPORTANT": true,
	"WARNING":   true,
	"CAUTION":   true,
}

// Parser is the built-in AsciiDoc structural parser.
type Parser struct {
	log logger.Logger
}

// NewParser creates a Parser.
func NewParser(log logger.Logger) *Parser {
	return &Parser{log: log}
}

// Parse parses src into a document tree. The parser is forgiving: malformed
// input degrades to plainer structure instead of failing, so validation can
// still run over what was recognized.
func (p *Parser) Parse(path string, src []byte) (*document.Node, error) {
	s := &state{
		lines: strings.Split(strings.ReplaceAll(string(src), "\r\n", "\n"), "\n"),
	}

	doc := s.parse()

	p.log.Debug("parsed document",
		"path", path,
		"sections", len(doc.Sections()),
		"blocks", len(doc.Blocks()),
	)

	return doc, nil
}

// state is the per-parse cursor over source lines.
type state struct {
	lines []string
	pos   int
}

// meta is block metadata pending from attribute lists and title lines.
type meta struct {
	title       string
	style       string
	role        string
	positionals []string
	named       map[string]string
	set         bool
}

func (m *meta) reset() {
	*m = meta{}
}

func (s *state) parse() *document.Node {
	doc := &document.Node{
		Kind:       document.KindDocument,
		Line:       1,
		Attributes: map[string]string{},
	}

	s.parseHeader(doc)

	// stack[i] holds the open container at section depth i; the document
	// root is depth zero.
	stack := []*document.Node{doc}

	var pending meta

	for s.pos < len(s.lines) {
		line := strings.TrimRight(s.lines[s.pos], " \t")

		switch {
		case line == "":
			// A blank line detaches pending block metadata.
			pending.reset()
			s.pos++

		case strings.HasPrefix(line, "//"):
			s.pos++

		case headingRe.MatchString(line):
			node := s.parseSection(line)
			stack = attachSection(stack, node)
			pending.reset()

		case isAttrListLine(line):
			applyAttrList(&pending, line[1:len(line)-1])
			s.pos++

		case isBlockTitleLine(line):
			pending.title = strings.TrimSpace(line[1:])
			pending.set = true
			s.pos++

		default:
			node := s.parseBlock(line, &pending)
			if node != nil {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}

			pending.reset()
		}
	}

	return doc
}

// parseHeader consumes the document title line and the ":name: value"
// attribute entries that follow it.
func (s *state) parseHeader(doc *document.Node) {
	for s.pos < len(s.lines) {
		line := strings.TrimRight(s.lines[s.pos], " \t")

		if line == "" || strings.HasPrefix(line, "//") {
			s.pos++
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil && len(m[1]) == 1 {
			doc.Title = m[2]
			doc.Line = s.pos + 1
			s.pos++

			s.parseHeaderAttributes(doc)
		}

		return
	}
}

func (s *state) parseHeaderAttributes(doc *document.Node) {
	for s.pos < len(s.lines) {
		line := strings.TrimRight(s.lines[s.pos], " \t")

		if m := attrEntryRe.FindStringSubmatch(line); m != nil {
			doc.Attributes[m[1]] = strings.TrimSpace(m[2])
			s.pos++

			continue
		}

		return
	}
}

func (s *state) parseSection(line string) *document.Node {
	m := headingRe.FindStringSubmatch(line)
	node := &document.Node{
		Kind:       document.KindSection,
		Title:      m[2],
		Level:      len(m[1]) - 1,
		Line:       s.pos + 1,
		Attributes: map[string]string{},
	}

	s.pos++

	return node
}

// attachSection pops the stack to the section's parent depth and pushes the
// new section. Skipped levels attach to the nearest open ancestor.
func attachSection(stack []*document.Node, node *document.Node) []*document.Node {
	depth := node.Level
	if depth > len(stack) {
		depth = len(stack)
	}

	stack = stack[:depth]
	parent := stack[len(stack)-1]
	parent.Children = append(parent.Children, node)

	return append(stack, node)
}

// parseBlock dispatches on the first line of a block.
func (s *state) parseBlock(line string, pending *meta) *document.Node {
	switch {
	case strings.HasPrefix(line, "----"):
		return s.parseDelimited(line, document.KindListing, pending)

	case strings.HasPrefix(line, "...."):
		return s.parseDelimited(line, document.KindLiteral, pending)

	case strings.HasPrefix(line, "____"):
		return s.parseQuote(line, pending)

	case strings.HasPrefix(line, "++++"):
		return s.parseDelimited(line, document.KindPass, pending)

	case strings.HasPrefix(line, "===="):
		return s.parseExample(line, pending)

	case strings.HasPrefix(line, "|==="):
		return s.parseTable(line, pending)

	case macroRe.MatchString(line):
		return s.parseMacro(line, pending)

	case admonitionRe.MatchString(line):
		return s.parseAdmonitionParagraph(line, pending)

	default:
		return s.parseParagraph(pending)
	}
}

// parseDelimited consumes a delimiter-fenced block and returns a node of the
// given kind. An unterminated block runs to end of input.
func (s *state) parseDelimited(delimiter string, kind string, pending *meta) *document.Node {
	startLine := s.pos + 1
	s.pos++

	var content []string

	for s.pos < len(s.lines) {
		line := strings.TrimRight(s.lines[s.pos], " \t")
		if line == delimiter {
			s.pos++
			break
		}

		content = append(content, s.lines[s.pos])
		s.pos++
	}

	// An unterminated block picks up trailing blank lines; drop them.
	for len(content) > 0 && strings.TrimSpace(content[len(content)-1]) == "" {
		content = content[:len(content)-1]
	}

	node := &document.Node{
		Kind:       kind,
		Title:      pending.title,
		Style:      pending.style,
		Content:    strings.Join(content, "\n"),
		Line:       startLine,
		Attributes: attributesFrom(pending),
	}

	if kind == document.KindListing || kind == document.KindLiteral {
		applyListingAttributes(node, pending)
	}

	return node
}

// parseQuote handles ____ blocks, carrying attribution and citetitle from
// the attribute list ([quote, Author, Source]).
func (s *state) parseQuote(delimiter string, pending *meta) *document.Node {
	node := s.parseDelimited(delimiter, document.KindQuote, pending)

	if len(pending.positionals) > 1 && pending.positionals[1] != "" {
		node.Attributes["attribution"] = pending.positionals[1]
	}

	if len(pending.positionals) > 2 && pending.positionals[2] != "" {
		node.Attributes["citetitle"] = pending.positionals[2]
	}

	if strings.EqualFold(pending.style, "verse") {
		node.Kind = document.KindVerse
		node.Style = "verse"
	}

	return node
}

// parseExample handles ==== blocks: styled admonitions keep their type as
// the node style, anything else stays an example container.
func (s *state) parseExample(delimiter string, pending *meta) *document.Node {
	kind := document.KindExample

	style := strings.ToUpper(pending.style)
	if admonitionStyles[style] {
		kind = document.KindAdmonition
	}

	node := s.parseDelimited(delimiter, kind, pending)

	if kind == document.KindAdmonition {
		node.Style = style
	}

	return node
}

// parseTable consumes a |=== table and precomputes the facts the table
// validator reads: column count, row count, and the header row.
func (s *state) parseTable(delimiter string, pending *meta) *document.Node {
	node := s.parseDelimited(delimiter, document.KindTable, pending)

	var rows []string

	for _, line := range strings.Split(node.Content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			rows = append(rows, strings.TrimSpace(line))
		}
	}

	columns := columnsFromSpec(pending.named["cols"])
	if columns == 0 && len(rows) > 0 {
		columns = strings.Count(rows[0], "|")
	}

	hasHeader := optionsInclude(pending, "header")
	if !hasHeader && len(rows) > 1 {
		// A first row separated from the body by a blank line is a header.
		lines := strings.Split(node.Content, "\n")
		for i, line := range lines {
			if strings.HasPrefix(strings.TrimSpace(line), "|") {
				hasHeader = i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == ""
				break
			}
		}
	}

	dataRows := len(rows)

	if hasHeader && len(rows) > 0 {
		node.Attributes["header"] = strings.Trim(rows[0], "| ")
		dataRows--
	}

	node.Attributes["columns"] = itoa(columns)
	node.Attributes["rows"] = itoa(dataRows)

	return node
}

// parseMacro handles image:: and video:: block macros.
func (s *state) parseMacro(line string, pending *meta) *document.Node {
	m := macroRe.FindStringSubmatch(line)

	node := &document.Node{
		Kind:       m[1],
		Title:      pending.title,
		Style:      pending.style,
		Line:       s.pos + 1,
		Attributes: attributesFrom(pending),
	}

	node.Attributes["target"] = strings.TrimSpace(m[2])

	positionals, named := splitAttrList(m[3])

	for key, value := range named {
		node.Attributes[key] = value
	}

	if m[1] == document.KindImage {
		applyImagePositionals(node, positionals)
	}

	s.pos++

	return node
}

func applyImagePositionals(node *document.Node, positionals []string) {
	keys := []string{"alt", "width", "height"}

	for i, key := range keys {
		if i < len(positionals) && positionals[i] != "" {
			if _, ok := node.Attributes[key]; !ok {
				node.Attributes[key] = positionals[i]
			}
		}
	}
}

// parseAdmonitionParagraph handles the NOTE: ... single-paragraph form.
func (s *state) parseAdmonitionParagraph(line string, pending *meta) *document.Node {
	m := admonitionRe.FindStringSubmatch(line)
	startLine := s.pos + 1
	s.pos++

	content := []string{m[2]}
	content = append(content, s.continuationLines()...)

	return &document.Node{
		Kind:       document.KindAdmonition,
		Style:      m[1],
		Title:      pending.title,
		Content:    strings.Join(content, "\n"),
		Line:       startLine,
		Attributes: attributesFrom(pending),
	}
}

// parseParagraph consumes contiguous plain lines.
func (s *state) parseParagraph(pending *meta) *document.Node {
	startLine := s.pos + 1
	content := []string{s.lines[s.pos]}
	s.pos++

	content = append(content, s.continuationLines()...)

	kind := document.KindParagraph

	// A paragraph under an admonition or source style keeps that identity.
	style := pending.style

	if admonitionStyles[strings.ToUpper(style)] {
		kind = document.KindAdmonition
		style = strings.ToUpper(style)
	}

	node := &document.Node{
		Kind:       kind,
		Style:      style,
		Title:      pending.title,
		Content:    strings.Join(content, "\n"),
		Line:       startLine,
		Attributes: attributesFrom(pending),
	}

	return node
}

// continuationLines consumes lines until a blank line or a structural
// marker.
func (s *state) continuationLines() []string {
	var lines []string

	for s.pos < len(s.lines) {
		line := strings.TrimRight(s.lines[s.pos], " \t")

		if line == "" || headingRe.MatchString(line) || isAttrListLine(line) ||
			strings.HasPrefix(line, "----") || strings.HasPrefix(line, "....") ||
			strings.HasPrefix(line, "|===") || strings.HasPrefix(line, "++++") ||
			strings.HasPrefix(line, "____") || strings.HasPrefix(line, "====") {
			return lines
		}

		lines = append(lines, s.lines[s.pos])
		s.pos++
	}

	return lines
}
