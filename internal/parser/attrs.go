package parser

import (
	"strconv"
	"strings"

	"github.com/smykla-skalski/adoclint/pkg/document"
)

// isAttrListLine recognizes block attribute lists like [source,ruby] or
// [NOTE]. Anchor lines ([[id]]) are not attribute lists.
func isAttrListLine(line string) bool {
	return len(line) > 2 &&
		strings.HasPrefix(line, "[") &&
		strings.HasSuffix(line, "]") &&
		!strings.HasPrefix(line, "[[")
}

// isBlockTitleLine recognizes block title lines like .Caption. Literal block
// delimiters (....) and lone dots are excluded.
func isBlockTitleLine(line string) bool {
	if len(line) < 2 || !strings.HasPrefix(line, ".") {
		return false
	}

	return line[1] != '.' && line[1] != ' '
}

// applyAttrList folds one attribute list into the pending metadata. The
// first positional is the block style; a .role shorthand and %option
// markers are split off it.
func applyAttrList(pending *meta, inner string) {
	positionals, named := splitAttrList(inner)

	pending.positionals = positionals
	pending.set = true

	if pending.named == nil {
		pending.named = make(map[string]string)
	}

	for key, value := range named {
		pending.named[key] = value
	}

	if len(positionals) == 0 {
		return
	}

	style := positionals[0]

	// %option markers attach to the options attribute, not the style.
	if idx := strings.Index(style, "%"); idx >= 0 {
		appendOptions(pending, strings.Split(style[idx+1:], "%"))

		style = style[:idx]
	}

	if strings.HasPrefix(style, ".") {
		pending.role = strings.TrimPrefix(style, ".")

		return
	}

	if style != "" {
		pending.style = style
	}
}

// appendOptions merges option names into the pending options attribute.
func appendOptions(pending *meta, opts []string) {
	existing := pending.named["options"]

	for _, opt := range opts {
		if opt = strings.TrimSpace(opt); opt == "" {
			continue
		}

		if existing == "" {
			existing = opt
		} else {
			existing += "," + opt
		}
	}

	if existing != "" {
		pending.named["options"] = existing
	}
}

// splitAttrList splits an attribute list body into positional and named
// entries. Commas inside double quotes do not split.
func splitAttrList(s string) ([]string, map[string]string) {
	var (
		positionals []string
		parts       []string
		current     strings.Builder
		quoted      bool
	)

	named := make(map[string]string)

	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	parts = append(parts, current.String())

	for _, part := range parts {
		part = strings.TrimSpace(part)

		if key, value, ok := strings.Cut(part, "="); ok && key != "" {
			named[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"`)

			continue
		}

		positionals = append(positionals, part)
	}

	return positionals, named
}

// attributesFrom builds the node attribute map from pending metadata.
func attributesFrom(pending *meta) map[string]string {
	attrs := make(map[string]string, len(pending.named)+1)

	for key, value := range pending.named {
		attrs[key] = value
	}

	if pending.role != "" {
		attrs["role"] = pending.role
	}

	return attrs
}

// applyListingAttributes resolves the source language of a listing or
// literal block: the second positional of [source,lang], or an explicit
// language attribute.
func applyListingAttributes(node *document.Node, pending *meta) {
	if _, ok := node.Attributes["language"]; ok {
		return
	}

	if strings.EqualFold(pending.style, "source") &&
		len(pending.positionals) > 1 && pending.positionals[1] != "" {
		node.Attributes["language"] = pending.positionals[1]
	}
}

// columnsFromSpec derives the column count from a cols attribute value:
// "1,2,3" has three columns, "3*" repeats one spec three times.
func columnsFromSpec(spec string) int {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0
	}

	total := 0

	for part := range strings.SplitSeq(spec, ",") {
		part = strings.TrimSpace(part)

		if repeat, _, ok := strings.Cut(part, "*"); ok {
			if n, err := strconv.Atoi(repeat); err == nil && n > 0 {
				total += n

				continue
			}
		}

		total++
	}

	return total
}

// optionsInclude reports whether the pending options attribute names the
// given option.
func optionsInclude(pending *meta, option string) bool {
	for _, key := range []string{"options", "opts"} {
		for part := range strings.SplitSeq(pending.named[key], ",") {
			if strings.TrimSpace(part) == option {
				return true
			}
		}
	}

	return false
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
