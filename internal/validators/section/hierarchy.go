// Package section implements the document hierarchy validator: it reconciles
// the configured section tree with the actual one, level by level.
package section

import (
	"strconv"

	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators"
	"github.com/smykla-skalski/adoclint/internal/validators/block"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// HierarchyValidator co-walks the configured SectionConfig tree and the
// actual section tree. At each level it matches sections by title, flags
// unexpected ones, detects order violations transitively, validates the
// blocks of matched sections, and recurses into matched subsections only.
// Occurrence bounds are tracked here and checked in the occurrence
// post-pass.
type HierarchyValidator struct {
	validators.BaseValidator
	registry block.Registry
}

// NewHierarchyValidator creates a HierarchyValidator dispatching block
// validation through the given registry.
func NewHierarchyValidator(registry block.Registry, log logger.Logger) *HierarchyValidator {
	return &HierarchyValidator{
		BaseValidator: *validators.NewBaseValidator("validate-sections", log),
		registry:      registry,
	}
}

// matched pairs an actual section with the config it satisfied, in
// encounter order.
type matched struct {
	cfg  *config.SectionConfig
	node *document.Node
}

// Validate walks the children of parent against the configured sections at
// the given level. Scope is the section path used for occurrence keys. An
// empty config list means this level is unvalidated by design.
func (v *HierarchyValidator) Validate(
	parent *document.Node,
	cfgs []*config.SectionConfig,
	scope string,
	level int,
	vctx *validation.Context,
) []validation.Message {
	if len(cfgs) == 0 {
		return nil
	}

	var (
		messages []validation.Message
		order    []matched
	)

	for _, node := range parent.Sections() {
		cfg := matchSection(cfgs, node.Title)
		if cfg == nil {
			messages = append(messages, v.unexpectedSection(node, cfgs, level, vctx))

			// Unrecognized sections are not recursed into: their interior
			// is out of scope.
			continue
		}

		vctx.Track(validation.SectionKey(scope, cfg), node)

		order = append(order, matched{cfg: cfg, node: node})

		childScope := validation.ChildScope(scope, cfg.Name)

		messages = append(messages, v.registry.ValidateAll(
			node.Blocks(),
			cfg.Blocks,
			childScope,
			vctx,
		)...)

		messages = append(messages, v.Validate(
			node,
			cfg.Sections,
			childScope,
			level+1,
			vctx,
		)...)
	}

	messages = append(messages, v.checkOrder(order, vctx)...)

	return messages
}

// matchSection finds the first config whose title rule matches.
func matchSection(cfgs []*config.SectionConfig, title string) *config.SectionConfig {
	for _, cfg := range cfgs {
		if cfg.Matches(title) {
			return cfg
		}
	}

	return nil
}

// unexpectedSection reports a section no config at this level matched. The
// severity comes from the level's first config: all configs failed to match,
// and the first is the deterministic representative.
func (v *HierarchyValidator) unexpectedSection(
	node *document.Node,
	cfgs []*config.SectionConfig,
	level int,
	vctx *validation.Context,
) validation.Message {
	return validation.Message{
		Severity: cfgs[0].TitleSeverity(),
		RuleID:   "section.unexpected",
		Text: "Unexpected section at level " + strconv.Itoa(level) +
			": '" + node.Title + "'",
		Location: vctx.Location(node),
		Actual:   node.Title,
	}
}

// checkOrder detects order violations transitively: any section with a lower
// configured order encountered after one with a higher order violates, not
// just adjacent pairs. One finding per violating pair, naming both sections.
func (v *HierarchyValidator) checkOrder(
	order []matched,
	vctx *validation.Context,
) []validation.Message {
	var messages []validation.Message

	for j := 1; j < len(order); j++ {
		later := order[j]
		if later.cfg.Order == nil {
			continue
		}

		for i := 0; i < j; i++ {
			earlier := order[i]
			if earlier.cfg.Order == nil || *earlier.cfg.Order <= *later.cfg.Order {
				continue
			}

			messages = append(messages, validation.Message{
				Severity: later.cfg.Severity,
				RuleID:   "section.order",
				Text: "Section '" + later.cfg.Name + "' should appear before section '" +
					earlier.cfg.Name + "'",
				Location: vctx.Location(later.node),
				Actual:   later.cfg.Name + " after " + earlier.cfg.Name,
				Expected: later.cfg.Name + " before " + earlier.cfg.Name,
			})
		}
	}

	return messages
}
