package block

import (
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// VideoValidator validates video macros: target url, poster, dimensions,
// and the combined options attribute ("autoplay,loop,nocontrols").
type VideoValidator struct {
	validators.BaseValidator
}

// NewVideoValidator creates a VideoValidator.
func NewVideoValidator(log logger.Logger) *VideoValidator {
	return &VideoValidator{
		BaseValidator: *validators.NewBaseValidator("validate-video", log),
	}
}

// Kind returns the block kind this validator evaluates.
func (*VideoValidator) Kind() config.BlockKind {
	return config.BlockVideo
}

// Validate checks the configured video rules. Option flags are parsed out of
// the combined "options" attribute; "opts" is accepted as the short form.
func (v *VideoValidator) Validate(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
) []validation.Message {
	validators.EnsureKind(cfg, config.BlockVideo)

	target, hasTarget := node.Attr("target")
	poster, hasPoster := node.Attr("poster")
	width, hasWidth := node.Attr("width")
	height, hasHeight := node.Attr("height")

	options, hasOptions := node.Attr("options")
	if !hasOptions {
		options, hasOptions = node.Attr("opts")
	}

	facts := Facts{
		"url":     attrFact(target, hasTarget, "target"),
		"poster":  attrFact(poster, hasPoster, "poster"),
		"width":   attrCountFact(width, hasWidth, "width"),
		"height":  attrCountFact(height, hasHeight, "height"),
		"options": flagsFact(options, hasOptions, "options"),
		"caption": stringFact(node.Title),
	}

	return evalRules(config.BlockVideo, node, cfg, vctx, facts)
}
