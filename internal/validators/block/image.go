package block

import (
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// ImageValidator validates image macros: target url, alt text, dimensions.
type ImageValidator struct {
	validators.BaseValidator
}

// NewImageValidator creates an ImageValidator.
func NewImageValidator(log logger.Logger) *ImageValidator {
	return &ImageValidator{
		BaseValidator: *validators.NewBaseValidator("validate-image", log),
	}
}

// Kind returns the block kind this validator evaluates.
func (*ImageValidator) Kind() config.BlockKind {
	return config.BlockImage
}

// Validate checks the configured image rules.
func (v *ImageValidator) Validate(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
) []validation.Message {
	validators.EnsureKind(cfg, config.BlockImage)

	target, hasTarget := node.Attr("target")
	alt, hasAlt := node.Attr("alt")
	width, hasWidth := node.Attr("width")
	height, hasHeight := node.Attr("height")

	facts := Facts{
		"url":    attrFact(target, hasTarget, "target"),
		"alt":    attrFact(alt, hasAlt, "alt"),
		"width":  attrCountFact(width, hasWidth, "width"),
		"height": attrCountFact(height, hasHeight, "height"),
	}

	return evalRules(config.BlockImage, node, cfg, vctx, facts)
}
