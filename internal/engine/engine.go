// Package engine wires the classifier, validators, and context into a
// single-pass document validation, and runs independent documents in
// parallel.
package engine

import (
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators/block"
	"github.com/smykla-skalski/adoclint/internal/validators/metadata"
	"github.com/smykla-skalski/adoclint/internal/validators/section"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

//go:generate mockgen -source=engine.go -destination=engine_mock.go -package=engine

// Parser turns raw document text into the node tree the engine consumes.
// internal/parser provides the built-in implementation.
type Parser interface {
	// Parse parses src into a document tree. The path is used for
	// diagnostics only.
	Parse(path string, src []byte) (*document.Node, error)
}

// DocumentValidator validates one parsed document against the loaded
// configuration. The configuration is treated as read-only; all mutable
// state lives in the per-pass context, so one DocumentValidator may be
// shared across parallel document validations.
type DocumentValidator struct {
	cfg       *config.Config
	registry  block.Registry
	hierarchy *section.HierarchyValidator
	metadata  *metadata.Validator
	log       logger.Logger
}

// New creates a DocumentValidator for a validated configuration.
func New(cfg *config.Config, log logger.Logger) *DocumentValidator {
	registry := block.NewRegistry(log)

	return &DocumentValidator{
		cfg:       cfg,
		registry:  registry,
		hierarchy: section.NewHierarchyValidator(registry, log),
		metadata:  metadata.NewValidator(log),
		log:       log,
	}
}

// Validate runs the full single-threaded pass over one document: header
// metadata, preamble blocks, the section hierarchy, and finally the
// occurrence post-pass over the completed context.
func (v *DocumentValidator) Validate(path string, doc *document.Node) *validation.Result {
	builder := validation.NewResultBuilder()

	docCfg := v.cfg.Document
	if docCfg == nil || doc == nil {
		return builder.Build()
	}

	vctx := validation.NewContext(path)

	builder.Add(v.metadata.Validate(doc, docCfg, vctx)...)
	builder.Add(v.registry.ValidateAll(doc.Blocks(), docCfg.Blocks, "", vctx)...)
	builder.Add(v.hierarchy.Validate(doc, docCfg.Sections, "", 1, vctx)...)

	// Occurrence bounds are checked only once the whole tree has been
	// walked; a later sibling could still satisfy a minimum.
	builder.Add(validation.CheckOccurrences(docCfg, vctx)...)

	result := builder.Build()

	v.log.Debug("document validated",
		"path", path,
		"findings", result.Total(),
	)

	return result
}
