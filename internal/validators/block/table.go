package block

import (
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// TableValidator validates table dimensions, header, caption, and format.
type TableValidator struct {
	validators.BaseValidator
}

// NewTableValidator creates a TableValidator.
func NewTableValidator(log logger.Logger) *TableValidator {
	return &TableValidator{
		BaseValidator: *validators.NewBaseValidator("validate-table", log),
	}
}

// Kind returns the block kind this validator evaluates.
func (*TableValidator) Kind() config.BlockKind {
	return config.BlockTable
}

// Validate checks the configured table rules. The parser precomputes
// "columns", "rows", and "header" attributes on table nodes; missing or
// unparsable values are treated as absent facts, never as failures.
func (v *TableValidator) Validate(
	node *document.Node,
	cfg *config.BlockConfig,
	vctx *validation.Context,
) []validation.Message {
	validators.EnsureKind(cfg, config.BlockTable)

	columns, hasColumns := node.Attr("columns")
	rows, hasRows := node.Attr("rows")
	header, hasHeader := node.Attr("header")

	facts := Facts{
		"columns": attrCountFact(columns, hasColumns, "columns"),
		"rows":    attrCountFact(rows, hasRows, "rows"),
		"header":  attrFact(header, hasHeader, "header"),
		"caption": stringFact(node.Title),
		"style":   stringFact(node.Style),
	}

	return evalRules(config.BlockTable, node, cfg, vctx, facts)
}
