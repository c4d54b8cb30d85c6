package block

import (
	"github.com/smykla-skalski/adoclint/internal/classifier"
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
)

// ValidateAll classifies every node and dispatches it to the configured
// block rules of the scope. A node is tracked and validated once per config
// of its kind: differently-named configs for the same kind count and
// validate independently. Unknown nodes and kinds without a config are
// skipped — absence of configuration means no constraint.
func (r Registry) ValidateAll(
	nodes []*document.Node,
	cfgs []*config.BlockConfig,
	scope string,
	vctx *validation.Context,
) []validation.Message {
	if len(cfgs) == 0 {
		return nil
	}

	var messages []validation.Message

	for _, node := range nodes {
		kind := classifier.Classify(node)
		if kind == config.BlockUnknown {
			continue
		}

		for _, cfg := range cfgs {
			if canonicalKind(cfg.Kind()) != kind {
				continue
			}

			validator, ok := r.Lookup(kind)
			if !ok {
				continue
			}

			vctx.Track(validation.BlockKey(scope, cfg), node)

			messages = append(messages, validator.Validate(node, cfg, vctx)...)
		}
	}

	return messages
}

func canonicalKind(kind config.BlockKind) config.BlockKind {
	if kind == config.BlockLiteral {
		return config.BlockListing
	}

	return kind
}
