package engine_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/adoclint/internal/engine"
	"github.com/smykla-skalski/adoclint/internal/parser"
	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

func TestEngine(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Engine Suite")
}

func intPtr(v int) *int { return &v }

// validateSource parses AsciiDoc source and runs one full validation pass.
func validateSource(src string, docCfg *config.DocumentConfig) *validation.Result {
	log := logger.NewNoOpLogger()

	doc, err := parser.NewParser(log).Parse("doc.adoc", []byte(src))
	Expect(err).NotTo(HaveOccurred())

	cfg := &config.Config{Document: docCfg}
	Expect(cfg.Validate()).To(Succeed())

	return engine.New(cfg, log).Validate("doc.adoc", doc)
}

var _ = Describe("DocumentValidator", func() {
	introOnce := &config.DocumentConfig{
		Sections: []*config.SectionConfig{{
			Name:       "introduction",
			Severity:   config.SeverityError,
			Occurrence: &config.OccurrenceRule{Min: intPtr(1), Max: intPtr(1)},
			Title:      &config.TitleRule{Exact: "Introduction"},
		}},
	}

	It("accepts a document with the required section exactly once", func() {
		result := validateSource(`= Guide

== Introduction

Welcome.
`, introOnce)

		Expect(result.Total()).To(BeZero())
	})

	It("flags a duplicated required section exactly once", func() {
		result := validateSource(`= Guide

== Introduction

First.

== Introduction

Second.
`, introOnce)

		Expect(result.Total()).To(Equal(1))

		msg := result.Messages()[0]
		Expect(msg.Text).To(Equal("Too many occurrences of section: introduction"))
		Expect(msg.Actual).To(Equal("2"))
		Expect(msg.Expected).To(Equal("At most 1"))
	})

	It("flags a disallowed listing language at the configured severity", func() {
		cfg := &config.DocumentConfig{
			Blocks: []*config.BlockConfig{{
				Type:     "listing",
				Severity: config.SeverityWarning,
				Rules: map[string]*config.RuleSpec{
					"language": {Allowed: []string{"java", "python", "javascript"}},
				},
			}},
		}

		result := validateSource(`= Guide

[source,ruby]
----
puts "hello"
----
`, cfg)

		Expect(result.Total()).To(Equal(1))

		msg := result.Messages()[0]
		Expect(msg.RuleID).To(Equal("listing.language.allowed"))
		Expect(msg.Severity).To(Equal(config.SeverityWarning))
		Expect(msg.Actual).To(Equal("ruby"))
	})

	It("flags only the admonition past the per-type maximum", func() {
		cfg := &config.DocumentConfig{
			Blocks: []*config.BlockConfig{{
				Type:     "admonition",
				Severity: config.SeverityError,
				Rules: map[string]*config.RuleSpec{
					"typeOccurrences": {Max: intPtr(2)},
				},
			}},
		}

		result := validateSource(`= Guide

NOTE: first

NOTE: second

NOTE: third
`, cfg)

		Expect(result.Total()).To(Equal(1))

		msg := result.Messages()[0]
		Expect(msg.RuleID).To(Equal("admonition.typeOccurrences.max"))
		Expect(msg.Actual).To(Equal("3"))
	})

	It("counts only non-blank paragraph lines", func() {
		cfg := &config.DocumentConfig{
			Blocks: []*config.BlockConfig{{
				Type:     "paragraph",
				Severity: config.SeverityError,
				Rules: map[string]*config.RuleSpec{
					"lines": {Min: intPtr(2)},
				},
			}},
		}

		result := validateSource("= Guide\n\nLine 1\nLine 2\n", cfg)

		Expect(result.Total()).To(BeZero())
	})

	It("runs metadata, blocks, hierarchy, and occurrence checks together", func() {
		cfg := &config.DocumentConfig{
			Title: &config.TitleRule{Exact: "User Guide"},
			Attributes: []*config.AttributeConfig{{
				Name:     "author",
				Severity: config.SeverityError,
				Rule:     &config.RuleSpec{Required: boolPtr(true)},
			}},
			Sections: []*config.SectionConfig{{
				Name:       "usage",
				Severity:   config.SeverityError,
				Occurrence: &config.OccurrenceRule{Min: intPtr(1)},
			}},
		}

		result := validateSource(`= Wrong Title

Some preamble.
`, cfg)

		ruleIDs := make([]string, 0, result.Total())
		for _, msg := range result.Messages() {
			ruleIDs = append(ruleIDs, msg.RuleID)
		}

		Expect(ruleIDs).To(ConsistOf(
			"document.title.match",
			"attribute.author.required",
			"section.occurrence.min",
		))
	})

	It("returns an empty result for an empty configuration", func() {
		result := validateSource(`= Guide

Anything at all.
`, &config.DocumentConfig{})

		Expect(result.Total()).To(BeZero())
	})
})

func boolPtr(v bool) *bool { return &v }
