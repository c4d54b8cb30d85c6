package section_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/internal/validators/block"
	"github.com/smykla-skalski/adoclint/internal/validators/section"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

func TestHierarchy(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hierarchy Suite")
}

func intPtr(v int) *int { return &v }

func sectionNode(title string, line int, children ...*document.Node) *document.Node {
	return &document.Node{
		Kind:     document.KindSection,
		Title:    title,
		Line:     line,
		Children: children,
	}
}

var _ = Describe("HierarchyValidator", func() {
	var (
		validator *section.HierarchyValidator
		vctx      *validation.Context
	)

	BeforeEach(func() {
		log := logger.NewNoOpLogger()
		validator = section.NewHierarchyValidator(block.NewRegistry(log), log)
		vctx = validation.NewContext("doc.adoc")
	})

	It("stays silent when every section matches", func() {
		doc := &document.Node{
			Kind: document.KindDocument,
			Children: []*document.Node{
				sectionNode("Introduction", 3),
			},
		}
		cfgs := []*config.SectionConfig{{
			Name:     "introduction",
			Severity: config.SeverityError,
			Title:    &config.TitleRule{Exact: "Introduction"},
		}}

		messages := validator.Validate(doc, cfgs, "", 1, vctx)

		Expect(messages).To(BeEmpty())
		Expect(vctx.Count(validation.SectionKey("", cfgs[0]))).To(Equal(1))
	})

	It("tracks repeated sections under the same key", func() {
		doc := &document.Node{
			Kind: document.KindDocument,
			Children: []*document.Node{
				sectionNode("Introduction", 3),
				sectionNode("Introduction", 20),
			},
		}
		cfgs := []*config.SectionConfig{{
			Name:     "introduction",
			Severity: config.SeverityError,
			Title:    &config.TitleRule{Exact: "Introduction"},
		}}

		validator.Validate(doc, cfgs, "", 1, vctx)

		Expect(vctx.Count(validation.SectionKey("", cfgs[0]))).To(Equal(2))
	})

	It("flags unexpected sections without recursing into them", func() {
		doc := &document.Node{
			Kind: document.KindDocument,
			Children: []*document.Node{
				sectionNode("Changelog", 12,
					sectionNode("Also Unknown", 14),
				),
			},
		}
		cfgs := []*config.SectionConfig{{
			Name:     "introduction",
			Severity: config.SeverityWarning,
		}}

		messages := validator.Validate(doc, cfgs, "", 1, vctx)

		Expect(messages).To(HaveLen(1))
		Expect(messages[0].RuleID).To(Equal("section.unexpected"))
		Expect(messages[0].Text).To(Equal("Unexpected section at level 1: 'Changelog'"))
		Expect(messages[0].Severity).To(Equal(config.SeverityWarning))
		Expect(messages[0].Location.Line).To(Equal(12))
	})

	It("matches case-insensitively on the name when no title rule is set", func() {
		doc := &document.Node{
			Kind: document.KindDocument,
			Children: []*document.Node{
				sectionNode("USAGE", 5),
			},
		}
		cfgs := []*config.SectionConfig{{
			Name:     "usage",
			Severity: config.SeverityError,
		}}

		Expect(validator.Validate(doc, cfgs, "", 1, vctx)).To(BeEmpty())
	})

	Describe("order checking", func() {
		cfgs := []*config.SectionConfig{
			{
				Name:     "intro",
				Order:    intPtr(1),
				Severity: config.SeverityError,
			},
			{
				Name:     "prereq",
				Order:    intPtr(2),
				Severity: config.SeverityError,
			},
			{
				Name:     "install",
				Order:    intPtr(3),
				Severity: config.SeverityError,
			},
		}

		It("produces exactly one violation for a swapped pair", func() {
			doc := &document.Node{
				Kind: document.KindDocument,
				Children: []*document.Node{
					sectionNode("Install", 3),
					sectionNode("Intro", 10),
				},
			}

			messages := validator.Validate(doc, cfgs, "", 1, vctx)

			Expect(messages).To(HaveLen(1))
			Expect(messages[0].RuleID).To(Equal("section.order"))
			Expect(messages[0].Text).To(
				Equal("Section 'intro' should appear before section 'install'"))
			Expect(messages[0].Location.Line).To(Equal(10))
		})

		It("stays silent for the configured order", func() {
			doc := &document.Node{
				Kind: document.KindDocument,
				Children: []*document.Node{
					sectionNode("Intro", 3),
					sectionNode("Prereq", 8),
					sectionNode("Install", 15),
				},
			}

			Expect(validator.Validate(doc, cfgs, "", 1, vctx)).To(BeEmpty())
		})

		It("detects violations transitively, not just adjacent pairs", func() {
			doc := &document.Node{
				Kind: document.KindDocument,
				Children: []*document.Node{
					sectionNode("Install", 3),
					sectionNode("Prereq", 8),
					sectionNode("Intro", 15),
				},
			}

			messages := validator.Validate(doc, cfgs, "", 1, vctx)

			// prereq<install, intro<install, intro<prereq.
			Expect(messages).To(HaveLen(3))

			for _, msg := range messages {
				Expect(msg.RuleID).To(Equal("section.order"))
			}
		})
	})

	It("recurses into matched sections with a child scope", func() {
		doc := &document.Node{
			Kind: document.KindDocument,
			Children: []*document.Node{
				sectionNode("Usage", 3,
					sectionNode("Examples", 6),
				),
			},
		}
		child := &config.SectionConfig{
			Name:     "examples",
			Severity: config.SeverityError,
		}
		cfgs := []*config.SectionConfig{{
			Name:     "usage",
			Severity: config.SeverityError,
			Sections: []*config.SectionConfig{child},
		}}

		messages := validator.Validate(doc, cfgs, "", 1, vctx)

		Expect(messages).To(BeEmpty())
		Expect(vctx.Count(validation.SectionKey("usage", child))).To(Equal(1))
	})

	It("validates the blocks of matched sections in their scope", func() {
		listing := &document.Node{
			Kind:       document.KindListing,
			Content:    "x",
			Attributes: map[string]string{},
		}
		doc := &document.Node{
			Kind: document.KindDocument,
			Children: []*document.Node{
				sectionNode("Usage", 3, listing),
			},
		}
		blockCfg := &config.BlockConfig{
			Type:     "listing",
			Severity: config.SeverityError,
		}
		cfgs := []*config.SectionConfig{{
			Name:     "usage",
			Severity: config.SeverityError,
			Blocks:   []*config.BlockConfig{blockCfg},
		}}

		validator.Validate(doc, cfgs, "", 1, vctx)

		Expect(vctx.Count(validation.BlockKey("usage", blockCfg))).To(Equal(1))
	})
})
