package classifier_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/adoclint/internal/classifier"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
)

func TestClassifier(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Classifier Suite")
}

var _ = Describe("Classify", func() {
	It("returns Unknown for a nil node", func() {
		Expect(classifier.Classify(nil)).To(Equal(config.BlockUnknown))
	})

	It("returns Unknown for an unrecognized kind", func() {
		node := &document.Node{Kind: "weird-extension-block"}
		Expect(classifier.Classify(node)).To(Equal(config.BlockUnknown))
	})

	DescribeTable("direct kind mapping",
		func(kind string, want config.BlockKind) {
			Expect(classifier.Classify(&document.Node{Kind: kind})).To(Equal(want))
		},
		Entry("paragraph", document.KindParagraph, config.BlockParagraph),
		Entry("listing", document.KindListing, config.BlockListing),
		Entry("table", document.KindTable, config.BlockTable),
		Entry("image", document.KindImage, config.BlockImage),
		Entry("pass", document.KindPass, config.BlockPass),
		Entry("video", document.KindVideo, config.BlockVideo),
		Entry("admonition", document.KindAdmonition, config.BlockAdmonition),
		Entry("verse", document.KindVerse, config.BlockVerse),
	)

	It("is case-insensitive on the node kind", func() {
		Expect(classifier.Classify(&document.Node{Kind: "Listing"})).
			To(Equal(config.BlockListing))
	})

	It("folds literal blocks into listings", func() {
		node := &document.Node{Kind: document.KindLiteral}
		Expect(classifier.Classify(node)).To(Equal(config.BlockListing))
	})

	Describe("quote disambiguation", func() {
		It("classifies a plain quote as a quote", func() {
			node := &document.Node{Kind: document.KindQuote}
			Expect(classifier.Classify(node)).To(Equal(config.BlockQuote))
		})

		It("classifies a quote with an attribution as a verse", func() {
			node := &document.Node{
				Kind:       document.KindQuote,
				Attributes: map[string]string{"attribution": "Carl Sagan"},
			}
			Expect(classifier.Classify(node)).To(Equal(config.BlockVerse))
		})

		It("classifies a quote with a citation title as a verse", func() {
			node := &document.Node{
				Kind:       document.KindQuote,
				Attributes: map[string]string{"citetitle": "Cosmos"},
			}
			Expect(classifier.Classify(node)).To(Equal(config.BlockVerse))
		})

		It("classifies a verse-styled quote as a verse", func() {
			node := &document.Node{Kind: document.KindQuote, Style: "verse"}
			Expect(classifier.Classify(node)).To(Equal(config.BlockVerse))
		})
	})

	Describe("container disambiguation", func() {
		It("resolves a source-styled example to a listing", func() {
			node := &document.Node{Kind: document.KindExample, Style: "source"}
			Expect(classifier.Classify(node)).To(Equal(config.BlockListing))
		})

		It("resolves a verse-styled open block to a verse", func() {
			node := &document.Node{Kind: document.KindOpen, Style: "verse"}
			Expect(classifier.Classify(node)).To(Equal(config.BlockVerse))
		})

		It("resolves an image role on a sidebar to an image", func() {
			node := &document.Node{
				Kind:       document.KindSidebar,
				Attributes: map[string]string{"role": "centered image"},
			}
			Expect(classifier.Classify(node)).To(Equal(config.BlockImage))
		})

		It("gives up on an unstyled example block", func() {
			node := &document.Node{Kind: document.KindExample}
			Expect(classifier.Classify(node)).To(Equal(config.BlockUnknown))
		})
	})

	It("never panics on malformed node data", func() {
		nodes := []*document.Node{
			{},
			{Kind: document.KindQuote, Attributes: nil},
			{Kind: document.KindExample, Style: "", Attributes: map[string]string{}},
		}

		for _, node := range nodes {
			Expect(func() { classifier.Classify(node) }).NotTo(Panic())
		}
	})
})
