package schema_test

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/adoclint/internal/schema"
)

func TestSchema(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Schema Suite")
}

var _ = Describe("Generate", func() {
	It("produces a 2020-12 schema with the top-level properties", func() {
		s := schema.Generate()

		Expect(s.Version).To(Equal("https://json-schema.org/draft/2020-12/schema"))
		Expect(s.Title).To(Equal("adoclint configuration"))

		_, hasDocument := s.Properties.Get("document")
		Expect(hasDocument).To(BeTrue())

		_, hasOutput := s.Properties.Get("output")
		Expect(hasOutput).To(BeTrue())
	})
})

var _ = Describe("GenerateJSON", func() {
	It("emits valid JSON ending with a newline", func() {
		data, err := schema.GenerateJSON(true)

		Expect(err).NotTo(HaveOccurred())
		Expect(data[len(data)-1]).To(Equal(byte('\n')))

		var decoded map[string]any
		Expect(json.Unmarshal(data, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKey("$schema"))
	})

	It("emits compact output without indentation", func() {
		data, err := schema.GenerateJSON(false)

		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).NotTo(ContainSubstring("\n  "))
	})
})

var _ = Describe("Filename", func() {
	It("is stable", func() {
		Expect(schema.Filename()).To(Equal("adoclint.schema.json"))
	})
})
