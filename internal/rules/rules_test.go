package rules_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/adoclint/internal/rules"
	"github.com/smykla-skalski/adoclint/pkg/config"
)

func TestRules(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rules Suite")
}

func intPtr(v int) *int { return &v }

var _ = Describe("Required", func() {
	It("passes when the value is present", func() {
		Expect(rules.Required(true, "language")).To(BeNil())
	})

	It("flags an absent value", func() {
		v := rules.Required(false, "language")
		Expect(v).NotTo(BeNil())
		Expect(v.Constraint).To(Equal("required"))
		Expect(v.Detail).To(ContainSubstring("language"))
	})
})

var _ = Describe("Forbidden", func() {
	It("passes when the value is absent", func() {
		Expect(rules.Forbidden(false, "icon")).To(BeNil())
	})

	It("flags a present value", func() {
		v := rules.Forbidden(true, "icon")
		Expect(v).NotTo(BeNil())
		Expect(v.Constraint).To(Equal("forbidden"))
	})
})

var _ = Describe("Pattern", func() {
	spec := func(pattern string) *config.RuleSpec {
		s := &config.RuleSpec{Pattern: pattern}
		Expect(s.Compile()).To(Succeed())

		return s
	}

	It("matches the whole value, not a substring", func() {
		s := spec(`^[A-Z].*`)

		Expect(rules.Pattern(s, "Title", true, "title")).To(BeNil())
		Expect(rules.Pattern(s, "a Title", true, "title")).NotTo(BeNil())

		// "xTitle" contains an uppercase-led substring but does not match
		// in full.
		Expect(rules.Pattern(s, "xTitle", true, "title")).NotTo(BeNil())
	})

	It("skips absent values", func() {
		s := spec(`\d+`)
		Expect(rules.Pattern(s, "", false, "width")).To(BeNil())
	})

	It("reports the value and the pattern", func() {
		s := spec(`v\d+`)
		v := rules.Pattern(s, "draft", true, "version")
		Expect(v).NotTo(BeNil())
		Expect(v.Actual).To(Equal("draft"))
		Expect(v.Expected).To(Equal(`v\d+`))
	})
})

var _ = Describe("Length", func() {
	It("counts code points, not bytes", func() {
		// Four runes, more than four bytes.
		v := rules.Length("żółw", true, nil, intPtr(4), "title")
		Expect(v).To(BeNil())
	})

	It("flags values below the minimum", func() {
		v := rules.Length("ab", true, intPtr(3), nil, "title")
		Expect(v).NotTo(BeNil())
		Expect(v.Constraint).To(Equal("minLength"))
		Expect(v.Actual).To(Equal("2"))
	})

	It("flags values above the maximum", func() {
		v := rules.Length("abcdef", true, nil, intPtr(3), "title")
		Expect(v).NotTo(BeNil())
		Expect(v.Constraint).To(Equal("maxLength"))
	})

	It("skips absent values", func() {
		Expect(rules.Length("", false, intPtr(1), nil, "title")).To(BeNil())
	})
})

var _ = Describe("Range", func() {
	It("separates min and max violations", func() {
		low := rules.Range(1, intPtr(2), true, "columns")
		Expect(low.Constraint).To(Equal("min"))

		high := rules.Range(9, intPtr(5), false, "columns")
		Expect(high.Constraint).To(Equal("max"))
	})

	It("accepts values on the bound", func() {
		Expect(rules.Range(2, intPtr(2), true, "columns")).To(BeNil())
		Expect(rules.Range(5, intPtr(5), false, "columns")).To(BeNil())
	})

	It("passes with no bound", func() {
		Expect(rules.Range(99, nil, false, "columns")).To(BeNil())
	})
})

var _ = Describe("Allowed", func() {
	It("accepts a value in the set", func() {
		Expect(rules.Allowed("ruby", true, []string{"ruby", "python"}, "language")).To(BeNil())
	})

	It("rejects a value outside the set", func() {
		v := rules.Allowed("perl", true, []string{"ruby", "python"}, "language")
		Expect(v).NotTo(BeNil())
		Expect(v.Constraint).To(Equal("allowed"))
		Expect(v.Actual).To(Equal("perl"))
		Expect(v.Expected).To(Equal("one of [ruby, python]"))
	})

	It("is case-sensitive", func() {
		Expect(rules.Allowed("Ruby", true, []string{"ruby"}, "language")).NotTo(BeNil())
	})
})

var _ = Describe("Contains and Excludes", func() {
	It("reports one violation per missing flag", func() {
		vs := rules.Contains(
			[]string{"loop"},
			[]string{"autoplay", "muted"},
			"options",
		)
		Expect(vs).To(HaveLen(2))
	})

	It("reports one violation per forbidden flag", func() {
		vs := rules.Excludes(
			[]string{"autoplay", "loop"},
			[]string{"autoplay"},
			"options",
		)
		Expect(vs).To(HaveLen(1))
		Expect(vs[0].Actual).To(Equal("autoplay"))
	})

	It("passes on satisfied sets", func() {
		Expect(rules.Contains([]string{"loop"}, []string{"loop"}, "options")).To(BeEmpty())
		Expect(rules.Excludes([]string{"loop"}, []string{"autoplay"}, "options")).To(BeEmpty())
	})
})
