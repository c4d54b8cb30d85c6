package color_test

import (
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/adoclint/internal/color"
	"github.com/smykla-skalski/adoclint/pkg/config"
)

func TestColor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Color Suite")
}

var _ = Describe("Profile", func() {
	BeforeEach(func() {
		// Setenv registers the restore; NO_COLOR must then be unset because
		// an empty value still disables color.
		GinkgoT().Setenv("NO_COLOR", "")
		Expect(os.Unsetenv("NO_COLOR")).To(Succeed())

		GinkgoT().Setenv("CLICOLOR", "1")
		GinkgoT().Setenv("TERM", "xterm-256color")
	})

	It("enables color by default", func() {
		Expect(color.Profile(false)).To(BeTrue())
	})

	It("disables color when the flag is set", func() {
		Expect(color.Profile(true)).To(BeFalse())
	})

	It("disables color when NO_COLOR is set to any value", func() {
		GinkgoT().Setenv("NO_COLOR", "1")

		Expect(color.Profile(false)).To(BeFalse())
	})

	It("disables color when CLICOLOR=0", func() {
		GinkgoT().Setenv("CLICOLOR", "0")

		Expect(color.Profile(false)).To(BeFalse())
	})

	It("disables color for dumb terminals", func() {
		GinkgoT().Setenv("TERM", "dumb")

		Expect(color.Profile(false)).To(BeFalse())
	})
})

var _ = Describe("Theme", func() {
	It("renders plain text without color", func() {
		theme := color.NewTheme(false)

		Expect(theme.Error.Render("boom")).To(Equal("boom"))
		Expect(theme.Location.Render("a.adoc:1:")).To(Equal("a.adoc:1:"))
	})

	It("maps severities to their styles", func() {
		theme := color.NewTheme(true)

		Expect(theme.SeverityStyle(config.SeverityError)).To(Equal(theme.Error))
		Expect(theme.SeverityStyle(config.SeverityWarning)).To(Equal(theme.Warning))
		Expect(theme.SeverityStyle(config.SeverityInfo)).To(Equal(theme.Info))
	})
})
