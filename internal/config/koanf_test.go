package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/smykla-skalski/adoclint/internal/config"
	"github.com/smykla-skalski/adoclint/pkg/config"
)

func TestConfigLoading(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Loading Suite")
}

var _ = Describe("KoanfLoader", func() {
	var (
		dir    string
		loader *internalconfig.KoanfLoader
	)

	writeConfig := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

		return path
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		loader = internalconfig.NewKoanfLoaderWithDir(dir)
	})

	It("returns defaults when no config file exists", func() {
		cfg, err := loader.Load("", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output.Format).To(Equal("text"))
		Expect(cfg.Output.FailOn).To(Equal(config.SeverityError))
	})

	It("loads a project YAML file with severity strings", func() {
		writeConfig(".adoclint.yaml", `
document:
  title:
    exact: User Guide
  sections:
    - name: introduction
      severity: error
      occurrence:
        min: 1
        max: 1
  blocks:
    - type: listing
      severity: warning
      rules:
        language:
          allowed: [java, python]
output:
  fail_on: warning
`)

		cfg, err := loader.Load("", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Document.Title.Exact).To(Equal("User Guide"))
		Expect(cfg.Document.Sections).To(HaveLen(1))
		Expect(cfg.Document.Sections[0].Severity).To(Equal(config.SeverityError))
		Expect(cfg.Document.Blocks[0].Severity).To(Equal(config.SeverityWarning))
		Expect(cfg.Document.Blocks[0].Rules["language"].Allowed).
			To(Equal([]string{"java", "python"}))
		Expect(cfg.Output.FailOn).To(Equal(config.SeverityWarning))
	})

	It("loads an explicit JSON config file", func() {
		path := writeConfig("custom.json", `{
  "document": {
    "blocks": [
      {"type": "paragraph", "severity": "info"}
    ]
  }
}`)

		cfg, err := loader.Load(path, nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Document.Blocks[0].Severity).To(Equal(config.SeverityInfo))
	})

	It("fails for a missing explicit config file", func() {
		_, err := loader.Load(filepath.Join(dir, "nope.yaml"), nil)

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, internalconfig.ErrConfigNotFound)).To(BeTrue())
	})

	It("rejects unsupported config formats", func() {
		path := writeConfig("config.toml", "x = 1\n")

		_, err := loader.Load(path, nil)

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, internalconfig.ErrUnsupportedFormat)).To(BeTrue())
	})

	It("lets CLI flags override the file", func() {
		writeConfig(".adoclint.yaml", "output:\n  format: text\n")

		cfg, err := loader.Load("", map[string]any{"format": "json", "fail-on": "info"})

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output.Format).To(Equal("json"))
		Expect(cfg.Output.FailOn).To(Equal(config.SeverityInfo))
	})

	It("applies ADOCLINT_ environment overrides", func() {
		GinkgoT().Setenv("ADOCLINT_OUTPUT_FORMAT", "json")

		cfg, err := loader.Load("", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output.Format).To(Equal("json"))
	})

	It("fails at load time for a rule without severity", func() {
		writeConfig(".adoclint.yaml", `
document:
  blocks:
    - type: listing
`)

		_, err := loader.Load("", nil)

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, config.ErrMissingSeverity)).To(BeTrue())
	})

	It("fails at load time for an invalid pattern", func() {
		writeConfig(".adoclint.yaml", `
document:
  blocks:
    - type: listing
      severity: error
      rules:
        language:
          pattern: "["
`)

		_, err := loader.Load("", nil)

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, config.ErrInvalidPattern)).To(BeTrue())
	})

	It("fails for an unknown output format", func() {
		writeConfig(".adoclint.yaml", "output:\n  format: xml\n")

		_, err := loader.Load("", nil)

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, internalconfig.ErrInvalidFormat)).To(BeTrue())
	})

	It("reports project config presence", func() {
		Expect(loader.HasProjectConfig()).To(BeFalse())

		writeConfig("adoclint.yaml", "output:\n  format: text\n")

		Expect(loader.HasProjectConfig()).To(BeTrue())
	})
})
