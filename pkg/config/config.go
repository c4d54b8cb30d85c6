package config

// Config is the root of the rule configuration tree. Immutable after
// loading; shared read-only across all validation runs.
type Config struct {
	// Document holds the structural rules for validated documents.
	Document *DocumentConfig `json:"document,omitempty" koanf:"document" yaml:"document,omitempty"`

	// Output configures reporting.
	Output *OutputConfig `json:"output,omitempty" koanf:"output" yaml:"output,omitempty"`
}

// DocumentConfig mirrors the expected document structure: header attributes,
// preamble blocks, and the section tree.
type DocumentConfig struct {
	// Title matches the document title. Optional.
	Title *TitleRule `json:"title,omitempty" koanf:"title" yaml:"title,omitempty"`

	// Attributes are rules for document-header attributes.
	Attributes []*AttributeConfig `json:"attributes,omitempty" koanf:"attributes" yaml:"attributes,omitempty"`

	// Blocks are rules for blocks outside any section (the preamble).
	Blocks []*BlockConfig `json:"blocks,omitempty" koanf:"blocks" yaml:"blocks,omitempty"`

	// Sections is the expected top-level section tree.
	Sections []*SectionConfig `json:"sections,omitempty" koanf:"sections" yaml:"sections,omitempty"`
}

// OutputConfig configures the report format and failure threshold.
type OutputConfig struct {
	// Format selects the reporter: "text" (default) or "json".
	Format string `json:"format,omitempty" koanf:"format" yaml:"format,omitempty"`

	// FailOn is the minimum severity that causes a non-zero exit code.
	// Defaults to error.
	FailOn Severity `json:"fail_on,omitempty" koanf:"fail_on" yaml:"fail_on,omitempty"`
}

// FailThreshold returns the configured failure threshold, defaulting to
// SeverityError.
func (o *OutputConfig) FailThreshold() Severity {
	if o == nil || o.FailOn == SeverityUnknown {
		return SeverityError
	}

	return o.FailOn
}

// Validate checks the whole configuration tree at load time. Any error here
// aborts the run before a document is touched.
func (c *Config) Validate() error {
	if c.Document == nil {
		return nil
	}

	if err := c.Document.Title.Validate(); err != nil {
		return err
	}

	for _, attr := range c.Document.Attributes {
		if err := attr.Validate(); err != nil {
			return err
		}
	}

	for _, block := range c.Document.Blocks {
		if err := block.Validate(); err != nil {
			return err
		}
	}

	for _, section := range c.Document.Sections {
		if err := section.Validate(1); err != nil {
			return err
		}
	}

	return nil
}
