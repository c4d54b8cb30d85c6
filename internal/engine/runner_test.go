package engine_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/smykla-skalski/adoclint/internal/engine"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/document"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

var _ = Describe("Runner", func() {
	var (
		ctrl       *gomock.Controller
		mockParser *engine.MockParser
		validator  *engine.DocumentValidator
		log        *logger.NoOpLogger
		dir        string
	)

	writeDoc := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

		return path
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockParser = engine.NewMockParser(ctrl)
		log = logger.NewNoOpLogger()
		dir = GinkgoT().TempDir()

		cfg := &config.Config{
			Document: &config.DocumentConfig{
				Title: &config.TitleRule{Exact: "Guide"},
			},
		}
		Expect(cfg.Validate()).To(Succeed())

		validator = engine.New(cfg, log)
	})

	It("returns an empty result for no inputs", func() {
		runner := engine.NewRunner(validator, mockParser, log, 2)

		result := runner.Run(context.Background(), nil)

		Expect(result.Total()).To(BeZero())
	})

	It("merges per-document results in input order", func() {
		pathA := writeDoc("a.adoc", "= Guide\n")
		pathB := writeDoc("b.adoc", "= Wrong\n")

		mockParser.EXPECT().
			Parse(pathA, gomock.Any()).
			Return(&document.Node{Kind: document.KindDocument, Title: "Guide"}, nil)
		mockParser.EXPECT().
			Parse(pathB, gomock.Any()).
			Return(&document.Node{Kind: document.KindDocument, Title: "Wrong"}, nil)

		runner := engine.NewRunner(validator, mockParser, log, 2)

		result := runner.Run(context.Background(), []string{pathA, pathB})

		Expect(result.Total()).To(Equal(1))
		Expect(result.Messages()[0].Location.Path).To(Equal(pathB))
		Expect(result.Messages()[0].RuleID).To(Equal("document.title.match"))
	})

	It("reports unreadable files as findings instead of aborting", func() {
		missing := filepath.Join(dir, "missing.adoc")
		runner := engine.NewRunner(validator, mockParser, log, 1)

		result := runner.Run(context.Background(), []string{missing})

		Expect(result.Total()).To(Equal(1))
		Expect(result.Messages()[0].RuleID).To(Equal("document.read"))
		Expect(result.Messages()[0].Severity).To(Equal(config.SeverityError))
	})

	It("reports parse failures as findings", func() {
		path := writeDoc("broken.adoc", "= Guide\n")

		mockParser.EXPECT().
			Parse(path, gomock.Any()).
			Return(nil, os.ErrInvalid)

		runner := engine.NewRunner(validator, mockParser, log, 1)

		result := runner.Run(context.Background(), []string{path})

		Expect(result.Total()).To(Equal(1))
		Expect(result.Messages()[0].RuleID).To(Equal("document.parse"))
	})

	It("keeps findings from a bad file alongside good ones", func() {
		good := writeDoc("good.adoc", "= Guide\n")
		missing := filepath.Join(dir, "gone.adoc")

		mockParser.EXPECT().
			Parse(good, gomock.Any()).
			Return(&document.Node{Kind: document.KindDocument, Title: "Guide"}, nil)

		runner := engine.NewRunner(validator, mockParser, log, 4)

		result := runner.Run(context.Background(), []string{good, missing})

		Expect(result.Total()).To(Equal(1))
		Expect(result.Messages()[0].RuleID).To(Equal("document.read"))
	})
})
