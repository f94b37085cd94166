package formatters_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/hookguard/hookguard/internal/exec"
	"github.com/hookguard/hookguard/internal/formatters"
)

func TestFormatters(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Formatters Suite")
}

var _ = Describe("BlackFormatter", func() {
	var (
		ctrl    *gomock.Controller
		runner  *exec.MockCommandRunner
		checker *exec.MockToolChecker
		f       *formatters.BlackFormatter
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		runner = exec.NewMockCommandRunner(ctrl)
		checker = exec.NewMockToolChecker(ctrl)
		f = formatters.NewBlackFormatter(runner, checker, "")
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("CanFormat", func() {
		It("accepts Python files", func() {
			Expect(f.CanFormat("script.py")).To(BeTrue())
		})

		It("rejects other files", func() {
			Expect(f.CanFormat("main.go")).To(BeFalse())
			Expect(f.CanFormat("app.js")).To(BeFalse())
		})
	})

	Describe("Format", func() {
		It("runs black on the file", func() {
			checker.EXPECT().IsAvailable("black").Return(true)
			runner.EXPECT().
				RunWithTimeout(10*time.Second, "black", "script.py").
				Return(&exec.CommandResult{Stdout: "reformatted script.py\n"})

			result := f.Format("script.py", 10*time.Second)

			Expect(result.Formatted).To(BeTrue())
			Expect(result.Succeeded()).To(BeTrue())
			Expect(result.RawOut).To(ContainSubstring("reformatted"))
		})

		It("skips when black is not installed", func() {
			checker.EXPECT().IsAvailable("black").Return(false)

			result := f.Format("script.py", 10*time.Second)

			Expect(result.Skipped).To(BeTrue())
			Expect(result.SkipReason).To(ContainSubstring("not found"))
		})

		It("reports tool failures without succeeding", func() {
			checker.EXPECT().IsAvailable("black").Return(true)
			runner.EXPECT().
				RunWithTimeout(gomock.Any(), "black", "broken.py").
				Return(&exec.CommandResult{
					Stderr:   "error: cannot format broken.py\n",
					ExitCode: 123,
					Err:      assertError{},
				})

			result := f.Format("broken.py", 10*time.Second)

			Expect(result.Succeeded()).To(BeFalse())
			Expect(result.Err).To(HaveOccurred())
		})

		It("uses a custom binary path", func() {
			custom := formatters.NewBlackFormatter(runner, checker, "/opt/black")
			checker.EXPECT().IsAvailable("/opt/black").Return(true)
			runner.EXPECT().
				RunWithTimeout(gomock.Any(), "/opt/black", "a.py").
				Return(&exec.CommandResult{})

			result := custom.Format("a.py", time.Second)
			Expect(result.Formatted).To(BeTrue())
		})
	})
})

var _ = Describe("PrettierFormatter", func() {
	var (
		ctrl    *gomock.Controller
		runner  *exec.MockCommandRunner
		checker *exec.MockToolChecker
		f       *formatters.PrettierFormatter
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		runner = exec.NewMockCommandRunner(ctrl)
		checker = exec.NewMockToolChecker(ctrl)
		f = formatters.NewPrettierFormatter(runner, checker, "")
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("CanFormat", func() {
		It("accepts JavaScript and TypeScript files", func() {
			Expect(f.CanFormat("app.js")).To(BeTrue())
			Expect(f.CanFormat("app.ts")).To(BeTrue())
			Expect(f.CanFormat("App.jsx")).To(BeTrue())
			Expect(f.CanFormat("App.tsx")).To(BeTrue())
		})

		It("rejects other files", func() {
			Expect(f.CanFormat("script.py")).To(BeFalse())
			Expect(f.CanFormat("style.css")).To(BeFalse())
		})
	})

	Describe("Format", func() {
		It("runs prettier --write on the file", func() {
			checker.EXPECT().IsAvailable("prettier").Return(true)
			runner.EXPECT().
				RunWithTimeout(10*time.Second, "prettier", "--write", "app.js").
				Return(&exec.CommandResult{Stdout: "app.js 12ms\n"})

			result := f.Format("app.js", 10*time.Second)

			Expect(result.Succeeded()).To(BeTrue())
		})

		It("skips when prettier is not installed", func() {
			checker.EXPECT().IsAvailable("prettier").Return(false)

			result := f.Format("app.js", 10*time.Second)

			Expect(result.Skipped).To(BeTrue())
		})
	})
})

type assertError struct{}

func (assertError) Error() string { return "exit status 123" }
