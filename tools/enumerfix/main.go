// Package main rewrites enumer-generated files to report errors through
// cockroachdb/errors instead of fmt.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	minArgs         = 2
	filePermissions = 0o644
)

// ErrUsage indicates incorrect usage of the tool.
var ErrUsage = errors.New("usage: enumerfix <file> [file...]")

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run rewrites every named file in place.
func run(args []string) error {
	if len(args) < minArgs {
		return ErrUsage
	}

	for _, filename := range args[1:] {
		if err := fixFile(filename); err != nil {
			return err
		}
	}

	return nil
}

func fixFile(filename string) error {
	//nolint:gosec // G304: File path from CLI argument is expected
	content, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "reading %s", filename)
	}

	fixed := fixEnumerFile(content)

	if err := os.WriteFile(filename, fixed, filePermissions); err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}

	return nil
}

func fixEnumerFile(content []byte) []byte {
	result := string(content)

	result = strings.ReplaceAll(result, "fmt.Errorf", "errors.Newf")

	// String() still uses fmt.Sprintf, so fmt usually stays.
	fmtStillNeeded := strings.Contains(result, "fmt.Sprintf") ||
		strings.Contains(result, "fmt.Stringer") ||
		strings.Contains(result, "fmt.Fprintf") ||
		strings.Contains(result, "fmt.Printf")

	if fmtStillNeeded {
		result = addErrorsImport(result)
	} else {
		result = replaceImport(result, `"fmt"`, `"github.com/cockroachdb/errors"`)
	}

	return []byte(result)
}

func addErrorsImport(content string) string {
	importPattern := regexp.MustCompile(`import \(\n([\s\S]*?)\n\)`)
	match := importPattern.FindStringSubmatch(content)

	if match == nil {
		return content
	}

	imports := match[1]

	if strings.Contains(imports, `"github.com/cockroachdb/errors"`) {
		return content
	}

	newImports := imports + "\n\t\"github.com/cockroachdb/errors\""

	return importPattern.ReplaceAllString(content, "import (\n"+newImports+"\n)")
}

func replaceImport(content, oldImport, newImport string) string {
	singleImportPattern := regexp.MustCompile(`import ` + regexp.QuoteMeta(oldImport))
	if singleImportPattern.MatchString(content) {
		return singleImportPattern.ReplaceAllString(content, "import "+newImport)
	}

	return strings.Replace(content, "\t"+oldImport, "\t"+newImport, 1)
}
