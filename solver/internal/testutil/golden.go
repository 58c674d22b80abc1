// Package testutil provides shared test infrastructure for the Cobalt
// packages: golden log files and structural checks on rendered XML.
package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"
)

// LoadGolden reads testdata/<name> from the repository root.
// The path is resolved relative to this source file: solver/internal/testutil/ → testdata/.
func LoadGolden(t *testing.T, name string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden file %s: %v", name, err)
	}
	return string(data)
}

// CountOpenTags returns how many start tags named tag appear in doc.
func CountOpenTags(doc, tag string) int {
	re := regexp.MustCompile(`<` + regexp.QuoteMeta(tag) + `[\s>]`)
	return len(re.FindAllStringIndex(doc, -1))
}

// CountCloseTags returns how many end tags named tag appear in doc.
func CountCloseTags(doc, tag string) int {
	re := regexp.MustCompile(`</` + regexp.QuoteMeta(tag) + `>`)
	return len(re.FindAllStringIndex(doc, -1))
}

// AssertOpenedOnce fails the test unless each tag is opened and closed
// exactly once in doc.
func AssertOpenedOnce(t *testing.T, doc string, tags ...string) {
	t.Helper()
	for _, tag := range tags {
		if got := CountOpenTags(doc, tag); got != 1 {
			t.Errorf("<%s> opened %d times, want 1", tag, got)
		}
		if got := CountCloseTags(doc, tag); got != 1 {
			t.Errorf("</%s> closed %d times, want 1", tag, got)
		}
	}
}
