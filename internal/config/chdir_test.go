package config

import (
	"os"
	"testing"
)

// chdirForTest changes the working directory to dir and restores it when the
// test ends; equivalent to testing.T.Chdir, which requires Go 1.24.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir: %v", err)
		}
	})
}
