package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// domkitBin builds the CLI once per test run and returns its path.
func domkitBin(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "domkit-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "domkit")
		cmd := exec.Command("go", "build", "-o", binPath, "../../cmd/domkit")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("build output: %s", out)
		}
	})
	if buildErr != nil {
		t.Fatalf("Failed to build domkit: %v", buildErr)
	}
	return binPath
}

// run executes the CLI and returns trimmed stdout, failing on error.
func run(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runErr(t, args...)
	if err != nil {
		t.Fatalf("domkit %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

// runErr executes the CLI and returns trimmed combined output and error.
func runErr(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(domkitBin(t), args...)
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
