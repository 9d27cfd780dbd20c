package main

// Notes:
// - Test infrastructure shared by the command tests: an injectable
//   Environment with captured output and a fixture site on disk.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Environment
// ---------------------------------------------------------------------------

// testEnv returns an Environment with a frozen clock, captured output and
// the given variables as its entire process environment.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	env := &Environment{
		Now:    func() time.Time { return now },
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, stdout, stderr
}

// ---------------------------------------------------------------------------
// Fixture Site
// ---------------------------------------------------------------------------

// testSite is a site layout under a temporary root.
type testSite struct {
	root    string
	content string
	static  string
	public  string
}

// newTestSite writes a small site: a home page, a post, a draft and one
// static file.
func newTestSite(t *testing.T) testSite {
	t.Helper()

	root := t.TempDir()
	s := testSite{
		root:    root,
		content: filepath.Join(root, "content"),
		static:  filepath.Join(root, "static"),
		public:  filepath.Join(root, "public"),
	}
	writeFile(t, filepath.Join(s.content, "index.md"), "# Home\n\nWelcome to **the** site.\n")
	writeFile(t, filepath.Join(s.content, "blog", "post.md"), "---\ntitle: First Post\n---\n\nSee [home](/index.html).\n")
	writeFile(t, filepath.Join(s.content, "blog", "draft.markdown"), "---\ndraft: true\n---\n\n# Not yet\n")
	writeFile(t, filepath.Join(s.static, "css", "site.css"), "body { margin: 0; }\n")
	return s
}

// buildArgs returns the argv of a build over the site with extra flags.
func (s testSite) buildArgs(extra ...string) []string {
	args := []string{"sitegen", "build", s.content, "-o", s.public, "--static", s.static, "--no-color"}
	return append(args, extra...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}
