package main

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunConvert - Single page conversion
// ---------------------------------------------------------------------------

func TestRunConvert(t *testing.T) {
	t.Parallel()

	t.Run("default output next to input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "notes.md")
		writeFile(t, in, "# Notes\n\n- one\n- two\n")

		env, stdout, stderr := testEnv(nil)
		if code := runMain([]string{"sitegen", "convert", in}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d\nstderr: %s", code, stderr)
		}

		want := filepath.Join(dir, "notes.html")
		got := readFile(t, want)
		if !strings.Contains(got, "<ul><li>one</li><li>two</li></ul>") {
			t.Errorf("notes.html = %s", got)
		}
		if stdout.String() != "Created "+want+"\n" {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("stdout output with overrides", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "page.markdown")
		css := filepath.Join(dir, "extra.css")
		writeFile(t, in, "---\ndraft: true\n---\n\nplain `code` text\n")
		writeFile(t, css, "p { color: teal; }")

		env, stdout, stderr := testEnv(nil)
		args := []string{"sitegen", "convert", in, "-o", "-", "--title", "Custom", "--css", css, "--no-style"}
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d\nstderr: %s", code, stderr)
		}

		out := stdout.String()
		for _, want := range []string{"<title>Custom</title>", "<p>plain <code>code</code> text</p>", "p { color: teal; }"} {
			if !strings.Contains(out, want) {
				t.Errorf("stdout missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("explicit output creates parents", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "a.md")
		out := filepath.Join(dir, "site", "nested", "a.html")
		writeFile(t, in, "hello")

		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"sitegen", "convert", in, "-o", out, "-q"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d\nstderr: %s", code, stderr)
		}
		if got := readFile(t, out); !strings.Contains(got, "<p>hello</p>") {
			t.Errorf("a.html = %s", got)
		}
	})
}

func TestRunConvert_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.md")
	writeFile(t, good, "# ok")
	broken := filepath.Join(dir, "broken.md")
	writeFile(t, broken, "---\ntitle: x\n")
	txt := filepath.Join(dir, "notes.txt")
	writeFile(t, txt, "text")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"wrong extension", []string{txt}, ExitUsage, "must have .md or .markdown extension"},
		{"missing file", []string{filepath.Join(dir, "absent.md")}, ExitIO, "failed to read markdown file"},
		{"missing css", []string{good, "--css", filepath.Join(dir, "absent.css")}, ExitIO, "failed to read CSS file"},
		{"unterminated front matter", []string{broken, "-o", "-"}, ExitUsage, "hint: front matter"},
		{"two files", []string{good, good}, ExitUsage, "exactly one markdown file"},
		{"unknown template", []string{good, "--template", "fancy"}, ExitUsage, "hint: available: bare, page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv(nil)
			args := append([]string{"sitegen", "convert"}, tt.args...)
			if code := runMain(args, env); code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}
