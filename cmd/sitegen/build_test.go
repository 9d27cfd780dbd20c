package main

// Notes:
// - runBuild: end to end over a fixture site in t.TempDir, through runMain
//   so exit codes are covered too.
// - buildPages: tested with a fake converter for ordering, draft handling
//   and cancellation.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	sitegen "github.com/haploeco/bdd-static-site-generator"
)

// ---------------------------------------------------------------------------
// TestRunBuild - Site generation
// ---------------------------------------------------------------------------

func TestRunBuild(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	writeFile(t, filepath.Join(s.public, "stale.html"), "old")

	env, stdout, stderr := testEnv(nil)
	if code := runMain(s.buildArgs(), env); code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, ExitSuccess, stderr)
	}

	home := readFile(t, filepath.Join(s.public, "index.html"))
	for _, want := range []string{"<title>Home</title>", "<h1>Home</h1>", "<b>the</b>", "<style>"} {
		if !strings.Contains(home, want) {
			t.Errorf("index.html missing %q:\n%s", want, home)
		}
	}

	post := readFile(t, filepath.Join(s.public, "blog", "post.html"))
	if !strings.Contains(post, "<title>First Post</title>") {
		t.Errorf("post.html missing front matter title:\n%s", post)
	}

	if got := readFile(t, filepath.Join(s.public, "css", "site.css")); got != "body { margin: 0; }\n" {
		t.Errorf("static file = %q", got)
	}
	for _, gone := range []string{"stale.html", filepath.Join("blog", "draft.html")} {
		if _, err := os.Stat(filepath.Join(s.public, gone)); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s should not exist, stat error = %v", gone, err)
		}
	}

	out := stdout.String()
	for _, want := range []string{
		"Created " + filepath.Join(s.public, "index.html"),
		"Skipped " + filepath.Join(s.content, "blog", "draft.markdown") + " (draft)",
		"2 succeeded, 0 failed, 1 draft(s) skipped",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
}

func TestRunBuild_Drafts(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	env, stdout, stderr := testEnv(nil)
	if code := runMain(s.buildArgs("--drafts", "-q"), env); code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, stderr)
	}

	draft := readFile(t, filepath.Join(s.public, "blog", "draft.html"))
	if !strings.Contains(draft, "<h1>Not yet</h1>") {
		t.Errorf("draft.html = %s", draft)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet build wrote %q", stdout)
	}
}

func TestRunBuild_Config(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	cfgPath := filepath.Join(s.root, "site.yaml")
	writeFile(t, cfgPath, `
site:
  title: My Site
  description: Notes and posts
  basePath: /docs
input:
  contentDir: `+s.content+`
  staticDir: `+s.static+`
output:
  publicDir: `+s.public+`
render:
  style: minimal
build:
  workers: 2
`)

	env, _, stderr := testEnv(nil)
	if code := runMain([]string{"sitegen", "build", "-c", cfgPath, "--no-color"}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, stderr)
	}

	post := readFile(t, filepath.Join(s.public, "blog", "post.html"))
	for _, want := range []string{
		"<title>First Post | My Site</title>",
		`content="Notes and posts"`,
		`href="/docs/index.html"`,
	} {
		if !strings.Contains(post, want) {
			t.Errorf("post.html missing %q:\n%s", want, post)
		}
	}
}

func TestRunBuild_EnvOverridesConfig(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	other := filepath.Join(s.root, "elsewhere")
	env, _, stderr := testEnv(map[string]string{
		"SITEGEN_CONTENT_DIR": s.content,
		"SITEGEN_PUBLIC_DIR":  other,
		"SITEGEN_TYPO":        "1",
	})

	if code := runMain([]string{"sitegen", "build", "--static", s.static, "-q"}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(other, "index.html")); err != nil {
		t.Errorf("page not written to SITEGEN_PUBLIC_DIR: %v", err)
	}
	if !strings.Contains(stderr.String(), "unknown environment variable SITEGEN_TYPO") {
		t.Errorf("stderr = %q, want a typo warning", stderr)
	}
}

func TestRunBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      func(t *testing.T, s testSite) []string
		wantCode   int
		wantStderr []string
	}{
		{
			name: "markdown syntax error",
			setup: func(t *testing.T, s testSite) []string {
				writeFile(t, filepath.Join(s.content, "broken.md"), "this is **broken\n")
				return s.buildArgs()
			},
			wantCode:   ExitUsage,
			wantStderr: []string{"FAILED ", "unclosed delimiter", "hint:", "1 page(s) failed"},
		},
		{
			name: "no pages",
			setup: func(t *testing.T, s testSite) []string {
				empty := filepath.Join(s.root, "empty")
				if err := os.MkdirAll(empty, 0o755); err != nil {
					t.Fatal(err)
				}
				return []string{"sitegen", "build", empty, "-o", s.public}
			},
			wantCode:   ExitIO,
			wantStderr: []string{"no markdown files found"},
		},
		{
			name: "missing content dir",
			setup: func(t *testing.T, s testSite) []string {
				return []string{"sitegen", "build", filepath.Join(s.root, "absent"), "-o", s.public}
			},
			wantCode: ExitIO,
		},
		{
			name: "public dir contains content",
			setup: func(t *testing.T, s testSite) []string {
				return []string{"sitegen", "build", s.content, "-o", s.root}
			},
			wantCode:   ExitUsage,
			wantStderr: []string{"overlaps the sources"},
		},
		{
			name: "negative workers",
			setup: func(t *testing.T, s testSite) []string {
				return s.buildArgs("-w", "-1")
			},
			wantCode:   ExitUsage,
			wantStderr: []string{"invalid worker count"},
		},
		{
			name: "negative timeout",
			setup: func(t *testing.T, s testSite) []string {
				return s.buildArgs("--timeout", "-1s")
			},
			wantCode:   ExitUsage,
			wantStderr: []string{"invalid timeout"},
		},
		{
			name: "unknown engine",
			setup: func(t *testing.T, s testSite) []string {
				return s.buildArgs("--engine", "blackfriday")
			},
			wantCode:   ExitUsage,
			wantStderr: []string{"render.engine"},
		},
		{
			name: "unknown style",
			setup: func(t *testing.T, s testSite) []string {
				return s.buildArgs("--style", "neon")
			},
			wantCode:   ExitUsage,
			wantStderr: []string{"hint: available: default, minimal"},
		},
		{
			name: "config name not found",
			setup: func(t *testing.T, s testSite) []string {
				return s.buildArgs("-c", "no-such-sitegen-config-xyz")
			},
			wantCode:   ExitUsage,
			wantStderr: []string{"config file not found", "hint: use --config"},
		},
		{
			name: "too many arguments",
			setup: func(t *testing.T, s testSite) []string {
				return []string{"sitegen", "build", s.content, s.static}
			},
			wantCode:   ExitUsage,
			wantStderr: []string{"at most one content directory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSite(t)
			args := tt.setup(t, s)

			env, _, stderr := testEnv(nil)
			if code := runMain(args, env); code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr)
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr missing %q:\n%s", want, stderr)
				}
			}
		})
	}
}

func TestRunBuild_KeepsSourcesOnUnsafeOutput(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	env, _, _ := testEnv(nil)
	runMain([]string{"sitegen", "build", s.content, "-o", s.content}, env)

	if _, err := os.Stat(filepath.Join(s.content, "index.md")); err != nil {
		t.Errorf("content was removed: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestBuildPages - Worker fan-out
// ---------------------------------------------------------------------------

// fakeConverter returns a page per call, failing for inputs containing
// "fail" and marking inputs containing "draft" as drafts.
type fakeConverter struct {
	calls atomic.Int32
}

func (f *fakeConverter) Convert(_ context.Context, input sitegen.Input) (*sitegen.Result, error) {
	f.calls.Add(1)
	if strings.Contains(input.Markdown, "fail") {
		return nil, sitegen.ErrUnclosedDelimiter
	}
	return &sitegen.Result{
		HTML:        "<p>" + input.Markdown + "</p>",
		FrontMatter: sitegen.FrontMatter{Draft: strings.Contains(input.Markdown, "draft")},
	}, nil
}

func TestBuildPages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var pages []page
	for _, name := range []string{"a", "fail", "draft", "b"} {
		in := filepath.Join(dir, "in", name+".md")
		writeFile(t, in, name)
		pages = append(pages, page{InputPath: in, OutputPath: filepath.Join(dir, "out", name+".html")})
	}
	pages = append(pages, page{InputPath: filepath.Join(dir, "in", "missing.md"), OutputPath: filepath.Join(dir, "out", "missing.html")})

	env, _, _ := testEnv(nil)
	conv := &fakeConverter{}
	results := buildPages(context.Background(), conv, pages, 2, false, env)

	type outcome struct {
		Input   string
		Skipped bool
		Failed  bool
	}
	var got []outcome
	for _, r := range results {
		got = append(got, outcome{filepath.Base(r.InputPath), r.Skipped, r.Err != nil})
	}
	want := []outcome{
		{"a.md", false, false},
		{"fail.md", false, true},
		{"draft.md", true, false},
		{"b.md", false, false},
		{"missing.md", false, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}

	if !errors.Is(results[1].Err, sitegen.ErrUnclosedDelimiter) {
		t.Errorf("fail.md error = %v", results[1].Err)
	}
	if !errors.Is(results[4].Err, ErrReadMarkdown) {
		t.Errorf("missing.md error = %v, want ErrReadMarkdown", results[4].Err)
	}
	if got := readFile(t, filepath.Join(dir, "out", "b.html")); got != "<p>b</p>" {
		t.Errorf("b.html = %q", got)
	}
	if n := conv.calls.Load(); n != 4 {
		t.Errorf("Convert called %d times, want 4", n)
	}
}

func TestBuildPages_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env, _, _ := testEnv(nil)
	conv := &fakeConverter{}
	pages := []page{{InputPath: "a.md", OutputPath: "a.html"}, {InputPath: "b.md", OutputPath: "b.html"}}

	for _, r := range buildPages(ctx, conv, pages, 1, false, env) {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s error = %v, want context.Canceled", r.InputPath, r.Err)
		}
	}
	if n := conv.calls.Load(); n != 0 {
		t.Errorf("Convert called %d times after cancel", n)
	}
}

// ---------------------------------------------------------------------------
// TestBuildError - Aggregated failures
// ---------------------------------------------------------------------------

func TestBuildError(t *testing.T) {
	t.Parallel()

	err := error(&buildError{failed: 2, errs: []error{
		sitegen.ErrFrontMatter,
		ErrReadMarkdown,
	}})

	if err.Error() != "2 page(s) failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, sitegen.ErrFrontMatter) || !errors.Is(err, ErrReadMarkdown) {
		t.Error("page errors not reachable through errors.Is")
	}
	if hintFor(err) != "" {
		t.Errorf("hintFor(buildError) = %q, want none", hintFor(err))
	}
}
