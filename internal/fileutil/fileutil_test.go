package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, []byte("# a"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", file, true},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "missing"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}

	if !DirExists(dir) || DirExists(file) {
		t.Error("DirExists() misreports directory vs file")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"site", false},
		{"my-site", false},
		{"./site.yaml", true},
		{"../shared/site.yaml", true},
		{"/etc/sitegen.yaml", true},
		{`C:\site.yaml`, true},
	}
	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	if !IsCSS("body { margin: 0 }") {
		t.Error("IsCSS(rule) = false, want true")
	}
	if IsCSS("default") || IsCSS("./theme.css") {
		t.Error("IsCSS(name or path) = true, want false")
	}
}

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"index.md", "index.html"},
		{"blog/post.markdown", "blog/post.html"},
		{"noext", "noext.html"},
	}
	for _, tt := range tests {
		if got := ReplaceExt(tt.in, ".html"); got != tt.want {
			t.Errorf("ReplaceExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "page.html")
	if err := WriteFileAtomic(path, []byte("<p>one</p>"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	if err := WriteFileAtomic(path, []byte("<p>two</p>"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<p>two</p>" {
		t.Errorf("content = %q, want %q", got, "<p>two</p>")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the page", len(entries))
	}
}

func TestResetDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "public")
	if err := os.MkdirAll(filepath.Join(dir, "old"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := ResetDir(dir); err != nil {
		t.Fatalf("ResetDir() error = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("ResetDir() left %d entries", len(entries))
	}
}

func TestCopyDir(t *testing.T) {
	t.Parallel()

	t.Run("copies tree", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		files := map[string]string{
			"index.css":        "body{}",
			"images/logo.png":  "png",
			"images/deep/x.js": "js",
		}
		for rel, content := range files {
			p := filepath.Join(src, filepath.FromSlash(rel))
			if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
		}

		dst := filepath.Join(t.TempDir(), "public")
		n, err := CopyDir(src, dst)
		if err != nil {
			t.Fatalf("CopyDir() error = %v", err)
		}
		if n != len(files) {
			t.Errorf("CopyDir() copied %d files, want %d", n, len(files))
		}

		got := map[string]string{}
		for rel := range files {
			b, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(rel)))
			if err != nil {
				t.Fatalf("reading copied %s: %v", rel, err)
			}
			got[rel] = string(b)
		}
		if diff := cmp.Diff(files, got); diff != "" {
			t.Errorf("copied content mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("source is a file", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "f")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := CopyDir(file, t.TempDir()); !errors.Is(err, ErrNotDirectory) {
			t.Errorf("CopyDir() error = %v, want ErrNotDirectory", err)
		}
	})

	t.Run("same directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if _, err := CopyDir(dir, dir); !errors.Is(err, ErrSameDir) {
			t.Errorf("CopyDir() error = %v, want ErrSameDir", err)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		if _, err := CopyDir(filepath.Join(t.TempDir(), "absent"), t.TempDir()); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("CopyDir() error = %v, want ErrNotExist", err)
		}
	})
}
