package pathlist

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func existsExcept(missing ...Entry) func(Entry) bool {
	return func(e Entry) bool {
		for _, m := range missing {
			if e == m {
				return false
			}
		}
		return true
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		list    List
		missing []Entry
		want    List
	}{
		{
			name:    "duplicates_and_missing",
			list:    list("/a", "/b", "/a", "/missing"),
			missing: []Entry{"/missing"},
			want:    list("/a", "/b"),
		},
		{
			name: "keeps_first_occurrence",
			list: list("/c", "/a", "/b", "/a", "/c"),
			want: list("/c", "/a", "/b"),
		},
		{
			name:    "missing_first_then_duplicate",
			list:    list("/gone", "/a", "/gone"),
			missing: []Entry{"/gone"},
			want:    list("/a"),
		},
		{
			name: "already_clean",
			list: list("/a", "/b", "/c"),
			want: list("/a", "/b", "/c"),
		},
		{
			name: "empty",
			list: List{},
			want: List{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.list, existsExcept(tt.missing...))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Clean(got, existsExcept(tt.missing...)), "clean must be idempotent")
		})
	}
}

func TestClean_NilPredicate(t *testing.T) {
	assert.Equal(t, list("/a", "/b"), Clean(list("/a", "/b", "/a"), nil))
	assert.Equal(t, list("/x", "/y"), Dedupe([]Entry{"/x", "/y", "/x", "/y"}))
}

func TestNormalize(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix path fixtures")
	}

	tests := []struct {
		name string
		raw  string
		cwd  string
		want Entry
	}{
		{"absolute", "/usr/bin", "/home/me", "/usr/bin"},
		{"trailing_separator", "/usr/local/bin/", "/home/me", "/usr/local/bin"},
		{"many_trailing_separators", "/opt/bin///", "/", "/opt/bin"},
		{"root", "/", "/home/me", "/"},
		{"relative", "bin", "/home/me", "/home/me/bin"},
		{"dot", ".", "/home/me/project", "/home/me/project"},
		{"parent", "../uptown", "/making/my/way/downtown", "/making/my/way/uptown"},
		{"nested_relative", "walking/fast/", "/making/my/way/downtown", "/making/my/way/downtown/walking/fast"},
		{"surrounding_space", "  /usr/bin  ", "/", "/usr/bin"},
		{"empty", "", "/home/me", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, tt.cwd))
		})
	}
}

func TestFromStrings(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix path fixtures")
	}
	got := FromStrings([]string{"/usr/bin/", "", "bin", "/bin"}, "/home/me")
	assert.Equal(t, list("/usr/bin", "/home/me/bin", "/bin"), got)
	assert.Equal(t, []string{"/usr/bin", "/home/me/bin", "/bin"}, got.Strings())
}

func TestClean_WithFilesystem(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	for _, d := range []string{a, b} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}

	exists := func(e Entry) bool {
		info, err := os.Stat(string(e))
		return err == nil && info.IsDir()
	}

	l := List{Entry(a), Entry(b), Entry(a), Entry(filepath.Join(root, "missing"))}
	assert.Equal(t, List{Entry(a), Entry(b)}, Clean(l, exists))
}
