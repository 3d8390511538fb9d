package envstore

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathed/internal/errors"
	"pathed/internal/pathlist"
)

func newTestStore(t *testing.T, path, mode string) (*EnvStore, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	plain := false
	s, err := New(Options{
		Mode:      mode,
		Separator: ":",
		Getenv: func(key string) string {
			if key == "PATH" {
				return path
			}
			return ""
		},
		Stdout: &stdout,
		Stderr: &stderr,
		Styled: &plain,
	})
	require.NoError(t, err)
	return s, &stdout, &stderr
}

func TestRead(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix path fixtures")
	}
	s, _, _ := newTestStore(t, "/usr/local/bin/:/usr/bin::bin:/bin", "")

	got := s.Read("/home/me")
	assert.Equal(t, pathlist.List{"/usr/local/bin", "/usr/bin", "/home/me/bin", "/bin"}, got)
}

func TestRead_Empty(t *testing.T) {
	s, _, _ := newTestStore(t, "", "")
	assert.Empty(t, s.Read("/"))
}

func TestWrite_Modes(t *testing.T) {
	list := pathlist.List{"/usr/local/bin", "/usr/bin"}

	tests := []struct {
		mode string
		want string
	}{
		{"", "/usr/local/bin:/usr/bin\n"},
		{"raw", "/usr/local/bin:/usr/bin\n"},
		{"bash", "export PATH=\"/usr/local/bin:/usr/bin\"\n"},
		{"zsh", "export PATH=\"/usr/local/bin:/usr/bin\"\n"},
		{"sh", "export PATH=\"/usr/local/bin:/usr/bin\"\n"},
		{"fish", "set -gx PATH '/usr/local/bin' '/usr/bin'\n"},
		{"powershell", "$env:PATH = \"/usr/local/bin:/usr/bin\"\n"},
		{"BASH", "export PATH=\"/usr/local/bin:/usr/bin\"\n"},
	}

	for _, tt := range tests {
		t.Run("mode_"+tt.mode, func(t *testing.T) {
			s, stdout, stderr := newTestStore(t, "/bin", tt.mode)
			require.NoError(t, s.Write(list, false))
			assert.Equal(t, tt.want, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestWrite_Escaping(t *testing.T) {
	list := pathlist.List{`/opt/my "tools"/bin`, "/opt/$HOME/bin"}

	s, stdout, _ := newTestStore(t, "", "bash")
	require.NoError(t, s.Write(list, false))
	assert.Equal(t, "export PATH=\"/opt/my \\\"tools\\\"/bin:/opt/\\$HOME/bin\"\n", stdout.String())

	s, stdout, _ = newTestStore(t, "", "powershell")
	require.NoError(t, s.Write(list, false))
	assert.Equal(t, "$env:PATH = \"/opt/my `\"tools`\"/bin:/opt/`$HOME/bin\"\n", stdout.String())

	s, stdout, _ = newTestStore(t, "", "fish")
	require.NoError(t, s.Write(pathlist.List{"/it's/bin"}, false))
	assert.Equal(t, "set -gx PATH '/it\\'s/bin'\n", stdout.String())
}

func TestWrite_DryRun(t *testing.T) {
	s, stdout, stderr := newTestStore(t, "/usr/bin:/bin", "bash")

	require.NoError(t, s.Write(pathlist.List{"/bin", "/usr/bin"}, true))
	assert.Empty(t, stdout.String())
	assert.Equal(t,
		"PATH before modification:\n\t/usr/bin:/bin\nPATH after modification:\n\t/bin:/usr/bin\n",
		stderr.String())
}

func TestEcho(t *testing.T) {
	s, stdout, _ := newTestStore(t, "/usr/bin/:/bin", "")
	require.NoError(t, s.Echo())
	assert.Equal(t, "/usr/bin/:/bin\n", stdout.String())

	s, stdout, _ = newTestStore(t, "/usr/bin:/bin", "fish")
	require.NoError(t, s.Echo())
	assert.Equal(t, "set -gx PATH '/usr/bin' '/bin'\n", stdout.String())
}

func TestNew_InvalidMode(t *testing.T) {
	_, err := New(Options{Mode: "tcsh"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "tcsh")
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("PATH", "/from/env")
	s, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, "/from/env", s.Raw())
	assert.Equal(t, string(os.PathListSeparator), s.sep)
	assert.Equal(t, ModeRaw, s.mode)
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, []string{"bash", "fish", "powershell", "raw", "sh", "zsh"}, ModeNames())
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, Exists(pathlist.Entry(dir)))
	assert.False(t, Exists(pathlist.Entry(file)))
	assert.False(t, Exists(pathlist.Entry(filepath.Join(dir, "missing"))))
}
