package envstore

import (
	"fmt"
	"sort"
	"strings"
)

// ModeRaw prints the bare joined value, ready for `export PATH="$(...)"`.
const ModeRaw = "raw"

var supportedModes = map[string]struct{}{
	ModeRaw:      {},
	"bash":       {},
	"zsh":        {},
	"sh":         {},
	"fish":       {},
	"powershell": {},
}

// ModeIsValid reports whether s names a supported output mode.
func ModeIsValid(s string) bool {
	_, ok := supportedModes[s]
	return ok
}

// ModeNames returns the supported output modes in sorted order.
func ModeNames() []string {
	keys := make([]string, 0, len(supportedModes))
	for k := range supportedModes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type renderer func(variable string, entries []string, sep string) string

var renderers = map[string]renderer{
	ModeRaw:      renderRaw,
	"bash":       renderPosix,
	"zsh":        renderPosix,
	"sh":         renderPosix,
	"fish":       renderFish,
	"powershell": renderPwsh,
}

func renderRaw(_ string, entries []string, sep string) string {
	return strings.Join(entries, sep)
}

func renderPosix(variable string, entries []string, sep string) string {
	return fmt.Sprintf("export %s=\"%s\"", variable, escapeDouble(strings.Join(entries, sep), "\\\"$`"))
}

func renderFish(variable string, entries []string, _ string) string {
	quoted := make([]string, len(entries))
	for i, e := range entries {
		quoted[i] = "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(e) + "'"
	}
	return strings.TrimRight(fmt.Sprintf("set -gx %s %s", variable, strings.Join(quoted, " ")), " ")
}

func renderPwsh(variable string, entries []string, sep string) string {
	return fmt.Sprintf("$env:%s = \"%s\"", variable, escapePwsh(strings.Join(entries, sep)))
}

// escapeDouble backslash-escapes every rune of special inside a
// double-quoted POSIX shell string.
func escapeDouble(s, special string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(special, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// escapePwsh uses the backtick escape inside a double-quoted PowerShell string.
func escapePwsh(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '"' || r == '$' || r == '`' {
			b.WriteByte('`')
		}
		b.WriteRune(r)
	}
	return b.String()
}
