package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default.yaml
var defaultYAML []byte

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads a script from disk, falling back to the scripts built
// into the binary.
func LoadScript(path string) ([]byte, error) {
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(cleanScriptPath(path))
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	if i := strings.LastIndex(s, "scripts/"); i >= 0 {
		return s[i:]
	}
	return "scripts/" + s
}
