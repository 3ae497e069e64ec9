package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed starfield.yaml
var defaultYAML []byte

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads a script from disk, falling back to the embedded scripts
// directory for bare names like "star_class.tengo".
func LoadScript(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(cleanScriptPath(name))
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "config/")
	if !strings.HasPrefix(s, "scripts/") {
		s = "scripts/" + s
	}
	return s
}
