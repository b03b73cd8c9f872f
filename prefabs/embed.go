package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a prefab. A copy under prefabs/ on disk wins over the embedded
// one so the watcher's reloads see edits. The .yaml extension is optional.
func Load(name string) ([]byte, error) {
	return readOverride(PrefabsFS, prefabPath(name))
}

// LoadScript reads an AI script by bare name or by any prefix of
// prefabs/scripts/. The .tengo extension is optional.
func LoadScript(name string) ([]byte, error) {
	return readOverride(ScriptsFS, scriptPath(name))
}

func readOverride(embedded embed.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(clean)
}

func prefabPath(name string) string {
	s := strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
	if s != "" && path.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func scriptPath(name string) string {
	s := filepath.ToSlash(name)
	for _, prefix := range []string{"prefabs/", "scripts/"} {
		s = strings.TrimPrefix(s, prefix)
	}
	if path.Ext(s) == "" {
		s += ".tengo"
	}
	return path.Join("scripts", s)
}
