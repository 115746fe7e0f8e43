package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskRoot is the directory checked before the embedded copies. Edits there
// are picked up without a rebuild.
var DiskRoot = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// source is one family of prefab files: a directory inside DiskRoot and the
// embedded fallback holding the same names.
type source struct {
	dir      string
	embedded fs.FS
}

var (
	prefabSource = source{embedded: PrefabsFS}
	scriptSource = source{dir: "scripts", embedded: ScriptsFS}
)

// name maps "prefabs/scripts/x", "scripts/x" and "x" to the same relative
// slash path.
func (s source) name(p string) string {
	if p == "" {
		return ""
	}
	clean := path.Clean(filepath.ToSlash(p))
	clean = strings.TrimPrefix(clean, "prefabs/")
	if s.dir != "" {
		clean = path.Join(s.dir, strings.TrimPrefix(clean, s.dir+"/"))
	}
	return clean
}

func (s source) read(p string) ([]byte, error) {
	clean := s.name(p)
	if data, err := os.ReadFile(filepath.Join(DiskRoot, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fs.ReadFile(s.embedded, clean)
}

// Load reads a yaml prefab.
func Load(name string) ([]byte, error) {
	return prefabSource.read(name)
}

// LoadScript reads a tengo script from scripts/.
func LoadScript(name string) ([]byte, error) {
	return scriptSource.read(name)
}

// BaseName maps a watched path back to the name Load expects.
func BaseName(p string) string {
	return prefabSource.name(filepath.Base(p))
}
