package builtin_templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/butler-team/genproject/cli/util"
)

// TemplatesFs contains built-in templates. The all: prefix keeps dot files and
// Python package markers.
//
//go:embed all:templates
var TemplatesFs embed.FS

// DefaultName is a name of the template used when none is specified.
const DefaultName = "backend"

// Names contains built-in template names.
var Names = [...]string{DefaultName}

// FileModes contains modes of built-in template files, by template name and
// template relative path. Files not listed get 0644.
var FileModes = map[string]map[string]int{
	DefaultName: {
		"scripts/entrypoint.sh": 0o755,
	},
}

const (
	defaultFileMode = 0o644
	defaultDirMode  = 0o755
)

// IsBuiltin returns true if name is a built-in template name.
func IsBuiltin(name string) bool {
	for _, builtinName := range Names {
		if builtinName == name {
			return true
		}
	}
	return false
}

// Extract writes built-in template name into dstDir.
func Extract(name string, dstDir string) error {
	if !IsBuiltin(name) {
		return fmt.Errorf("built-in template %q is not found", name)
	}
	root := path.Join("templates", name)
	modes := FileModes[name]

	return fs.WalkDir(TemplatesFs, root, func(srcPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath := strings.TrimPrefix(strings.TrimPrefix(srcPath, root), "/")
		dstPath := filepath.Join(dstDir, filepath.FromSlash(relPath))
		if entry.IsDir() {
			if err := os.MkdirAll(dstPath, defaultDirMode); err != nil {
				return util.NewIOError("create directory", dstPath, err)
			}
			return nil
		}
		mode, found := modes[relPath]
		if !found {
			mode = defaultFileMode
		}
		if err := util.FsCopyFileChangePerms(TemplatesFs, srcPath, dstPath, mode); err != nil {
			return util.NewIOError("extract", dstPath, err)
		}
		return nil
	})
}
