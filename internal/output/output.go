package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Ext is the file extension for generated component files.
const Ext = ".jsx"

// Write saves component source under dir without clobbering earlier runs.
// If <name>.jsx exists the file becomes <name>_1.jsx, then <name>_2.jsx and
// so on. Returns the path actually written.
func Write(dir, componentName, content string) (string, error) {
	if dir == "" {
		dir = "generated"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}

	path, err := resolvePath(dir, componentName)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("write component file %s: %w", path, err)
	}
	return path, nil
}

func resolvePath(dir, componentName string) (string, error) {
	candidate := filepath.Join(dir, componentName+Ext)
	for i := 1; ; i++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", componentName, i, Ext))
	}
}
