package cmd

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// goPackageDirs turns local package patterns ("./models", "./api/...") into
// directories to watch. Import paths that are not local are skipped.
func goPackageDirs(patterns []string, base string) []string {
	var dirs []string
	for _, p := range patterns {
		if !strings.HasPrefix(p, ".") && !filepath.IsAbs(p) {
			continue
		}
		recursive := strings.HasSuffix(p, "/...")
		dir := filepath.Join(base, strings.TrimSuffix(p, "/..."))
		if !recursive {
			dirs = append(dirs, dir)
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				name := d.Name()
				if path != dir && (strings.HasPrefix(name, ".") || name == "testdata" || name == "vendor") {
					return filepath.SkipDir
				}
				dirs = append(dirs, path)
			}
			return nil
		})
	}
	return dirs
}
