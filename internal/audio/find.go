package audio

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFiles returns the regular files under root whose extension
// matches ext (case-insensitive, including the dot).
//
// With recursive set, the whole tree below root is walked; otherwise
// only root's direct entries are considered. Results come back in
// walk order, which is deterministic (lexical within each directory).
func FindFiles(root, ext string, recursive bool) ([]string, error) {
	ext = strings.ToLower(ext)

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		var files []string
		for _, entry := range entries {
			if entry.Type().IsRegular() && strings.ToLower(filepath.Ext(entry.Name())) == ext {
				files = append(files, filepath.Join(root, entry.Name()))
			}
		}
		return files, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.ToLower(filepath.Ext(path)) == ext {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
