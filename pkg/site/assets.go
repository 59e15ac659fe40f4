package site

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirs are never descended into when collecting assets.
var skipDirs = []string{".git", "node_modules", "_site"}

// CopyAssets copies every file under src whose slash path matches one of
// patterns into dst, keeping relative paths. A missing src copies nothing.
func CopyAssets(src, dst string, patterns []string) (int, error) {
	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("stat assets: %w", err)
	}

	if !info.IsDir() {
		return 0, fmt.Errorf("assets %s: %w", src, fs.ErrInvalid)
	}

	copied := 0

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if path != src && skipDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		rel, relErr := filepath.Rel(src, path)
		if relErr != nil {
			return relErr
		}

		if !matchesAny(filepath.ToSlash(rel), patterns) {
			return nil
		}

		copyErr := copyFile(path, filepath.Join(dst, rel))
		if copyErr != nil {
			return copyErr
		}

		copied++

		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copy assets: %w", err)
	}

	return copied, nil
}

func skipDir(name string) bool {
	for _, s := range skipDirs {
		if strings.EqualFold(name, s) {
			return true
		}
	}

	return false
}

func matchesAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(filepath.ToSlash(pattern), rel); err == nil && ok {
			return true
		}
	}

	return false
}

func copyFile(from, to string) error {
	err := os.MkdirAll(filepath.Dir(to), 0o750)
	if err != nil {
		return err
	}

	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(to)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)

	return errors.Join(err, out.Close())
}
