package app

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/aireview/aireview/domain"
)

// FileHelper provides file operation utilities
type FileHelper struct{}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// CollectSupportedFiles walks root and returns the supported source files
// matching pattern, in lexical order. Entries ignored by a .gitignore at
// root are skipped. With recursive false only the top level is considered.
func (h *FileHelper) CollectSupportedFiles(root, pattern string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, domain.NewInvalidInputError("path is not a directory: "+root, nil)
	}

	ignorer := loadGitignore(root)

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if info.IsDir() {
			if path == root {
				return nil
			}
			if !recursive {
				return filepath.SkipDir
			}
			if isHiddenDir(info.Name()) {
				return filepath.SkipDir
			}
			if ignorer != nil && ignorer.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if ignorer != nil && ignorer.MatchesPath(rel) {
			return nil
		}
		if !domain.IsSupportedExtension(path) {
			return nil
		}
		if !matchesPattern(rel, pattern) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// FileExists checks if a regular file exists
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads file content
func (h *FileHelper) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// matchesPattern matches a relative path against a glob pattern. The
// default "**/*" matches everything; a "**/" prefix matches the basename
// at any depth, anything else matches the relative path directly.
func matchesPattern(rel, pattern string) bool {
	if pattern == "" || pattern == "**/*" {
		return true
	}
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if matched, _ := filepath.Match(rest, filepath.Base(rel)); matched {
			return true
		}
		return false
	}
	if matched, _ := filepath.Match(pattern, rel); matched {
		return true
	}
	matched, _ := filepath.Match(pattern, filepath.Base(rel))
	return matched
}

// loadGitignore compiles the root .gitignore if present
func loadGitignore(root string) *gitignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	ignorer, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return ignorer
}

func isHiddenDir(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
