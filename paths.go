package reloadbench

import (
	"os"
	"path/filepath"
)

const (
	defaultPage = "manage.html"
	defaultMock = "mock_chrome.js"
)

// resolvePaths returns absolute locations for the target page and the
// mock script. Defaults resolve against the executable's directory,
// not the caller's working directory, so the tool selects the same
// files no matter where it is invoked from. Explicit paths are made
// absolute once, here.
func (b *Bench) resolvePaths() (page, mock string, err error) {
	page, err = resolve(b.pagePath, defaultPage)
	if err != nil {
		return "", "", err
	}
	mock, err = resolve(b.mockPath, defaultMock)
	if err != nil {
		return "", "", err
	}
	return page, mock, nil
}

func resolve(path, fallback string) (string, error) {
	if path == "" {
		dir, err := executableDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, fallback), nil
	}
	return filepath.Abs(path)
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	// Resolve symlinks so a linked binary still finds its siblings.
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// fileURL converts an absolute path into a file scheme URL, sample
// "file:///a/b/manage.html".
func fileURL(path string) string {
	return "file://" + filepath.ToSlash(path)
}
