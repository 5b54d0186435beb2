package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Target is a script path resolved against its working directory.
type Target struct {
	// Root is the absolute working directory.
	Root string
	// Path is the absolute, cleaned script path.
	Path string
	// FilePath is the path exactly as the caller supplied it.
	FilePath string
	// Rel is Path relative to Root.
	Rel string
}

// Resolve makes filePath absolute against workingDir and checks that it stays
// inside it. An absolute filePath is not re-rooted. Containment is decided on
// path components, so "/work2/x.py" is never inside "/work".
func Resolve(workingDir, filePath string) (Target, error) {
	root, err := filepath.Abs(workingDir)
	if err != nil {
		return Target{}, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	joined := filePath
	if !filepath.IsAbs(filePath) {
		joined = filepath.Join(root, filePath)
	}
	abs, err := filepath.Abs(joined)
	if err != nil {
		return Target{}, fmt.Errorf("failed to resolve file path: %w", err)
	}

	rel, ok := relWithin(root, abs)
	if !ok {
		return Target{}, &PathError{FilePath: filePath, Err: ErrOutsideWorkdir}
	}

	return Target{Root: root, Path: abs, FilePath: filePath, Rel: rel}, nil
}

func relWithin(root, p string) (string, bool) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", false
	}
	return rel, true
}
