package emit

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/logging"
	"github.com/arthur-debert/bkgen/pkg/toolsets"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

// FileMode is the permission of every written document.
const FileMode = 0644

// Emitter writes documents below a root directory.
type Emitter struct {
	logger     zerolog.Logger
	root       string
	filesystem filesystem.FullFileSystem
}

// New creates an Emitter rooted at dir.
func New(dir string) (*Emitter, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid output directory %s", dir)
	}

	osfs := filesystem.NewOSFileSystem("/")
	return &Emitter{
		logger:     logging.GetLogger("emit"),
		root:       root,
		filesystem: synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths(),
	}, nil
}

// Root returns the absolute output directory.
func (e *Emitter) Root() string { return e.root }

// Write writes docs, replacing existing files, and returns their absolute
// paths in order.
func (e *Emitter) Write(ctx context.Context, docs []toolsets.Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	sfs := synthfs.New()
	ops := make([]synthfs.Operation, 0, len(docs))
	paths := make([]string, 0, len(docs))
	for i, doc := range docs {
		path, err := e.resolve(doc.Path)
		if err != nil {
			return nil, err
		}
		id := fmt.Sprintf("emit_%03d_%s", i, filepath.Base(path))
		ops = append(ops, sfs.CustomOperationWithID(id, writeFile(path, []byte(doc.Content))))
		paths = append(paths, path)
	}

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = true

	e.logger.Debug().
		Str("root", e.root).
		Int("documents", len(docs)).
		Msg("Writing documents")

	if _, err := synthfs.RunWithOptions(ctx, e.filesystem, options, ops...); err != nil {
		return nil, errors.Wrapf(err, errors.ErrOutputWrite, "failed to write documents to %s", e.root)
	}
	return paths, nil
}

// resolve maps a document path to an absolute path inside the root.
func (e *Emitter) resolve(rel string) (string, error) {
	if rel == "" || filepath.IsAbs(rel) {
		return "", errors.Newf(errors.ErrOutputWrite, "document path %q must be relative", rel)
	}
	path := filepath.Join(e.root, rel)
	inside, err := filepath.Rel(e.root, path)
	if err != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrOutputWrite, "document path %q escapes %s", rel, e.root)
	}
	return path, nil
}

func writeFile(path string, content []byte) func(context.Context, filesystem.FileSystem) error {
	return func(ctx context.Context, fs filesystem.FileSystem) error {
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create parent directory of %s: %w", path, err)
		}
		if err := fs.WriteFile(path, content, FileMode); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}
}
