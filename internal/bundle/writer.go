// Package bundle writes composite transformers to a directory-based bundle
// where every step gets its own <name>.node directory.
package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	oerrors "github.com/opmodel/mlbundle/internal/errors"
	"github.com/opmodel/mlbundle/internal/output"
	"github.com/opmodel/mlbundle/internal/transformer"
)

// NodeSuffix is appended to a transformer name to form its directory name.
const NodeSuffix = ".node"

// NodeDir returns the directory for the transformer called name under dir.
func NodeDir(dir, name string) string {
	return filepath.Join(dir, name+NodeSuffix)
}

// NodeEvent describes a node directory the writer just created.
type NodeEvent struct {
	// Path is the absolute node directory path.
	Path string

	// Name and Op identify the transformer.
	Name string
	Op   string

	// Replaced reports whether an existing directory was removed first.
	Replaced bool
}

// Writer serializes composites onto a filesystem. It holds no state between calls.
type Writer struct {
	fs            afero.Fs
	overwrite     bool
	schemaVersion string
	logger        *log.Logger
	onNode        func(NodeEvent)
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithFs sets the filesystem. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) WriterOption {
	return func(w *Writer) {
		w.fs = fs
	}
}

// WithOverwrite controls whether existing node directories are removed (default true).
// When false, an existing node directory is an error.
func WithOverwrite(overwrite bool) WriterOption {
	return func(w *Writer) {
		w.overwrite = overwrite
	}
}

// WithSchemaVersion sets the version reported by Manifest.
func WithSchemaVersion(version string) WriterOption {
	return func(w *Writer) {
		w.schemaVersion = version
	}
}

// WithLogger sets the logger. Defaults to the global output logger.
func WithLogger(logger *log.Logger) WriterOption {
	return func(w *Writer) {
		w.logger = logger
	}
}

// WithNodeHook registers fn to be called after each node directory is created.
func WithNodeHook(fn func(NodeEvent)) WriterOption {
	return func(w *Writer) {
		w.onNode = fn
	}
}

// NewWriter creates a Writer.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		fs:            afero.NewOsFs(),
		overwrite:     true,
		schemaVersion: SchemaVersion,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Fs returns the filesystem the writer uses.
func (w *Writer) Fs() afero.Fs {
	return w.fs
}

func (w *Writer) log() *log.Logger {
	if w.logger != nil {
		return w.logger
	}
	return output.Logger()
}

// Serialize writes every step of c as dir/<name>.node, in step order.
// dir must already exist. An existing node directory is removed with everything
// under it before being recreated. Children that implement
// transformer.BundleSerializer are then asked to fill their directory;
// composites do so by recursing. Nil children and names that are not a single
// path element are rejected before dir is touched. Any later error aborts the
// walk and leaves the partially written tree in place.
func (w *Writer) Serialize(c transformer.Composite, dir string) error {
	if transformer.IsNil(c) {
		return fmt.Errorf("serializing into %s: %w", dir, oerrors.Wrap(oerrors.ErrCapability, "nil composite"))
	}

	steps := c.Steps()
	for _, step := range steps {
		if transformer.IsNil(step.Transformer) {
			return fmt.Errorf("%s step %q: %w", c.Name(), step.ID,
				oerrors.Wrap(oerrors.ErrCapability, "no transformer"))
		}
		if err := checkNodeName(step.Transformer.Name(), dir); err != nil {
			return fmt.Errorf("%s step %q: %w", c.Name(), step.ID, err)
		}
	}

	info, err := w.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError(
				fmt.Sprintf("bundle destination for %s does not exist", c.Name()),
				dir,
				"Create the destination directory before writing the bundle.",
			)
		}
		return fsError("checking", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("bundle destination %s is not a directory", dir)
	}

	for _, step := range steps {
		child := step.Transformer
		nodeDir := NodeDir(dir, child.Name())
		w.log().Debug("writing node", "name", child.Name(), "op", child.Op(), "dir", nodeDir)

		replaced, err := w.prepareNodeDir(nodeDir)
		if err != nil {
			return err
		}

		if w.onNode != nil {
			w.onNode(NodeEvent{Path: nodeDir, Name: child.Name(), Op: child.Op(), Replaced: replaced})
		}

		if s, ok := child.(transformer.BundleSerializer); ok {
			if err := s.SerializeToBundle(w, nodeDir, child.Name()); err != nil {
				return err
			}
		}
	}

	return nil
}

// prepareNodeDir removes any existing directory at path and creates it empty.
func (w *Writer) prepareNodeDir(path string) (bool, error) {
	replaced := false

	if _, err := w.fs.Stat(path); err == nil {
		if !w.overwrite {
			return false, fmt.Errorf("node directory %s already exists and overwrite is disabled", path)
		}
		if err := w.fs.RemoveAll(path); err != nil {
			return false, fsError("removing", path, err)
		}
		replaced = true
	} else if !os.IsNotExist(err) {
		return false, fsError("checking", path, err)
	}

	if err := w.fs.Mkdir(path, 0o755); err != nil {
		return replaced, fsError("creating", path, err)
	}

	return replaced, nil
}

// checkNodeName rejects names that would resolve outside dir once
// NodeSuffix is appended.
func checkNodeName(name, dir string) error {
	switch {
	case name == "", name == ".", name == "..":
	case strings.ContainsAny(name, `/\`):
	default:
		return nil
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("transformer name %q cannot be used as a node directory name", name),
		dir, "name",
		"Names must be non-empty and must not contain path separators.",
	)
}

// fsError wraps a filesystem error, turning permission failures into
// a permission DetailError.
func fsError(action, path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(
			fmt.Sprintf("%s %s: %v", action, path, err),
			map[string]string{"Path": path},
			"Check that the bundle destination is writable by the current user.",
			err,
		)
	}
	return fmt.Errorf("%s %s: %w", action, path, err)
}

// Deserialize reading a bundle back is not supported. It always returns an
// error matching errors.ErrNotImplemented, whatever path is.
func (w *Writer) Deserialize(path string) (transformer.Composite, error) {
	return nil, oerrors.NewNotImplementedError("deserialize", path)
}

// Manifest describes c using the writer's schema version.
func (w *Writer) Manifest(c transformer.Composite) Manifest {
	return DescribeManifest(c, w.schemaVersion)
}

var _ transformer.BundleWriter = (*Writer)(nil)
