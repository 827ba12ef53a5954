// Package transformer defines the object model for composite ML transformers:
// leaves, pipelines, and feature unions, each carrying its own identity.
package transformer

import (
	"reflect"

	"github.com/spf13/afero"
)

// Well-known composite ops.
const (
	// OpPipeline identifies a sequential pipeline of steps.
	OpPipeline = "pipeline"

	// OpFeatureUnion identifies a feature union whose step outputs are concatenated.
	OpFeatureUnion = "feature_union"
)

// Transformer is anything that can report a name, an op, and whether it is serializable.
type Transformer interface {
	// Name is process-unique, normally "<label>_<uuid>".
	Name() string

	// Op identifies the transformer kind ("pipeline", "feature_union", or a leaf op).
	Op() string

	// Serializable reports whether the transformer exposes a bundle serialization capability.
	Serializable() bool
}

// Step is a single (identifier, transformer) pair inside a composite.
type Step struct {
	ID          string
	Transformer Transformer
}

// Composite is a transformer made of an ordered sequence of named steps.
type Composite interface {
	Transformer

	// Steps returns the ordered children.
	Steps() []Step
}

// BundleWriter is the part of a bundle writer that serializers delegate back to.
type BundleWriter interface {
	// Serialize writes every step of c as a <name>.node directory under dir.
	Serialize(c Composite, dir string) error

	// Fs is the filesystem the bundle is written to.
	Fs() afero.Fs
}

// BundleSerializer is implemented by transformers that populate their own
// <name>.node directory. Transformers without it get an empty directory.
type BundleSerializer interface {
	SerializeToBundle(w BundleWriter, dir, name string) error
}

// IsNil reports whether t is nil, including a nil pointer held in the interface.
func IsNil(t Transformer) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
