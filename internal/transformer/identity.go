package transformer

import (
	"fmt"

	"github.com/google/uuid"
)

// NewName returns label joined with a fresh UUID, e.g. "scaler_4b1e...".
func NewName(label string) string {
	return fmt.Sprintf("%s_%s", label, uuid.NewString())
}

// identity is embedded by every variant. It is fixed at construction.
type identity struct {
	name         string
	serializable bool
}

func (i identity) Name() string       { return i.name }
func (i identity) Serializable() bool { return i.serializable }

// Option configures a transformer at construction time.
type Option func(*identity)

// WithName sets an explicit name instead of a generated one.
func WithName(name string) Option {
	return func(i *identity) {
		i.name = name
	}
}

// WithSerializable overrides the serialization capability flag (default true).
func WithSerializable(serializable bool) Option {
	return func(i *identity) {
		i.serializable = serializable
	}
}

func newIdentity(label string, opts []Option) identity {
	id := identity{serializable: true}
	for _, opt := range opts {
		opt(&id)
	}
	if id.name == "" {
		id.name = NewName(label)
	}
	return id
}
