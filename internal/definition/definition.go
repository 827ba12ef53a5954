// Package definition loads composite transformer definitions from YAML or
// JSON files and builds them into transformer trees.
package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	oerrors "github.com/opmodel/mlbundle/internal/errors"
	"github.com/opmodel/mlbundle/internal/transformer"
)

// Definition describes one transformer and, for composites, its steps.
type Definition struct {
	// ID identifies the step inside its parent. Unused on the root.
	ID string `json:"id,omitempty"`

	// Label prefixes the generated name. Defaults to Op.
	Label string `json:"label,omitempty"`

	// Name, when set, is used verbatim instead of a generated name.
	Name string `json:"name,omitempty"`

	// Op is "pipeline", "feature_union", or a leaf op.
	Op string `json:"op"`

	// Serializable defaults to true.
	Serializable *bool `json:"serializable,omitempty"`

	// Steps are the ordered children of a composite.
	Steps []Definition `json:"steps,omitempty"`
}

// IsComposite reports whether the definition describes a pipeline or feature union.
func (d *Definition) IsComposite() bool {
	return d.Op == transformer.OpPipeline || d.Op == transformer.OpFeatureUnion
}

// LoadFile reads, validates and decodes the definition at path.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("definition file not found", path,
				"Pass an existing YAML or JSON file with -f.")
		}
		return nil, fmt.Errorf("reading definition: %w", err)
	}
	return Parse(data, path)
}

// Parse validates and decodes a YAML or JSON definition. location is used in errors.
func Parse(data []byte, location string) (*Definition, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), location, "",
			"Definition files must be valid YAML or JSON.")
	}

	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateJSON(jsonData, location); err != nil {
		return nil, err
	}

	var def Definition
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&def); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), location, "", "")
	}

	return &def, nil
}

// Build constructs the transformer tree. The root must be a composite.
func (d *Definition) Build() (transformer.Composite, error) {
	if !d.IsComposite() {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("root op %q is not a composite", d.Op), "", "op",
			`Use op "pipeline" or "feature_union" at the top level.`)
	}

	t, err := d.build("")
	if err != nil {
		return nil, err
	}
	return t.(transformer.Composite), nil
}

func (d *Definition) build(field string) (transformer.Transformer, error) {
	label := d.Label
	if label == "" {
		label = d.Op
	}

	var opts []transformer.Option
	if d.Name != "" {
		opts = append(opts, transformer.WithName(d.Name))
	}
	if d.Serializable != nil {
		opts = append(opts, transformer.WithSerializable(*d.Serializable))
	}

	if !d.IsComposite() {
		if len(d.Steps) > 0 {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("leaf op %q cannot have steps", d.Op), "", fieldPath(field, "steps"), "")
		}
		return transformer.NewLeaf(label, d.Op, opts...), nil
	}

	steps := make([]transformer.Step, 0, len(d.Steps))
	ids := make(map[string]bool, len(d.Steps))
	for i := range d.Steps {
		stepField := fieldPath(field, fmt.Sprintf("steps[%d]", i))
		sd := &d.Steps[i]

		if ids[sd.ID] {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("duplicate step id %q", sd.ID), "", stepField+".id", "Step ids must be unique within a composite.")
		}
		ids[sd.ID] = true

		child, err := sd.build(stepField)
		if err != nil {
			return nil, err
		}
		steps = append(steps, transformer.Step{ID: sd.ID, Transformer: child})
	}

	if d.Op == transformer.OpPipeline {
		return transformer.NewPipeline(label, steps, opts...), nil
	}
	return transformer.NewFeatureUnion(label, steps, opts...), nil
}

func fieldPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
