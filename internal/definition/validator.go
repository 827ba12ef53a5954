package definition

import (
	"embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	oerrors "github.com/opmodel/mlbundle/internal/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

// Validator checks definition documents against the embedded CUE schema.
type Validator struct {
	ctx        *cue.Context
	definition cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaData, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	definition := schema.LookupPath(cue.ParsePath("#Definition"))
	if !definition.Exists() {
		return nil, fmt.Errorf("schema has no #Definition")
	}

	return &Validator{
		ctx:        ctx,
		definition: definition,
	}, nil
}

// ValidateJSON validates a JSON document. location is used in error output.
func (v *Validator) ValidateJSON(data []byte, location string) error {
	doc := v.ctx.CompileBytes(data, cue.Filename(location))
	if err := doc.Err(); err != nil {
		return oerrors.NewValidationError(formatCUEError(err), location, "",
			"Definition files must be YAML or JSON objects.")
	}

	unified := v.definition.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return oerrors.NewValidationError(formatCUEError(err), location, "",
			"Allowed fields are id, label, name, op, serializable and steps.")
	}

	return nil
}

// formatCUEError flattens a CUE error list into one line per error.
func formatCUEError(err error) string {
	var lines []string
	for _, e := range cueerrors.Errors(err) {
		lines = append(lines, strings.TrimSpace(cueerrors.Details(e, nil)))
	}
	if len(lines) == 0 {
		return err.Error()
	}
	return strings.Join(lines, "\n  ")
}
