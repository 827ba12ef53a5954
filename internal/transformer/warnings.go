package transformer

import "fmt"

// CollectWarnings gathers non-fatal warnings about c.
//
// A non-serializable child still gets a <name>.node directory but is left
// out of the manifest, so the two outputs disagree. Repeated step IDs and
// repeated names are reported as well; a repeated name overwrites the
// earlier directory on disk.
func CollectWarnings(c Composite) []string {
	var warnings []string
	seen := make(map[string]string)
	collectWarnings(c, seen, &warnings)
	return warnings
}

func collectWarnings(c Composite, seen map[string]string, warnings *[]string) {
	ids := make(map[string]bool)
	for _, step := range c.Steps() {
		if ids[step.ID] {
			*warnings = append(*warnings, fmt.Sprintf("%s: duplicate step id %q", c.Name(), step.ID))
		}
		ids[step.ID] = true

		child := step.Transformer
		if IsNil(child) {
			*warnings = append(*warnings, fmt.Sprintf("%s: step %q has no transformer", c.Name(), step.ID))
			continue
		}

		if owner, ok := seen[child.Name()]; ok {
			*warnings = append(*warnings,
				fmt.Sprintf("%s: name %s already used under %s", c.Name(), child.Name(), owner))
		}
		seen[child.Name()] = c.Name()

		if !child.Serializable() {
			*warnings = append(*warnings,
				fmt.Sprintf("%s: step %q (%s) is not serializable and is omitted from the manifest",
					c.Name(), step.ID, child.Name()))
		}

		if nested, ok := child.(Composite); ok {
			collectWarnings(nested, seen, warnings)
		}
	}
}
