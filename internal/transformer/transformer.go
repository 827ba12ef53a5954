package transformer

// Leaf is a non-composite transformer such as a scaler or an estimator.
// It has no bundle content of its own.
type Leaf struct {
	identity
	op string
}

// NewLeaf creates a leaf transformer named "<label>_<uuid>" unless WithName is given.
func NewLeaf(label, op string, opts ...Option) *Leaf {
	return &Leaf{identity: newIdentity(label, opts), op: op}
}

// Op returns the leaf op.
func (l *Leaf) Op() string { return l.op }

// Pipeline runs its steps in sequence.
type Pipeline struct {
	identity
	steps []Step
}

// NewPipeline creates a pipeline over steps.
func NewPipeline(label string, steps []Step, opts ...Option) *Pipeline {
	return &Pipeline{identity: newIdentity(label, opts), steps: steps}
}

// Op returns OpPipeline.
func (p *Pipeline) Op() string { return OpPipeline }

// Steps returns the pipeline steps in order.
func (p *Pipeline) Steps() []Step { return p.steps }

// SerializeToBundle writes the pipeline's steps under dir.
func (p *Pipeline) SerializeToBundle(w BundleWriter, dir, _ string) error {
	return w.Serialize(p, dir)
}

// FeatureUnion runs its steps side by side and concatenates their outputs.
type FeatureUnion struct {
	identity
	steps []Step
}

// NewFeatureUnion creates a feature union over steps.
func NewFeatureUnion(label string, steps []Step, opts ...Option) *FeatureUnion {
	return &FeatureUnion{identity: newIdentity(label, opts), steps: steps}
}

// Op returns OpFeatureUnion.
func (u *FeatureUnion) Op() string { return OpFeatureUnion }

// Steps returns the union's steps in order.
func (u *FeatureUnion) Steps() []Step { return u.steps }

// SerializeToBundle writes the union's steps under dir.
func (u *FeatureUnion) SerializeToBundle(w BundleWriter, dir, _ string) error {
	return w.Serialize(u, dir)
}

// Compile-time assertions.
var (
	_ Transformer      = (*Leaf)(nil)
	_ Composite        = (*Pipeline)(nil)
	_ Composite        = (*FeatureUnion)(nil)
	_ BundleSerializer = (*Pipeline)(nil)
	_ BundleSerializer = (*FeatureUnion)(nil)
)
