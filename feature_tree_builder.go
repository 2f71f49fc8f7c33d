package xgbtrees

// FeatureTreeBuilder accumulates the six parallel node sequences XGBoost's
// JSON schema provides (in its DFS-ish node order) plus feature metadata,
// and validates them into a FeatureTree. Use Builder() to obtain one.
type FeatureTreeBuilder struct {
	featureNames  []string
	featureTypes  []string
	featureOffset int

	splitIndices    []int32
	splitConditions []float64
	leftChildren    []uint32
	rightChildren   []uint32
	baseWeights     []float64
	defaultLeft     []bool
}

func newFeatureTreeBuilder() *FeatureTreeBuilder {
	return &FeatureTreeBuilder{}
}

// FeatureNames sets the feature name sequence. Required.
func (b *FeatureTreeBuilder) FeatureNames(names []string) *FeatureTreeBuilder {
	b.featureNames = names
	return b
}

// FeatureTypes sets the feature type sequence. Required, same length as
// FeatureNames.
func (b *FeatureTreeBuilder) FeatureTypes(types []string) *FeatureTreeBuilder {
	b.featureTypes = types
	return b
}

// FeatureOffset sets the constant added to each node's feature index
// before indexing into a row's feature vector. Defaults to 0.
func (b *FeatureTreeBuilder) FeatureOffset(offset int) *FeatureTreeBuilder {
	b.featureOffset = offset
	return b
}

// SplitIndices sets the per-node feature index array (-1 for leaves).
func (b *FeatureTreeBuilder) SplitIndices(indices []int32) *FeatureTreeBuilder {
	b.splitIndices = indices
	return b
}

// SplitConditions sets the per-node threshold array (0 for leaves).
func (b *FeatureTreeBuilder) SplitConditions(conditions []float64) *FeatureTreeBuilder {
	b.splitConditions = conditions
	return b
}

// Children sets the per-node left/right child index arrays. A left value
// of maxUint32Sentinel marks that node as a leaf.
func (b *FeatureTreeBuilder) Children(left, right []uint32) *FeatureTreeBuilder {
	b.leftChildren = left
	b.rightChildren = right
	return b
}

// BaseWeights sets the per-node leaf weight array (0 for internal nodes).
func (b *FeatureTreeBuilder) BaseWeights(weights []float64) *FeatureTreeBuilder {
	b.baseWeights = weights
	return b
}

// DefaultLeft sets the per-node missing-value direction array. Optional;
// defaults to all-false (missing goes right) when omitted. Parsed and
// stored on internal nodes but not consulted by Predict, which compares
// feature values directly rather than special-casing a missing marker.
func (b *FeatureTreeBuilder) DefaultLeft(defaultLeft []bool) *FeatureTreeBuilder {
	b.defaultLeft = defaultLeft
	return b
}

type nodeDefinition struct {
	isLeaf       bool
	weight       float64
	featureIndex int32
	splitValue   float64
	defaultLeft  bool
	left         int
	right        int
}

// Build validates the accumulated sequences and constructs the FeatureTree:
// classify each node as leaf or split, insert into the arena in source
// order, connect children, then validate the result.
func (b *FeatureTreeBuilder) Build() (*FeatureTree, error) {
	if b.featureNames == nil {
		return nil, ErrMissingFeatureNames
	}
	if b.featureTypes == nil {
		return nil, ErrMissingFeatureTypes
	}
	if len(b.featureNames) != len(b.featureTypes) {
		return nil, ErrLengthMismatch
	}

	nodeCount := len(b.splitIndices)
	if len(b.splitConditions) != nodeCount ||
		len(b.leftChildren) != nodeCount ||
		len(b.rightChildren) != nodeCount ||
		len(b.baseWeights) != nodeCount {
		return nil, &InvalidStructureError{Reason: "inconsistent array lengths in tree definition"}
	}
	if nodeCount == 0 {
		return nil, &InvalidStructureError{Reason: "empty tree"}
	}

	defaultLeft := b.defaultLeft
	if len(defaultLeft) != nodeCount {
		defaultLeft = make([]bool, nodeCount)
	}

	defs := make([]nodeDefinition, nodeCount)
	for i := 0; i < nodeCount; i++ {
		if b.leftChildren[i] == maxUint32Sentinel {
			defs[i] = nodeDefinition{
				isLeaf: true,
				weight: b.baseWeights[i],
			}
			continue
		}
		if idx := b.splitIndices[i]; idx < 0 || int(idx) >= len(b.featureNames) {
			return nil, ErrInvalidFeatureIndex
		}
		defs[i] = nodeDefinition{
			featureIndex: b.splitIndices[i],
			splitValue:   b.splitConditions[i],
			defaultLeft:  defaultLeft[i],
			left:         int(b.leftChildren[i]),
			right:        int(b.rightChildren[i]),
		}
	}

	tree := newBinaryTree()
	arenaIdx := make([]int, nodeCount)

	for i, def := range defs {
		node := toDTNode(def)
		if i == 0 {
			arenaIdx[i] = tree.addRoot(node)
		} else {
			arenaIdx[i] = tree.addOrphan(node)
		}
	}

	for i, def := range defs {
		if def.isLeaf {
			continue
		}
		if def.left < 0 || def.left >= nodeCount || def.right < 0 || def.right >= nodeCount {
			return nil, &InvalidStructureError{Reason: "child index out of bounds"}
		}
		parent := arenaIdx[i]
		if !tree.connectLeft(parent, arenaIdx[def.left]) {
			return nil, &InvalidStructureError{Reason: "invalid left child connection"}
		}
		if !tree.connectRight(parent, arenaIdx[def.right]) {
			return nil, &InvalidStructureError{Reason: "invalid right child connection"}
		}
	}

	if !tree.validateConnections() {
		return nil, &InvalidStructureError{Reason: "tree has disconnected nodes"}
	}

	names := b.featureNames
	types := b.featureTypes

	return &FeatureTree{
		tree:          tree,
		featureOffset: b.featureOffset,
		featureNames:  &names,
		featureTypes:  &types,
	}, nil
}

func toDTNode(def nodeDefinition) dtNode {
	if def.isLeaf {
		return dtNode{
			featureIndex: noFeature,
			weight:       def.weight,
			isLeaf:       true,
			splitType:    Numerical,
		}
	}
	return dtNode{
		featureIndex: def.featureIndex,
		splitValue:   def.splitValue,
		defaultLeft:  def.defaultLeft,
		splitType:    Numerical,
	}
}
