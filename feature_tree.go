package xgbtrees

import "math"

// FeatureTree is one decision tree plus the feature metadata it was built
// against. feature_names and feature_types share one backing array across
// every tree built from the same slices, such as every tree of a loaded
// ensemble (and every tree derived from one by Prune) —
// Go's garbage collector keeps the backing array alive for as long as any
// tree references it, which stands in for the original Rust source's
// Arc<Vec<String>> reference counting without needing an explicit count.
type FeatureTree struct {
	tree         *binaryTree
	featureOffset int
	featureNames  *[]string
	featureTypes  *[]string
}

// Depth returns the longest root-to-leaf path, counted in nodes (a lone
// leaf has depth 1). An empty tree has depth 0.
func (ft *FeatureTree) Depth() int {
	root, ok := ft.tree.get(ft.tree.rootIndex())
	if !ok {
		return 0
	}
	return ft.recursiveDepth(root)
}

func (ft *FeatureTree) recursiveDepth(n *binaryTreeNode) int {
	if n.value.isLeaf {
		return 1
	}
	var leftDepth, rightDepth int
	if left, ok := ft.tree.getLeft(n); ok {
		leftDepth = ft.recursiveDepth(left)
	}
	if right, ok := ft.tree.getRight(n); ok {
		rightDepth = ft.recursiveDepth(right)
	}
	if leftDepth > rightDepth {
		return 1 + leftDepth
	}
	return 1 + rightDepth
}

// NumNodes returns the count of nodes reachable from the root.
func (ft *FeatureTree) NumNodes() int {
	root, ok := ft.tree.get(ft.tree.rootIndex())
	if !ok {
		return 0
	}
	return ft.countReachable(root)
}

func (ft *FeatureTree) countReachable(n *binaryTreeNode) int {
	if n.value.isLeaf {
		return 1
	}
	count := 1
	if left, ok := ft.tree.getLeft(n); ok {
		count += ft.countReachable(left)
	}
	if right, ok := ft.tree.getRight(n); ok {
		count += ft.countReachable(right)
	}
	return count
}

// Predict traverses the tree for a single feature vector and returns the
// leaf weight it lands on. features must be long enough to cover every
// feature_offset + feature_index this tree dereferences.
//
// The traversal is iterative rather than recursive: realistic XGBoost
// trees are shallow, but a pathological model shouldn't be able to blow
// the stack.
func (ft *FeatureTree) Predict(features []float64) float64 {
	idx := ft.tree.rootIndex()
	for {
		node, ok := ft.tree.get(idx)
		if !ok || node.value.isLeaf {
			if ok {
				return node.value.weight
			}
			return 0
		}

		featureIdx := ft.featureOffset + int(node.value.featureIndex)
		v := features[featureIdx]

		if v < node.value.splitValue {
			idx = node.left
		} else {
			idx = node.right
		}
	}
}

// PredictArrays scores every row of a set of columns, one tree evaluation
// per row, returning a dense slice in row order. Columns are matched to
// this tree's features by position, not by name.
func (ft *FeatureTree) PredictArrays(arrays []Column) []float64 {
	if len(arrays) == 0 {
		return nil
	}
	numRows := arrays[0].Len()
	out := make([]float64, numRows)
	row := make([]float64, len(arrays))

	for r := 0; r < numRows; r++ {
		for i, col := range arrays {
			v, _ := col.Float64At(r)
			row[i] = v
		}
		out[r] = ft.Predict(row)
	}
	return out
}

// Builder returns a fresh FeatureTreeBuilder.
func Builder() *FeatureTreeBuilder {
	return newFeatureTreeBuilder()
}

// condition direction, mirroring shouldPruneDirection's three-valued result:
// pruneNone means the condition set does not force a direction at this
// node, pruneLeft/pruneRight name the subtree that becomes unreachable.
type pruneDirection int

const (
	pruneNone pruneDirection = iota
	pruneLeft
	pruneRight
)

// shouldPruneDirection applies a node's conditions in order: the first
// condition that forces a direction wins, and later conditions on the
// same node are never consulted.
func shouldPruneDirection(node *dtNode, conditions []Condition) pruneDirection {
	for _, c := range conditions {
		switch c.Kind {
		case LessThan:
			if c.Value <= node.splitValue {
				return pruneRight
			}
		case GreaterThanOrEqual:
			if c.Value >= node.splitValue {
				return pruneLeft
			}
		}
	}
	return pruneNone
}

// Prune rewrites this tree under predicate, dropping branches that cannot
// be reached by any feature vector satisfying it. It returns nil if the
// resulting tree would be empty (only possible when the source tree is
// already empty) — callers should treat a nil result as "this tree
// contributes nothing under this predicate", not as an error.
//
// featureNames resolves feature_offset + feature_index to a name for
// predicate lookup; it is normally the ensemble's shared feature name
// vector, passed explicitly so a tree can be pruned against a different
// column layout than the one it was built with.
func (ft *FeatureTree) Prune(predicate *Predicate, featureNames []string) *FeatureTree {
	if ft.tree.isEmpty() {
		return nil
	}

	root, ok := ft.tree.get(ft.tree.rootIndex())
	if !ok {
		return nil
	}

	newTree := newBinaryTree()
	pruneRecursive(ft.tree, newTree, root, ft.featureOffset, featureNames, predicate, -1, true)

	if newTree.isEmpty() {
		return nil
	}

	return &FeatureTree{
		tree:          newTree,
		featureOffset: ft.featureOffset,
		featureNames:  ft.featureNames,
		featureTypes:  ft.featureTypes,
	}
}

// pruneRecursive walks oldTree starting at node, appending surviving nodes
// to newTree. parentIdx < 0 means "node becomes the new root". When a
// condition forces a direction, this call skips appending node entirely
// and recurses directly into the kept child, inheriting the same
// parentIdx/isLeft slot — so the new arena never contains a pruned node,
// and no separate compaction pass is needed afterward.
func pruneRecursive(
	oldTree, newTree *binaryTree,
	node *binaryTreeNode,
	featureOffset int,
	featureNames []string,
	predicate *Predicate,
	parentIdx int,
	isLeft bool,
) int {
	if !node.value.isLeaf {
		featureIdx := featureOffset + int(node.value.featureIndex)
		if featureIdx >= 0 && featureIdx < len(featureNames) {
			name := featureNames[featureIdx]
			if conditions, ok := predicate.conditions[name]; ok {
				switch shouldPruneDirection(&node.value, conditions) {
				case pruneLeft:
					if right, ok := oldTree.getRight(node); ok {
						return pruneRecursive(oldTree, newTree, right, featureOffset, featureNames, predicate, parentIdx, isLeft)
					}
				case pruneRight:
					if left, ok := oldTree.getLeft(node); ok {
						return pruneRecursive(oldTree, newTree, left, featureOffset, featureNames, predicate, parentIdx, isLeft)
					}
				}
			}
		}
	}

	newNode := node.value
	var currentIdx int
	if parentIdx < 0 {
		currentIdx = newTree.addRoot(newNode)
	} else if isLeft {
		currentIdx = newTree.addLeftChild(parentIdx, newNode)
	} else {
		currentIdx = newTree.addRightChild(parentIdx, newNode)
	}

	if !node.value.isLeaf {
		if left, ok := oldTree.getLeft(node); ok {
			pruneRecursive(oldTree, newTree, left, featureOffset, featureNames, predicate, currentIdx, true)
		}
		if right, ok := oldTree.getRight(node); ok {
			pruneRecursive(oldTree, newTree, right, featureOffset, featureNames, predicate, currentIdx, false)
		}
	}

	return currentIdx
}

// maxUint32Sentinel is the builder's "this is a leaf" marker for
// left_children/right_children, mirroring XGBoost's use of u32::MAX.
const maxUint32Sentinel = uint32(math.MaxUint32)
