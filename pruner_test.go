package xgbtrees

import "testing"

// TestTreePrune mirrors a predicate that forces the stump's split always
// left (x < 0.5 is guaranteed by the predicate x < 0.4), so pruning should
// collapse the tree to the left leaf alone.
func TestTreePrune(t *testing.T) {
	tree := buildStump(t)
	featureNames := []string{"x"}

	predicate := NewPredicate().AddCondition("x", LessThan, 0.4)
	pruned := tree.Prune(predicate, featureNames)

	if pruned == nil {
		t.Fatal("expected a non-nil pruned tree")
	}
	if pruned.NumNodes() != 1 {
		t.Fatalf("NumNodes() = %d; want 1 (root collapsed to left leaf)", pruned.NumNodes())
	}
	if got := pruned.Predict([]float64{0.1}); got != 1.0 {
		t.Errorf("Predict([0.1]) after prune = %f; want 1.0", got)
	}
}

// TestTreePruneDeep prunes the two-level tree by forcing x's branch right.
// The y split lives in x's left subtree, so it is dropped along with that
// subtree and the y bound is never consulted; the tree collapses to the
// single right leaf.
func TestTreePruneDeep(t *testing.T) {
	tree := deepTree(t)
	featureNames := []string{"x", "y"}

	predicate := NewPredicate().
		AddCondition("x", GreaterThanOrEqual, 0.9).
		AddCondition("y", LessThan, 0.5)

	pruned := tree.Prune(predicate, featureNames)
	if pruned == nil {
		t.Fatal("expected a non-nil pruned tree")
	}
	if pruned.NumNodes() != 1 {
		t.Fatalf("NumNodes() = %d; want 1", pruned.NumNodes())
	}
	if got := pruned.Predict([]float64{0.95, 0.0}); got != 30.0 {
		t.Errorf("Predict after prune = %f; want 30.0", got)
	}
}

// TestTreePruneMultipleConditions checks that only the first matching
// condition in source order decides a node's forced direction.
func TestTreePruneMultipleConditions(t *testing.T) {
	tree := buildStump(t)
	featureNames := []string{"x"}

	// The first condition alone (x < 0.4) already forces the stump left
	// at its 0.5 threshold; a later, contradictory condition must never
	// be consulted once the first has decided.
	predicate := NewPredicate().
		AddCondition("x", LessThan, 0.4).
		AddCondition("x", GreaterThanOrEqual, 0.6)

	pruned := tree.Prune(predicate, featureNames)
	if pruned == nil {
		t.Fatal("expected a non-nil pruned tree")
	}
	if pruned.NumNodes() != 1 {
		t.Fatalf("NumNodes() = %d; want 1", pruned.NumNodes())
	}
	if got := pruned.Predict([]float64{0.2}); got != 1.0 {
		t.Errorf("Predict after prune = %f; want 1.0 (left leaf)", got)
	}
}

// TestTreePruneNoForcedDirection checks that an uninformative predicate
// leaves the tree shape unchanged.
func TestTreePruneNoForcedDirection(t *testing.T) {
	tree := buildStump(t)
	featureNames := []string{"x"}

	predicate := NewPredicate().AddCondition("x", GreaterThanOrEqual, 0.0)
	pruned := tree.Prune(predicate, featureNames)

	if pruned == nil {
		t.Fatal("expected a non-nil pruned tree")
	}
	if pruned.NumNodes() != tree.NumNodes() {
		t.Errorf("NumNodes() = %d; want unchanged %d", pruned.NumNodes(), tree.NumNodes())
	}
}
