package xgbtrees

import "testing"

func TestFeatureTreePredictArrays(t *testing.T) {
	tree := buildStump(t)

	cols := []Column{
		&Float64Column{Values: []float64{0.1, 0.9, 0.5}},
	}

	got := tree.PredictArrays(cols)
	want := []float64{1.0, 2.0, 2.0}

	if len(got) != len(want) {
		t.Fatalf("PredictArrays returned %d rows; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %f; want %f", i, got[i], want[i])
		}
	}
}

func TestFeatureTreePredictArraysEmpty(t *testing.T) {
	tree := buildStump(t)
	if got := tree.PredictArrays(nil); got != nil {
		t.Errorf("PredictArrays(nil) = %v; want nil", got)
	}
}

// deepTree builds a two-level tree: x<0.5 then y<1.0, three leaves with
// distinct weights, to exercise Depth/NumNodes on a non-stump shape.
// Node order: [splitX, splitY(left), leafA, leafB, leafC]
func deepTree(t *testing.T) *FeatureTree {
	t.Helper()
	tree, err := Builder().
		FeatureNames([]string{"x", "y"}).
		FeatureTypes([]string{"float", "float"}).
		SplitIndices([]int32{0, 1, noFeature, noFeature, noFeature}).
		SplitConditions([]float64{0.5, 1.0, 0, 0, 0}).
		Children(
			[]uint32{1, 2, maxUint32Sentinel, maxUint32Sentinel, maxUint32Sentinel},
			[]uint32{4, 3, 0, 0, 0},
		).
		BaseWeights([]float64{0, 0, 10.0, 20.0, 30.0}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error building deepTree: %v", err)
	}
	return tree
}

func TestFeatureTreeDepthAndNodes(t *testing.T) {
	tree := deepTree(t)
	if tree.NumNodes() != 5 {
		t.Errorf("NumNodes() = %d; want 5", tree.NumNodes())
	}
	if tree.Depth() != 3 {
		t.Errorf("Depth() = %d; want 3", tree.Depth())
	}
}

func TestFeatureTreePredictDeep(t *testing.T) {
	tree := deepTree(t)

	cases := []struct {
		x, y float64
		want float64
	}{
		{0.1, 0.1, 10.0},
		{0.1, 2.0, 20.0},
		{0.9, 0.0, 30.0},
	}
	for _, c := range cases {
		got := tree.Predict([]float64{c.x, c.y})
		if got != c.want {
			t.Errorf("Predict(%v,%v) = %f; want %f", c.x, c.y, got, c.want)
		}
	}
}
