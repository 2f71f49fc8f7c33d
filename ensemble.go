package xgbtrees

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// treeBatchSize groups trees for instruction-cache locality once an
// ensemble grows large enough for it to matter.
const treeBatchSize = 8

// treeBatchThreshold is the tree count above which PredictArrays switches
// from one-tree-at-a-time accumulation to batches of treeBatchSize.
const treeBatchThreshold = 100

// Ensemble is a fitted set of trees plus the shared feature metadata and
// base score needed to turn their leaf weights into a final prediction.
type Ensemble struct {
	trees        []*FeatureTree
	featureNames []string
	featureTypes []string
	baseScore    float64
	objective    Objective
}

// NewEnsemble assembles an Ensemble from already-built trees. The trees
// slice is retained, not copied.
func NewEnsemble(trees []*FeatureTree, featureNames, featureTypes []string, baseScore float64, objective Objective) *Ensemble {
	return &Ensemble{
		trees:        trees,
		featureNames: featureNames,
		featureTypes: featureTypes,
		baseScore:    baseScore,
		objective:    objective,
	}
}

// NumTrees returns the number of trees in the ensemble.
func (e *Ensemble) NumTrees() int {
	return len(e.trees)
}

// FeatureNames returns the ensemble's shared feature name vector.
func (e *Ensemble) FeatureNames() []string {
	return e.featureNames
}

// TreeDepths returns each tree's Depth(), in ensemble order.
func (e *Ensemble) TreeDepths() []int {
	depths := make([]int, len(e.trees))
	for i, t := range e.trees {
		depths[i] = t.Depth()
	}
	return depths
}

// Predict scores a single feature vector: the sum of every tree's leaf
// weight, plus base_score, passed through the objective's transform.
func (e *Ensemble) Predict(features []float64) float64 {
	sum := e.baseScore
	for _, t := range e.trees {
		sum += t.Predict(features)
	}
	return e.objective.ComputeScore(sum)
}

// PredictArrays scores every row of columns and returns one prediction per
// row. Once the ensemble grows past treeBatchThreshold trees, trees are
// walked in fixed-size batches rather than one at a time, keeping the
// working set of tree nodes touched per row small enough to stay resident
// in cache across the batch.
func (e *Ensemble) PredictArrays(columns []Column) []float64 {
	if len(columns) == 0 {
		return nil
	}
	numRows := columns[0].Len()
	out := make([]float64, numRows)
	for i := range out {
		out[i] = e.baseScore
	}

	if len(e.trees) <= treeBatchThreshold {
		for _, t := range e.trees {
			scores := t.PredictArrays(columns)
			for i, s := range scores {
				out[i] += s
			}
		}
	} else {
		row := make([]float64, len(columns))
		for start := 0; start < len(e.trees); start += treeBatchSize {
			end := start + treeBatchSize
			if end > len(e.trees) {
				end = len(e.trees)
			}
			group := e.trees[start:end]
			for r := 0; r < numRows; r++ {
				for i, col := range columns {
					v, _ := col.Float64At(r)
					row[i] = v
				}
				for _, t := range group {
					out[r] += t.Predict(row)
				}
			}
		}
	}

	for i, v := range out {
		out[i] = e.objective.ComputeScore(v)
	}
	return out
}

// PredictBatch scores every row of batch, unpacking its columns in
// batch.Names order before handing them to PredictArrays.
func (e *Ensemble) PredictBatch(batch *Batch) []float64 {
	return e.PredictArrays(batch.Columns)
}

// PredictArraysParallel splits rows across nThreads goroutines and
// returns one prediction per row. nThreads of 0 uses runtime.NumCPU();
// 1, or a row count at or below nThreads, falls back to the
// single-threaded path in PredictArrays.
func (e *Ensemble) PredictArraysParallel(columns []Column, nThreads int) []float64 {
	if len(columns) == 0 {
		return nil
	}
	numRows := columns[0].Len()
	if nThreads == 0 {
		nThreads = runtime.NumCPU()
	}
	if nThreads <= 1 || numRows <= nThreads {
		return e.PredictArrays(columns)
	}

	out := make([]float64, numRows)
	rowsPerThread := (numRows + nThreads - 1) / nThreads

	var wg sync.WaitGroup
	for t := 0; t < nThreads; t++ {
		start := t * rowsPerThread
		end := start + rowsPerThread
		if end > numRows {
			end = numRows
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			row := make([]float64, len(columns))
			for r := start; r < end; r++ {
				for i, col := range columns {
					v, _ := col.Float64At(r)
					row[i] = v
				}
				out[r] = e.Predict(row)
			}
		}(start, end)
	}
	wg.Wait()

	return out
}

// Prune returns a new Ensemble with every tree pruned against predicate.
// Trees that become empty under the predicate are dropped entirely.
func (e *Ensemble) Prune(predicate *Predicate) *Ensemble {
	pruned := make([]*FeatureTree, 0, len(e.trees))
	for _, t := range e.trees {
		if p := t.Prune(predicate, e.featureNames); p != nil {
			pruned = append(pruned, p)
		}
	}
	return &Ensemble{
		trees:        pruned,
		featureNames: e.featureNames,
		featureTypes: e.featureTypes,
		baseScore:    e.baseScore,
		objective:    e.objective,
	}
}

// AutoPrune derives a predicate from batch's observed column ranges,
// restricted to this ensemble's feature names via AutoPredicate, and
// prunes the ensemble against it.
func (e *Ensemble) AutoPrune(batch *Batch) *Ensemble {
	return e.Prune(AutoPredicate(batch, e.featureNames))
}

// Describe logs a summary of the ensemble's shape at info level: tree
// count, average and max tree depth, and total node count across every
// tree.
func (e *Ensemble) Describe(log *logrus.Logger) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if len(e.trees) == 0 {
		log.WithField("num_trees", 0).Info("empty ensemble")
		return
	}

	depths := e.TreeDepths()
	max, sum := depths[0], 0
	totalNodes := 0
	for i, d := range depths {
		if d > max {
			max = d
		}
		sum += d
		totalNodes += e.trees[i].NumNodes()
	}

	log.WithFields(logrus.Fields{
		"num_trees":   len(e.trees),
		"avg_depth":   float64(sum) / float64(len(depths)),
		"max_depth":   max,
		"total_nodes": totalNodes,
	}).Info("ensemble summary")
}
