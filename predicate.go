package xgbtrees

import "math"

// ConditionKind names the two one-sided comparisons a Predicate can impose
// on a feature.
type ConditionKind uint8

const (
	// LessThan requires the feature value to be strictly less than Value.
	LessThan ConditionKind = iota
	// GreaterThanOrEqual requires the feature value to be at least Value.
	GreaterThanOrEqual
)

// Condition is one bound on a single feature. A Predicate's entry for a
// feature is the conjunction of all its Conditions.
type Condition struct {
	Kind  ConditionKind
	Value float64
}

// Predicate is a conjunction of per-feature bounds used to prune a tree:
// any feature vector violating any one of its conditions can never be
// produced by a caller respecting the predicate, so branches that are
// only reachable under a violated condition are dead weight.
type Predicate struct {
	conditions map[string][]Condition
}

// NewPredicate returns an empty predicate (no feature is bounded).
func NewPredicate() *Predicate {
	return &Predicate{conditions: make(map[string][]Condition)}
}

// AddCondition appends a bound on feature, returning the same predicate so
// calls can be chained.
func (p *Predicate) AddCondition(feature string, kind ConditionKind, value float64) *Predicate {
	p.conditions[feature] = append(p.conditions[feature], Condition{Kind: kind, Value: value})
	return p
}

// Conditions returns the bounds recorded for feature, or nil if none.
func (p *Predicate) Conditions(feature string) []Condition {
	return p.conditions[feature]
}

// AutoPredicate derives a predicate from the observed range of every
// float64 column in batch whose name appears in featureNames, bounding
// each such feature to [min, max]. Non-float64 columns (Int64Column,
// BooleanColumn) are skipped, as are columns whose name has no match in
// featureNames. The upper bound is nudged up by one ULP before being
// recorded as a LessThan condition so that the row which produced the
// observed maximum is not itself pruned away by its own derived bound.
func AutoPredicate(batch *Batch, featureNames []string) *Predicate {
	wanted := make(map[string]bool, len(featureNames))
	for _, name := range featureNames {
		wanted[name] = true
	}

	p := NewPredicate()
	for i, name := range batch.Names {
		if !wanted[name] {
			continue
		}
		col, ok := batch.Columns[i].(*Float64Column)
		if !ok {
			continue
		}
		n := col.Len()
		if n == 0 {
			continue
		}

		min := math.Inf(1)
		max := math.Inf(-1)
		seen := false
		for r := 0; r < n; r++ {
			v, ok := col.Float64At(r)
			if !ok {
				continue
			}
			seen = true
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		if !seen {
			continue
		}

		p.AddCondition(name, GreaterThanOrEqual, min)
		p.AddCondition(name, LessThan, math.Nextafter(max, math.Inf(1)))
	}
	return p
}
