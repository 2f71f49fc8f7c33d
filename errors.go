// Package xgbtrees provides pure-Go XGBoost regression-model loading,
// inference, and predicate-driven tree pruning.
package xgbtrees

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the builder, loader, and predictor. Wrap
// these with fmt.Errorf("...: %w", ...) where structured detail is useful;
// callers should compare with errors.Is against the sentinel.
var (
	// ErrMissingFeatureNames is returned by FeatureTreeBuilder.Build when
	// no feature names were supplied.
	ErrMissingFeatureNames = errors.New("xgbtrees: feature names must be provided")

	// ErrMissingFeatureTypes is returned by FeatureTreeBuilder.Build when
	// no feature types were supplied.
	ErrMissingFeatureTypes = errors.New("xgbtrees: feature types must be provided")

	// ErrLengthMismatch is returned when feature_names and feature_types
	// disagree in length. A length mismatch among the builder's parallel
	// node arrays is reported as *InvalidStructureError instead.
	ErrLengthMismatch = errors.New("xgbtrees: length mismatch")

	// ErrInvalidFeatureIndex is returned when a split node references a
	// feature index outside the feature metadata's bounds.
	ErrInvalidFeatureIndex = errors.New("xgbtrees: invalid feature index")

	// ErrModelParse indicates a malformed or missing field in the XGBoost
	// JSON model schema.
	ErrModelParse = errors.New("xgbtrees: model parse error")

	// ErrUnsupportedObjective indicates a recognized-but-unimplemented
	// learner objective (only "reg:squarederror" is supported).
	ErrUnsupportedObjective = errors.New("xgbtrees: unsupported objective")

	// ErrUnsupportedFeatureType indicates a feature_types entry outside
	// {float, int, i}.
	ErrUnsupportedFeatureType = errors.New("xgbtrees: unsupported feature type")

	// ErrSchemaMismatch indicates a batch column's dtype is not in the
	// supported set, or a named feature is missing during name-indexed
	// prediction.
	ErrSchemaMismatch = errors.New("xgbtrees: schema mismatch")
)

// InvalidStructureError wraps a tree-arena structural failure (a
// disconnected node, an out-of-range child index) with the reason the
// validator gave up.
type InvalidStructureError struct {
	Reason string
}

func (e *InvalidStructureError) Error() string {
	return fmt.Sprintf("xgbtrees: invalid tree structure: %s", e.Reason)
}

func (e *InvalidStructureError) Unwrap() error {
	return errInvalidStructure
}

var errInvalidStructure = errors.New("xgbtrees: invalid tree structure")

// ModelError wraps ErrModelParse with the JSON path that was missing or
// malformed.
type ModelError struct {
	Path string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%v: %s", ErrModelParse, e.Path)
}

func (e *ModelError) Unwrap() error {
	return ErrModelParse
}

// ObjectiveError wraps ErrUnsupportedObjective with the objective string
// found in the model.
type ObjectiveError struct {
	Objective string
}

func (e *ObjectiveError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedObjective, e.Objective)
}

func (e *ObjectiveError) Unwrap() error {
	return ErrUnsupportedObjective
}

// FeatureTypeError wraps ErrUnsupportedFeatureType with the offending
// feature_types entry.
type FeatureTypeError struct {
	Type string
}

func (e *FeatureTypeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedFeatureType, e.Type)
}

func (e *FeatureTypeError) Unwrap() error {
	return ErrUnsupportedFeatureType
}

// SchemaMismatchError wraps ErrSchemaMismatch with a human-readable detail.
type SchemaMismatchError struct {
	Detail string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSchemaMismatch, e.Detail)
}

func (e *SchemaMismatchError) Unwrap() error {
	return ErrSchemaMismatch
}
