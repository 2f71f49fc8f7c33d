package xgbtrees

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
)

// rawModel mirrors the subset of XGBoost's JSON model schema this package
// understands: learner.learner_model_param, learner.feature_names,
// learner.feature_types, and learner.gradient_booster.model.trees.
type rawModel struct {
	Learner struct {
		LearnerModelParam struct {
			BaseScore string `json:"base_score"`
			Objective string `json:"objective"`
		} `json:"learner_model_param"`
		FeatureNames []string `json:"feature_names"`
		FeatureTypes []string `json:"feature_types"`
		GradientBooster struct {
			Model struct {
				Trees []rawTree `json:"trees"`
			} `json:"model"`
		} `json:"gradient_booster"`
	} `json:"learner"`
}

type rawTree struct {
	SplitIndices    []int32   `json:"split_indices"`
	SplitConditions []float64 `json:"split_conditions"`
	LeftChildren    []uint32  `json:"left_children"`
	RightChildren   []uint32  `json:"right_children"`
	BaseWeights     []float64 `json:"base_weights"`
	DefaultLeft     []bool    `json:"default_left"`
}

// defaultBaseScore is used when learner_model_param.base_score is absent
// or cannot be parsed as a float.
const defaultBaseScore = 0.5

var supportedFeatureTypes = map[string]bool{
	"float": true,
	"int":   true,
	"i":     true,
}

// LoadModel parses an XGBoost JSON model document into an Ensemble.
//
// encoding/json is used rather than a third-party decoder: the schema is
// small, fully known ahead of time, and has no streaming or performance
// requirement that would justify pulling in an alternative.
func LoadModel(data []byte) (*Ensemble, error) {
	var raw rawModel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ModelError{Path: "learner: " + err.Error()}
	}

	if len(raw.Learner.FeatureNames) == 0 {
		return nil, &ModelError{Path: "learner.feature_names"}
	}
	if len(raw.Learner.FeatureTypes) == 0 {
		return nil, &ModelError{Path: "learner.feature_types"}
	}
	if len(raw.Learner.FeatureNames) != len(raw.Learner.FeatureTypes) {
		return nil, &ModelError{Path: "learner.feature_names/feature_types length mismatch"}
	}
	for _, ft := range raw.Learner.FeatureTypes {
		if !supportedFeatureTypes[ft] {
			return nil, &FeatureTypeError{Type: ft}
		}
	}

	objective, err := parseObjective(raw.Learner.LearnerModelParam.Objective)
	if err != nil {
		return nil, err
	}

	baseScore := defaultBaseScore
	if raw.Learner.LearnerModelParam.BaseScore != "" {
		if v, err := strconv.ParseFloat(raw.Learner.LearnerModelParam.BaseScore, 64); err == nil {
			baseScore = v
		} else {
			logrus.WithFields(logrus.Fields{
				"base_score": raw.Learner.LearnerModelParam.BaseScore,
			}).Debug("could not parse base_score, defaulting to 0.5")
		}
	} else {
		logrus.Debug("base_score absent, defaulting to 0.5")
	}

	trees := make([]*FeatureTree, len(raw.Learner.GradientBooster.Model.Trees))
	for i, rt := range raw.Learner.GradientBooster.Model.Trees {
		tree, err := Builder().
			FeatureNames(raw.Learner.FeatureNames).
			FeatureTypes(raw.Learner.FeatureTypes).
			SplitIndices(rt.SplitIndices).
			SplitConditions(rt.SplitConditions).
			Children(rt.LeftChildren, rt.RightChildren).
			BaseWeights(rt.BaseWeights).
			DefaultLeft(rt.DefaultLeft).
			Build()
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		trees[i] = tree
	}

	return NewEnsemble(trees, raw.Learner.FeatureNames, raw.Learner.FeatureTypes, baseScore, objective), nil
}
