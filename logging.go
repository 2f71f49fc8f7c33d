package xgbtrees

import "github.com/sirupsen/logrus"

// SetLogLevel adjusts the package's standard logrus logger. Loader
// diagnostics (missing or unparseable base_score) log at debug level, so
// they are silent at logrus's default info level unless a caller opts in.
// Ensemble.Describe logs at info level.
func SetLogLevel(level logrus.Level) {
	logrus.SetLevel(level)
}
