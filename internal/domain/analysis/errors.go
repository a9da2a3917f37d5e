package analysis

import "errors"

var (
	// ErrUndefinedCorrelation is returned when fewer than two players are compared or a
	// metric has no variance.
	ErrUndefinedCorrelation = errors.New("correlation undefined")
	// ErrUnknownMetric is returned when a metric is not part of the scored profile.
	ErrUnknownMetric = errors.New("metric not available in result")
)
