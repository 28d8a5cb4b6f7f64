// Package kalman implements the 1-dimensional Kalman filter node used by
// the belief grid to fuse repeated occupancy measurements of a cell into a
// single probability estimate.
//
// Adapted from kalmanfilter.net/kalman1d_pn.html, following
// original_source/src/util/filter.rs::KalmanNode.
package kalman

// DefaultCovariance is the initial covariance of a freshly constructed Node,
// matching the original's uninformative prior.
const DefaultCovariance = 1.0

// minDenominator floors the Kalman gain's denominator so an update with zero
// state covariance and zero measurement covariance does not divide by zero.
const minDenominator = 1e-6

// Node is a single-variable Kalman filter: a belief about a scalar state
// (here, a cell's occupancy probability) together with the filter's
// confidence in that belief.
type Node struct {
	State      float32
	Covariance float32
}

// New returns a Node with the zero-information default state and covariance.
func New() Node {
	return Node{State: 0, Covariance: DefaultCovariance}
}

// Update folds a new measurement, with its own measurement covariance, into
// the node's state and returns the updated state. A measurement_covariance
// of 0 represents a perfect measurement and drives the gain to 1; the node's
// own covariance shrinks in proportion to how much it trusted the
// measurement.
func (n *Node) Update(measurement, measurementCovariance float32) float32 {
	denom := n.Covariance + measurementCovariance
	if denom < minDenominator {
		denom = minDenominator
	}
	gain := n.Covariance / denom
	n.State += gain * (measurement - n.State)
	n.Covariance *= 1 - gain
	return n.State
}
