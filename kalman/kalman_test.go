package kalman_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samplestar-go/samplestar/kalman"
)

func TestNodeUpdate(t *testing.T) {
	node := kalman.Node{State: 60.0, Covariance: 225.0}

	state := node.Update(49.03, 25.0)
	assert.InDelta(t, 50.127, state, 1e-3)
	assert.InDelta(t, 22.500006, node.Covariance, 1e-4)

	state = node.Update(48.44, 25.0)
	assert.InDelta(t, 49.327892, state, 1e-3)
	assert.InDelta(t, 11.842108, node.Covariance, 1e-4)
}

func TestNodeUpdateZeroDenominator(t *testing.T) {
	node := kalman.Node{State: 0, Covariance: 0}
	assert.Equal(t, float32(0), node.Update(0, 0))
}

func TestNewDefaults(t *testing.T) {
	n := kalman.New()
	assert.Equal(t, float32(0), n.State)
	assert.Equal(t, float32(kalman.DefaultCovariance), n.Covariance)
}
