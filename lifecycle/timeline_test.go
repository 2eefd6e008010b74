package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineStepsCollection(t *testing.T) {
	steps := TimelineSteps(StatusPreparing, TypeCollection)
	require.Len(t, steps, 4)

	assert.Equal(t, StatusReceived, steps[0].Status)
	assert.Equal(t, StatusPreparing, steps[1].Status)
	assert.Equal(t, StatusReady, steps[2].Status)
	assert.Equal(t, StatusCompleted, steps[3].Status)

	assert.True(t, steps[0].IsComplete)
	assert.True(t, steps[1].IsComplete)
	assert.False(t, steps[2].IsComplete)
	assert.False(t, steps[3].IsComplete)

	assert.False(t, steps[0].IsCurrent)
	assert.True(t, steps[1].IsCurrent)
}

func TestTimelineStepsDelivery(t *testing.T) {
	steps := TimelineSteps(StatusOutForDelivery, TypeDelivery)
	require.Len(t, steps, 4)
	assert.Equal(t, StatusOutForDelivery, steps[2].Status)
	assert.True(t, steps[2].IsComplete)
	assert.True(t, steps[2].IsCurrent)
	assert.False(t, steps[3].IsComplete)
}

func TestTimelineNeverMixesOrderTypeBranches(t *testing.T) {
	for _, s := range []Status{StatusReceived, StatusPreparing, StatusReady, StatusCompleted} {
		for _, step := range TimelineSteps(s, TypeCollection) {
			assert.NotEqual(t, StatusOutForDelivery, step.Status)
		}
	}
	for _, s := range []Status{StatusReceived, StatusPreparing, StatusOutForDelivery, StatusCompleted} {
		for _, step := range TimelineSteps(s, TypeDelivery) {
			assert.NotEqual(t, StatusReady, step.Status)
		}
	}
}

func TestTimelineSuppressedWhenCancelled(t *testing.T) {
	assert.Nil(t, TimelineSteps(StatusCancelled, TypeCollection))
	assert.Nil(t, TimelineSteps(StatusCancelled, TypeDelivery))
}

func TestTimelineCompletedMarksAllSteps(t *testing.T) {
	for _, step := range TimelineSteps(StatusCompleted, TypeDelivery) {
		assert.True(t, step.IsComplete)
	}
}

func TestTimelineIsPure(t *testing.T) {
	a := TimelineSteps(StatusReady, TypeCollection)
	b := TimelineSteps(StatusReady, TypeCollection)
	assert.Equal(t, a, b)
}
