package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.CollisionCount())
	require.Equal(t, 0, tracker.DuplicateCount())
	require.False(t, tracker.HasCollisions())
}

func TestTracker_Observe_NoCollision(t *testing.T) {
	tracker := NewTracker()

	tracker.Observe(111, "name")
	tracker.Observe(222, "other")

	require.False(t, tracker.HasCollisions())
	require.Equal(t, 0, tracker.CollisionCount())
	require.Equal(t, 0, tracker.DuplicateCount())
}

func TestTracker_Observe_Duplicate(t *testing.T) {
	tracker := NewTracker()

	tracker.Observe(111, "name")
	tracker.Observe(111, "name")

	require.False(t, tracker.HasCollisions())
	require.Equal(t, 1, tracker.DuplicateCount())
}

func TestTracker_Observe_Collision(t *testing.T) {
	tracker := NewTracker()

	// "Aa" and "BB" are a well-known polynomial-31 hash collision pair.
	tracker.Observe(2112, "Aa")
	tracker.Observe(2112, "BB")

	require.True(t, tracker.HasCollisions())
	require.Equal(t, 1, tracker.CollisionCount())
	require.Equal(t, 0, tracker.DuplicateCount())
}

func TestTracker_Observe_MultipleCollisions(t *testing.T) {
	tracker := NewTracker()

	tracker.Observe(1, "metric1")
	tracker.Observe(1, "metric2")
	tracker.Observe(2, "metric3")
	tracker.Observe(2, "metric4")

	require.True(t, tracker.HasCollisions())
	require.Equal(t, 2, tracker.CollisionCount())
}
