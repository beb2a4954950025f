package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.False(t, tracker.Contains("a.txt"))
}

func TestTracker_TrackName(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackName("a.txt"))
	require.NoError(t, tracker.TrackName(`sub\b.bin`))

	require.True(t, tracker.Contains("A.TXT"))
	require.True(t, tracker.Contains(`SUB\B.bin`))
	require.False(t, tracker.Contains("c.txt"))
}

func TestTracker_TrackName_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackName(`Data\Hero.mod`))

	err := tracker.TrackName(`DATA\hero.MOD`)
	require.ErrorIs(t, err, errs.ErrNameExists)
	require.ErrorIs(t, err, errs.ErrInvalidOperation)
}

func TestTracker_CyrillicCaseDistinct(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackName("А"))
	require.NoError(t, tracker.TrackName("а"))
	require.True(t, tracker.Contains("А"))
	require.True(t, tracker.Contains("а"))
}
