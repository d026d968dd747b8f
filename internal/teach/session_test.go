package teach

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armpress/internal/arm"
	"armpress/internal/device"
	"armpress/internal/positions"
)

func newTestSession(t *testing.T, input string) (*Session, *device.MockClient, *positions.Store) {
	t.Helper()
	mock := device.NewMockClient()
	store := positions.NewStore(t.TempDir())
	ctrl := arm.NewWithOptions(arm.Options{
		Client: mock,
		Store:  store,
		Sleep:  func(time.Duration) {},
	})
	return &Session{
		In:         strings.NewReader(input),
		Out:        &bytes.Buffer{},
		Controller: ctrl,
		Store:      store,
	}, mock, store
}

func TestTeachSaveImmediately(t *testing.T) {
	s, mock, store := newTestSession(t, "s")

	saved, err := s.Teach(context.Background(), "like")
	require.NoError(t, err)
	assert.True(t, saved)

	pose, err := store.Get("like")
	require.NoError(t, err)
	assert.Equal(t, arm.HomePose(), pose)

	// Only the initial positioning move.
	assert.Len(t, mock.MoveCalls(), 1)
}

func TestTeachNudgeAndSave(t *testing.T) {
	s, mock, store := newTestSession(t, "2+++s")

	saved, err := s.Teach(context.Background(), "volume_open")
	require.NoError(t, err)
	assert.True(t, saved)

	pose, err := store.Get("volume_open")
	require.NoError(t, err)
	assert.Equal(t, 105.0, pose[2], "servo 2 nudged up three times from 90")

	// Initial move plus three jogs.
	calls := mock.MoveCalls()
	require.Len(t, calls, 4)
	assert.Equal(t, 200*time.Millisecond, calls[1].Duration)
}

func TestTeachNudgeClampsAtLimits(t *testing.T) {
	// Servo 3 homes at 180; nudging up is a no-op.
	s, mock, store := newTestSession(t, "3+s")

	saved, err := s.Teach(context.Background(), "edge")
	require.NoError(t, err)
	assert.True(t, saved)

	pose, err := store.Get("edge")
	require.NoError(t, err)
	assert.Equal(t, 180.0, pose[3])
	assert.Len(t, mock.MoveCalls(), 1, "clamped nudge sends no command")
}

func TestTeachCancel(t *testing.T) {
	s, _, store := newTestSession(t, "2+q")

	saved, err := s.Teach(context.Background(), "like")
	require.NoError(t, err)
	assert.False(t, saved)

	_, err = store.Get("like")
	assert.Error(t, err)
}

func TestTeachCtrlCCancels(t *testing.T) {
	s, _, _ := newTestSession(t, "\x03")

	saved, err := s.Teach(context.Background(), "like")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestTeachInputClosed(t *testing.T) {
	s, _, _ := newTestSession(t, "")

	_, err := s.Teach(context.Background(), "like")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read key")
}

func TestTeachDialAllThreePositions(t *testing.T) {
	// Each step: any key to continue, then save immediately.
	s, _, store := newTestSession(t, " s s s")

	saved, err := s.TeachDial(context.Background(), "volume")
	require.NoError(t, err)
	assert.True(t, saved)

	names, err := store.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"volume_closed", "volume_open", "volume_turned"}, names)
}

func TestTeachDialCancelMidway(t *testing.T) {
	s, _, store := newTestSession(t, " s q")

	saved, err := s.TeachDial(context.Background(), "bass")
	require.NoError(t, err)
	assert.False(t, saved)

	names, err := store.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"bass_open"}, names, "only the first position was saved")
}
