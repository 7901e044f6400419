package progress

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"charm.land/bubbles/v2/spinner"
	"github.com/stretchr/testify/assert"
)

func TestRunDisabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	called := false
	err := Run(&buf, false, "fetching", func() error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, buf.String())
}

func TestRunDisabledPropagatesError(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	err := Run(&bytes.Buffer{}, false, "pushing", func() error { return want })
	assert.ErrorIs(t, err, want)
}

func TestActivityStopWithoutStart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := NewActivity(&buf, "idle")
	a.Relabel("still idle")
	a.Stop()

	assert.Empty(t, buf.String())
	assert.Equal(t, "still idle", a.Label())
}

func TestActivityModelLine(t *testing.T) {
	t.Parallel()

	m := activityModel{spin: spinner.New(), label: "Fetching origin..."}

	assert.Contains(t, m.line(0), "Fetching origin...")
	assert.NotContains(t, m.line(500*time.Millisecond), "0s")
	assert.Contains(t, m.line(2500*time.Millisecond), "2s")

	next, _ := m.Update(labelMsg("Pulling origin..."))
	assert.Contains(t, next.(activityModel).line(0), "Pulling origin...")

	assert.Empty(t, activityModel{spin: spinner.New()}.line(time.Minute))
}
