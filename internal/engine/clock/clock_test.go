package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTime advances by a fixed step on every read.
type fakeTime struct {
	t    time.Time
	step time.Duration
}

func (f *fakeTime) now() time.Time {
	f.t = f.t.Add(f.step)
	return f.t
}

func TestTickReturnsElapsedSincePreviousTick(t *testing.T) {
	src := &fakeTime{t: time.Unix(0, 0), step: 10 * time.Millisecond}
	c := NewWithSource(src.now)

	assert.InDelta(t, 0.010, c.Tick(), 1e-6)
	assert.InDelta(t, 0.010, c.Tick(), 1e-6)
}

func TestRunTimeDoesNotReset(t *testing.T) {
	src := &fakeTime{t: time.Unix(0, 0), step: 250 * time.Millisecond}
	c := NewWithSource(src.now)

	assert.InDelta(t, 0.25, c.RunTime(), 1e-6)
	assert.InDelta(t, 0.50, c.RunTime(), 1e-6)
}

func TestTickSumMatchesRunTime(t *testing.T) {
	src := &fakeTime{t: time.Unix(100, 0)}
	c := NewWithSource(src.now)

	steps := []time.Duration{
		16 * time.Millisecond,
		17 * time.Millisecond,
		time.Millisecond,
		0,
		33 * time.Millisecond,
		250 * time.Microsecond,
	}

	var sum float32
	for _, step := range steps {
		src.t = src.t.Add(step)
		dt := c.Tick()
		require.GreaterOrEqual(t, dt, float32(0))
		sum += dt
	}

	assert.InDelta(t, c.RunTime(), sum, 1e-5)
}

func TestTickSumMatchesRunTimeWallClock(t *testing.T) {
	c := New()

	var sum float32
	for i := 0; i < 5; i++ {
		time.Sleep(time.Millisecond)
		dt := c.Tick()
		require.GreaterOrEqual(t, dt, float32(0))
		sum += dt
	}

	assert.InDelta(t, c.RunTime(), sum, 0.005)
}

func TestTickNeverNegative(t *testing.T) {
	times := []time.Time{time.Unix(10, 0), time.Unix(9, 0)}
	i := 0
	c := NewWithSource(func() time.Time {
		tm := times[i]
		if i < len(times)-1 {
			i++
		}
		return tm
	})

	assert.Equal(t, float32(0), c.Tick())
}
