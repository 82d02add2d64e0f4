package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsInTimeOrder(t *testing.T) {
	s := NewScheduler()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var order []int
	s.At(base.Add(300*time.Millisecond), 0, 0, func() { order = append(order, 3) })
	s.At(base.Add(100*time.Millisecond), 0, 0, func() { order = append(order, 1) })
	s.At(base.Add(200*time.Millisecond), 0, 0, func() { order = append(order, 2) })
	s.At(base.Add(200*time.Millisecond), 0, 0, func() { order = append(order, 22) })

	assert.Equal(t, 0, s.Pump(base, nil))
	assert.Equal(t, 3, s.Pump(base.Add(250*time.Millisecond), nil))
	assert.Equal(t, []int{1, 2, 22}, order)
	assert.Equal(t, 1, s.Len())

	assert.Equal(t, 1, s.Pump(base.Add(300*time.Millisecond), nil), "due exactly at deadline")
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerDropsStaleTimers(t *testing.T) {
	s := NewScheduler()
	now := time.Unix(0, 0)
	ran := false
	s.At(now, 7, 1, func() { ran = true })

	n := s.Pump(now, func(id EntityID, gen uint64) bool { return id == 7 && gen == 2 })
	assert.Zero(t, n)
	assert.False(t, ran)
	assert.Zero(t, s.Len(), "stale timers are discarded, not retried")
}

func TestSchedulerCallbackCanSchedule(t *testing.T) {
	s := NewScheduler()
	now := time.Unix(0, 0)
	count := 0
	s.At(now, 0, 0, func() {
		count++
		s.At(now, 0, 0, func() { count++ })
	})

	assert.Equal(t, 2, s.Pump(now, nil))
	assert.Equal(t, 2, count)
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	s.At(time.Unix(0, 0), 0, 0, func() { t.Fatal("cleared timer ran") })
	s.Clear()
	assert.Zero(t, s.Pump(time.Unix(10, 0), nil))
}
