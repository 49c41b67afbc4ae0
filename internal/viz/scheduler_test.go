package viz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeaSchedulerChain(t *testing.T) {
	s := newTeaScheduler()
	ticks := 0
	cancel := s.Schedule(time.Millisecond, func() { ticks++ })

	require.NotNil(t, s.pending())
	assert.Nil(t, s.pending(), "a schedule starts once")

	msg := tickMsg{gen: s.gen}
	assert.NotNil(t, s.deliver(msg))
	assert.NotNil(t, s.deliver(msg))
	assert.Equal(t, 2, ticks)

	cancel()
	assert.Nil(t, s.deliver(msg))
	assert.Equal(t, 2, ticks)
}

func TestTeaSchedulerDropsStaleGenerations(t *testing.T) {
	s := newTeaScheduler()
	var first, second int
	s.Schedule(time.Millisecond, func() { first++ })
	stale := tickMsg{gen: s.gen}
	s.Schedule(time.Millisecond, func() { second++ })

	assert.Nil(t, s.deliver(stale))
	assert.NotNil(t, s.deliver(tickMsg{gen: s.gen}))
	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}

func TestTeaSchedulerCancelInsideTick(t *testing.T) {
	s := newTeaScheduler()
	var cancel func()
	cancel = s.Schedule(time.Millisecond, func() { cancel() })

	assert.Nil(t, s.deliver(tickMsg{gen: s.gen}))
	assert.Nil(t, s.pending())
}

func TestTeaSchedulerOldCancelIsHarmless(t *testing.T) {
	s := newTeaScheduler()
	oldCancel := s.Schedule(time.Millisecond, func() {})
	s.Schedule(time.Millisecond, func() {})
	gen := s.gen

	oldCancel()

	assert.Equal(t, gen, s.gen)
	assert.NotNil(t, s.deliver(tickMsg{gen: gen}))
}
