package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerScheduler_RunsTask(t *testing.T) {
	s := NewTimerScheduler()
	done := make(chan struct{})

	s.Schedule("INC-0001", time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task was not executed")
	}
	assert.Eventually(t, func() bool { return s.pending("INC-0001") == 0 }, time.Second, 5*time.Millisecond)
}

func TestTimerScheduler_Cancel(t *testing.T) {
	s := NewTimerScheduler()
	var fired int32

	s.Schedule("INC-0001", time.Hour, func() { atomic.AddInt32(&fired, 1) })
	s.Schedule("INC-0001", time.Hour, func() { atomic.AddInt32(&fired, 1) })
	s.Schedule("INC-0002", time.Hour, func() { atomic.AddInt32(&fired, 1) })

	assert.Equal(t, 2, s.Cancel("INC-0001"))
	assert.Equal(t, 0, s.pending("INC-0001"))
	assert.Equal(t, 1, s.pending("INC-0002"))
	assert.Equal(t, 0, s.Cancel("unknown"))

	s.Stop()
	assert.Equal(t, 0, s.pending("INC-0002"))
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}
