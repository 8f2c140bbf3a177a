package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlow_SubmitGating(t *testing.T) {
	f := NewFlow(&Lock{})
	assert.False(t, f.CanSubmit())

	assert.True(t, f.Select(Result, Success))
	assert.False(t, f.CanSubmit(), "only Q1 answered")
	assert.False(t, f.Submit())

	assert.True(t, f.Select(Grit, Good))
	assert.True(t, f.CanSubmit())

	assert.True(t, f.Select(Result, Fail))
	assert.True(t, f.CanSubmit(), "changing Q1 keeps both answered")
	assert.Equal(t, Fail, f.Answer(Result))
	assert.Equal(t, Good, f.Answer(Grit))
}

func TestFlow_SelectIsExclusive(t *testing.T) {
	f := NewFlow(nil)
	f.Select(Result, Success)
	f.Select(Result, Fail)
	assert.Equal(t, Fail, f.Answer(Result))

	assert.False(t, f.Select(Result, Great), "option from the other question")
	assert.Equal(t, Fail, f.Answer(Result))
}

func TestFlow_SubmitOnceThenFrozen(t *testing.T) {
	lock := &Lock{}
	f := NewFlow(lock)
	f.Select(Result, Close)
	f.Select(Grit, Great)

	assert.True(t, f.Submit())
	assert.Equal(t, Sending, f.State())
	assert.False(t, f.Submit(), "resubmit while sending")
	assert.False(t, f.CanSubmit())
	assert.False(t, f.Select(Result, Success), "answers frozen")
	assert.Equal(t, Close, f.Answer(Result))

	assert.Equal(t, Locked, lock.State())
	assert.True(t, f.Complete())
	assert.Equal(t, Sent, f.State())
	assert.Equal(t, Unlocking, lock.State())

	assert.False(t, f.Submit(), "resubmit after sent")
	assert.False(t, f.Complete())
}

func TestLock_OneWay(t *testing.T) {
	var l Lock
	assert.False(t, l.Finish(), "finish before unlock")
	assert.True(t, l.Unlock())
	assert.False(t, l.Unlock())
	assert.True(t, l.Finish())
	assert.Equal(t, Unlocked, l.State())

	assert.False(t, l.Unlock())
	assert.False(t, l.Finish())
	assert.Equal(t, "unlocked", l.State().String())
}
