package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_KeepsOrder(t *testing.T) {
	rec := &Recorder{}
	rec.Log("one")
	rec.Error("two")
	rec.Log("three")

	assert.Equal(t, []Entry{
		{Level: LevelInfo, Message: "one"},
		{Level: LevelError, Message: "two"},
		{Level: LevelInfo, Message: "three"},
	}, rec.Entries())
	assert.Equal(t, []string{"two"}, rec.Errors())
	assert.Equal(t, 2, rec.Count(LevelInfo, ""))
}

func TestTee_FansOut(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	d := Tee(a, b)

	d.Log("hello")
	d.Error("oops")

	assert.Equal(t, a.Entries(), b.Entries())
	assert.Len(t, a.Entries(), 2)
}
