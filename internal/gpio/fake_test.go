package gpio

import (
	"errors"
	"testing"
)

func TestFakeInputDeliversChanges(t *testing.T) {
	f := NewFakeInput()

	go func() {
		f.Change(true)
		f.Change(false)
	}()

	<-f.Changes()
	level, err := f.Level()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !level {
		t.Error("first change: expected pressed")
	}

	<-f.Changes()
	level, err = f.Level()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level {
		t.Error("second change: expected released")
	}
}

func TestFakeInputPairsLevelWithNotification(t *testing.T) {
	f := NewFakeInput()

	// A Level read between two Change calls must consume exactly the
	// level queued with its own notification: the later release is
	// still observed by the second read.
	go f.Change(true)
	<-f.Changes()
	level, err := f.Level()
	if err != nil {
		t.Fatalf("press read: %v", err)
	}
	if !level {
		t.Error("press read: expected pressed")
	}

	go f.Change(false)
	<-f.Changes()
	level, err = f.Level()
	if err != nil {
		t.Fatalf("release read: %v", err)
	}
	if level {
		t.Error("release read: expected released")
	}
}

func TestFakeInputRepeatsLastLevel(t *testing.T) {
	f := NewFakeInput()
	go f.Change(true)
	<-f.Changes()

	for i := 0; i < 3; i++ {
		level, err := f.Level()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if !level {
			t.Errorf("read %d: expected last level to repeat", i)
		}
	}
}

func TestFakeInputNoScript(t *testing.T) {
	f := NewFakeInput()
	if _, err := f.Level(); err == nil {
		t.Error("expected error with no scripted levels")
	}
}

func TestFakeInputLevelError(t *testing.T) {
	f := NewFakeInput()
	f.LevelError = errors.New("simulated error")

	if _, err := f.Level(); err == nil {
		t.Error("expected simulated error")
	}
}

func TestFakeInputClose(t *testing.T) {
	f := NewFakeInput()

	if err := f.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.Closed {
		t.Error("should be closed after Close()")
	}
	if _, ok := <-f.Changes(); ok {
		t.Error("changes channel should be closed")
	}
}
