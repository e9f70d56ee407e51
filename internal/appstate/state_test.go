package appstate

import (
	"sync"
	"testing"
)

func TestBeginQuitWinsOnce(t *testing.T) {
	s := New()

	if s.Quitting() {
		t.Fatal("fresh state should not be quitting")
	}

	if !s.BeginQuit() {
		t.Error("first BeginQuit should win")
	}
	if s.BeginQuit() {
		t.Error("second BeginQuit should not win")
	}
	if !s.Quitting() {
		t.Error("state should be quitting after BeginQuit")
	}
}

func TestBeginQuitConcurrent(t *testing.T) {
	s := New()

	const callers = 32
	var wg sync.WaitGroup
	wins := make(chan bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- s.BeginQuit()
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for w := range wins {
		if w {
			won++
		}
	}
	if won != 1 {
		t.Errorf("expected exactly 1 winner, got %d", won)
	}
	if !s.Quitting() {
		t.Error("state should be quitting")
	}
}

func TestQuittingNeverResets(t *testing.T) {
	s := New()
	s.BeginQuit()

	// 重复调用不应改变终态
	for i := 0; i < 10; i++ {
		s.BeginQuit()
		if !s.Quitting() {
			t.Fatal("quitting flag must never return to false")
		}
	}
}
