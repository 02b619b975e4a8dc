package testutil

import (
	"sync"
	"testing"
	"time"
)

func TestDeterministicClock_StartsAtEpoch(t *testing.T) {
	clk := NewDeterministicClock()
	if got := clk.Now(); !got.Equal(Epoch) {
		t.Errorf("first Now() = %v, want %v", got, Epoch)
	}
}

func TestDeterministicClock_StepsOneSecond(t *testing.T) {
	clk := NewDeterministicClock()
	first := clk.Now()
	second := clk.Now()

	if diff := second.Sub(first); diff != time.Second {
		t.Errorf("step = %v, want %v", diff, time.Second)
	}
}

func TestDeterministicClock_CurrentDoesNotAdvance(t *testing.T) {
	clk := NewDeterministicClock()
	if got := clk.Current(); !got.Equal(Epoch) {
		t.Errorf("Current() = %v, want %v", got, Epoch)
	}
	if got := clk.Now(); !got.Equal(Epoch) {
		t.Errorf("Now() after Current() = %v, want %v", got, Epoch)
	}
}

func TestDeterministicClock_Reset(t *testing.T) {
	clk := NewDeterministicClock()
	clk.Now()
	clk.Now()
	clk.Reset()

	if got := clk.Now(); !got.Equal(Epoch) {
		t.Errorf("Now() after Reset() = %v, want %v", got, Epoch)
	}
}

func TestDeterministicClock_ConcurrentReadingsDistinct(t *testing.T) {
	clk := NewDeterministicClock()

	const n = 50
	var wg sync.WaitGroup
	results := make([]time.Time, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = clk.Now()
		}(i)
	}
	wg.Wait()

	seen := make(map[time.Time]bool, n)
	for _, ts := range results {
		if seen[ts] {
			t.Fatalf("duplicate reading %v", ts)
		}
		seen[ts] = true
	}
}
