package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 10, 20, 100*time.Millisecond)
	if s.TotalGenerations != 1 || s.AveragePopulation != 20 || s.Growth != 10 {
		t.Fatalf("after first update: %+v", s)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 20, 10, 0)
	if s.Decline != 10 || s.GenerationsPerSecond != 10 {
		t.Fatalf("after second update: %+v", s)
	}
	if want := 20*0.9 + 10*0.1; s.AveragePopulation != want {
		t.Fatalf("AveragePopulation = %v, want %v", s.AveragePopulation, want)
	}
}
