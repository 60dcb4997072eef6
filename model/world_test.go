package model

import (
	"sync"
	"testing"

	"github.com/sheikhrachel/go-life/utils"
)

func TestWorldAdvanceMatchesStep(t *testing.T) {
	seed, err := RandomSeed(24, 0.3, utils.NewRand(5))
	if err != nil {
		t.Fatalf("RandomSeed: %v", err)
	}

	configs := map[string][]Option{
		"sequential": nil,
		"pooled":     {WithPool(NewGridPool())},
		"parallel":   {WithPool(NewGridPool()), WithWorkers(4)},
	}

	for name, opts := range configs {
		t.Run(name, func(t *testing.T) {
			expected := seed.Clone()
			world := NewWorld(seed.Clone(), opts...)

			for gen := 1; gen <= 10; gen++ {
				if err := world.Advance(); err != nil {
					t.Fatalf("Advance: %v", err)
				}
				expected = Step(expected)
				if !world.Current().Equal(expected) {
					t.Fatalf("generation %d differs from Step", gen)
				}
				if world.Generation() != gen {
					t.Fatalf("Generation() = %d, want %d", world.Generation(), gen)
				}
				if world.Population() != expected.CountLivingCells() {
					t.Fatalf("Population() = %d, want %d", world.Population(), expected.CountLivingCells())
				}
			}
		})
	}
}

func TestWorldCurrentSurvivesNextAdvance(t *testing.T) {
	world := NewWorld(gridWith(t, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}), WithPool(NewGridPool()))

	held := world.Current()
	snapshot := held.Clone()
	if err := world.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !held.Equal(snapshot) {
		t.Fatalf("grid from Current changed after one Advance")
	}
}

func TestWorldSnapshotIsPrivate(t *testing.T) {
	world := NewWorld(gridWith(t, 4, [2]int{0, 0}))
	snap := world.Snapshot()
	snap.Set(3, 3, true)
	if world.Current().Get(3, 3) {
		t.Fatalf("mutating Snapshot changed the world")
	}
}

func TestWorldStagnation(t *testing.T) {
	block := NewWorld(gridWith(t, 6, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2}))
	if block.IsStagnant() {
		t.Fatalf("fresh world should not be stagnant")
	}
	if err := block.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !block.IsStagnant() {
		t.Fatalf("block still life should be stagnant")
	}

	blinker := NewWorld(gridWith(t, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}))
	if err := blinker.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if blinker.IsStagnant() {
		t.Fatalf("blinker should not look stagnant after one step")
	}
	if err := blinker.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !blinker.IsStagnant() {
		t.Fatalf("blinker period-2 cycle should be stagnant")
	}

	glider := MustNewGrid(16)
	if err := SeedPattern(glider, Glider, 1, 1, false); err != nil {
		t.Fatalf("SeedPattern: %v", err)
	}
	moving := NewWorld(glider)
	for range 8 {
		if err := moving.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if moving.IsStagnant() {
			t.Fatalf("glider should never be stagnant")
		}
	}
}

func TestWorldReset(t *testing.T) {
	world := NewWorld(gridWith(t, 5, [2]int{2, 2}))
	firstRun := world.RunID()
	if err := world.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	next := gridWith(t, 5, [2]int{0, 0}, [2]int{0, 1})
	world.Reset(next)

	if world.RunID() == firstRun {
		t.Fatalf("Reset should issue a new run ID")
	}
	if world.Generation() != 0 || world.Population() != 2 || world.Current() != next {
		t.Fatalf("Reset state gen=%d pop=%d", world.Generation(), world.Population())
	}
	if world.IsStagnant() {
		t.Fatalf("Reset should clear history")
	}
}

func TestWorldConcurrentReaders(t *testing.T) {
	seed, err := RandomSeed(32, 0.3, utils.NewRand(11))
	if err != nil {
		t.Fatalf("RandomSeed: %v", err)
	}
	world := NewWorld(seed, WithWorkers(2))

	var (
		wg   sync.WaitGroup
		done = make(chan struct{})
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				if g := world.Current(); g.Size() != 32 {
					t.Errorf("reader saw size %d", g.Size())
					return
				}
				_ = world.Population()
				_ = world.Generation()
			}
		}()
	}

	for range 20 {
		if err := world.Advance(); err != nil {
			t.Errorf("Advance: %v", err)
			break
		}
	}
	close(done)
	wg.Wait()
}
