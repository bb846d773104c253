package model

import (
	"sync"
	"testing"
)

func TestSharedAdvanceIsAtomicForReaders(t *testing.T) {
	g := mustGrid(t, 5, 5)
	_ = AddBlinker(g, 2, 1)
	s := NewShared(g)

	vertical := ".....\n..O..\n..O..\n..O..\n.....\n"
	horizontal := ".....\n.....\n.OOO.\n.....\n.....\n"

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				if r := s.Render(); r != vertical && r != horizontal {
					t.Errorf("reader observed an intermediate state:\n%s", r)
					return
				}
				if n, _ := s.NeighborCount(2, 2); n != 2 {
					t.Errorf("NeighborCount(2, 2) = %d, expected 2 in both phases", n)
					return
				}
				if p := s.Population(); p != 3 {
					t.Errorf("Population() = %d, expected 3", p)
					return
				}
			}
		}()
	}
	for range 50 {
		s.Advance()
	}
	wg.Wait()

	if s.Generation() != 50 {
		t.Fatalf("Generation() = %d, expected 50", s.Generation())
	}
	if s.Render() != horizontal {
		t.Fatalf("after an even number of generations got:\n%s", s.Render())
	}
}

func TestSharedAccessors(t *testing.T) {
	s := NewShared(mustGrid(t, 3, 3))
	if err := s.SetAlive(1, 1); err != nil {
		t.Fatalf("SetAlive: %v", err)
	}
	if alive, err := s.IsAlive(1, 1); err != nil || !alive {
		t.Fatalf("IsAlive(1, 1) = %v, %v, expected true", alive, err)
	}
	if _, err := s.IsAlive(3, 0); err == nil {
		t.Fatalf("IsAlive(3, 0) succeeded, expected an error")
	}
}
