package outline

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func titled(titles ...string) []Slide {
	out := make([]Slide, len(titles))
	for i, title := range titles {
		out[i] = Slide{Title: title}
	}
	return out
}

func currentTitles(h *EditHistory) []string {
	cur := h.Current()
	out := make([]string, len(cur))
	for i, s := range cur {
		out[i] = s.Title
	}
	return out
}

func TestHistoryUndoRedoSequence(t *testing.T) {
	h := NewEditHistory()

	h.Commit(titled("a"))
	h.Commit(titled("a", "b"))
	h.Commit(titled("a", "b", "c"))

	if _, err := h.Undo(); err != nil {
		t.Fatalf("Undo() = %v", err)
	}
	if got := currentTitles(h); len(got) != 2 || got[1] != "b" {
		t.Fatalf("after undo: %v, want [a b]", got)
	}

	if _, err := h.Redo(); err != nil {
		t.Fatalf("Redo() = %v", err)
	}
	if got := currentTitles(h); len(got) != 3 || got[2] != "c" {
		t.Fatalf("after redo: %v, want [a b c]", got)
	}

	// A fresh commit clears the redo stack.
	if _, err := h.Undo(); err != nil {
		t.Fatal(err)
	}
	h.Commit(titled("a", "b", "d"))
	if _, err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("Redo() after commit = %v, want ErrNothingToRedo", err)
	}
}

func TestHistoryEmptyStacks(t *testing.T) {
	h := NewEditHistory()
	if _, err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() = %v, want ErrNothingToUndo", err)
	}
	if _, err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() = %v, want ErrNothingToRedo", err)
	}
}

func TestHistorySnapshotIsolation(t *testing.T) {
	h := NewEditHistory()
	slides := titled("a")
	slides[0].Bullets = []string{"original"}
	h.Commit(slides)

	// Mutating the caller's slice must not reach into the snapshot.
	slides[0].Bullets[0] = "mutated"
	if h.Current()[0].Bullets[0] != "original" {
		t.Error("committed snapshot shares memory with the caller's slice")
	}

	h.Commit(titled("b"))
	if _, err := h.Undo(); err != nil {
		t.Fatal(err)
	}
	if h.Current()[0].Bullets[0] != "original" {
		t.Error("undo snapshot was corrupted by a later mutation")
	}
}

// TestHistoryDepthInvariant checks that across any random sequence of
// commit/undo/redo operations, the total number of reachable states is
// conserved and undo always restores the exact previous snapshot.
func TestHistoryDepthInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := NewEditHistory()
		var commits int

		ops := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 40).Draw(t, "ops")
		for _, op := range ops {
			before := h.UndoDepth() + h.RedoDepth()
			switch op {
			case 0:
				title := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "title")
				h.Commit(titled(title))
				commits++
				if h.RedoDepth() != 0 {
					t.Fatal("commit must clear the redo stack")
				}
			case 1:
				_, err := h.Undo()
				if err == nil && h.UndoDepth()+h.RedoDepth() != before {
					t.Fatal("undo must conserve total stack depth")
				}
			case 2:
				_, err := h.Redo()
				if err == nil && h.UndoDepth()+h.RedoDepth() != before {
					t.Fatal("redo must conserve total stack depth")
				}
			}
		}
		if h.UndoDepth() > commits {
			t.Fatalf("undo depth %d exceeds commit count %d", h.UndoDepth(), commits)
		}
	})
}
