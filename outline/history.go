package outline

// EditHistory owns the live outline and the undo/redo snapshot stacks.
// Every mutation goes through Commit; Undo and Redo move snapshots between
// the stacks. All snapshots are deep copies: mutating the live outline
// after a snapshot was taken never changes the snapshot, and callers must
// treat the slice returned by Current as read-only.
type EditHistory struct {
	current []Slide
	undo    [][]Slide
	redo    [][]Slide
}

// NewEditHistory starts with an empty outline and empty stacks.
func NewEditHistory() *EditHistory {
	return &EditHistory{}
}

// Current returns the live outline. Callers mutate it only via Commit.
func (h *EditHistory) Current() []Slide { return h.current }

// UndoDepth reports how many undo steps are available.
func (h *EditHistory) UndoDepth() int { return len(h.undo) }

// RedoDepth reports how many redo steps are available.
func (h *EditHistory) RedoDepth() int { return len(h.redo) }

// Commit replaces the live outline with next: the old outline is pushed
// onto the undo stack and the redo stack is cleared. The stored outline is
// a deep copy, so the caller keeps ownership of next.
func (h *EditHistory) Commit(next []Slide) {
	h.undo = append(h.undo, CloneSlides(h.current))
	h.current = CloneSlides(next)
	h.redo = nil
}

// Undo restores the previous outline, moving the live one onto the redo
// stack. It returns ErrNothingToUndo, without changing state, when the
// undo stack is empty.
func (h *EditHistory) Undo() ([]Slide, error) {
	if len(h.undo) == 0 {
		return nil, ErrNothingToUndo
	}
	h.redo = append(h.redo, CloneSlides(h.current))
	h.current = h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return h.current, nil
}

// Redo is the mirror of Undo.
func (h *EditHistory) Redo() ([]Slide, error) {
	if len(h.redo) == 0 {
		return nil, ErrNothingToRedo
	}
	h.undo = append(h.undo, CloneSlides(h.current))
	h.current = h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return h.current, nil
}
