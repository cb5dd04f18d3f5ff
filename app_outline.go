package main

import (
	"fmt"

	"deckgen/outline"
)

// Slides returns the current outline snapshot.
func (a *App) Slides() []outline.Slide {
	return a.state.History.Current()
}

// AddSlide validates and appends one slide.
func (a *App) AddSlide(s outline.Slide) error {
	s = outline.Normalize(s)
	if err := outline.Validate(s); err != nil {
		return WrapError("Outline", "AddSlide", err)
	}
	next := outline.CloneSlides(a.state.History.Current())
	next = append(next, s)
	a.state.History.Commit(next)
	a.logger.Logf("added slide %q (%d total)", s.Title, len(next))
	return nil
}

// UpdateSlide validates and replaces the slide at index.
func (a *App) UpdateSlide(index int, s outline.Slide) error {
	cur := a.state.History.Current()
	if index < 0 || index >= len(cur) {
		return WrapError("Outline", "UpdateSlide", fmt.Errorf("slide index %d out of range", index))
	}
	s = outline.Normalize(s)
	if err := outline.Validate(s); err != nil {
		return WrapError("Outline", "UpdateSlide", err)
	}
	next := outline.CloneSlides(cur)
	next[index] = s
	a.state.History.Commit(next)
	return nil
}

// DeleteSlide removes the slide at index.
func (a *App) DeleteSlide(index int) error {
	cur := a.state.History.Current()
	if index < 0 || index >= len(cur) {
		return WrapError("Outline", "DeleteSlide", fmt.Errorf("slide index %d out of range", index))
	}
	next := outline.CloneSlides(cur)
	next = append(next[:index], next[index+1:]...)
	a.state.History.Commit(next)
	return nil
}

// DuplicateSlide inserts a deep copy of the slide right after itself.
func (a *App) DuplicateSlide(index int) error {
	cur := a.state.History.Current()
	if index < 0 || index >= len(cur) {
		return WrapError("Outline", "DuplicateSlide", fmt.Errorf("slide index %d out of range", index))
	}
	next := outline.CloneSlides(cur)
	dup := next[index].Clone()
	next = append(next[:index+1], append([]outline.Slide{dup}, next[index+1:]...)...)
	a.state.History.Commit(next)
	return nil
}

// MoveSlide moves the slide at from to position to, shifting the rest.
func (a *App) MoveSlide(from, to int) error {
	cur := a.state.History.Current()
	if from < 0 || from >= len(cur) || to < 0 || to >= len(cur) {
		return WrapError("Outline", "MoveSlide", fmt.Errorf("move %d -> %d out of range", from, to))
	}
	if from == to {
		return nil
	}
	next := outline.CloneSlides(cur)
	s := next[from]
	next = append(next[:from], next[from+1:]...)
	next = append(next[:to], append([]outline.Slide{s}, next[to:]...)...)
	a.state.History.Commit(next)
	return nil
}

// ClearSlides commits an empty outline. Undo restores the old one.
func (a *App) ClearSlides() {
	a.state.History.Commit(nil)
}

// LoadOutlineJSON replaces the whole outline from exchange-format JSON.
// Every slide must validate; one bad slide blocks the entire load and the
// current outline stays untouched.
func (a *App) LoadOutlineJSON(data []byte) error {
	slides, err := outline.ParseOutline(data)
	if err != nil {
		return WrapError("Outline", "LoadOutlineJSON", err)
	}
	for i := range slides {
		slides[i] = outline.Normalize(slides[i])
		if err := outline.Validate(slides[i]); err != nil {
			return WrapError("Outline", "LoadOutlineJSON",
				fmt.Errorf("slide %d: %w", i+1, err))
		}
	}
	a.state.History.Commit(slides)
	a.logger.Logf("loaded outline with %d slides", len(slides))
	return nil
}

// LoadDefaultOutline commits the built-in sample outline.
func (a *App) LoadDefaultOutline() error {
	slides, err := outline.DefaultOutline()
	if err != nil {
		return WrapError("Outline", "LoadDefaultOutline", err)
	}
	a.state.History.Commit(slides)
	return nil
}

// ExportOutlineJSON renders the current outline in the exchange format.
func (a *App) ExportOutlineJSON() ([]byte, error) {
	data, err := outline.MarshalOutline(a.state.History.Current())
	if err != nil {
		return nil, WrapError("Outline", "ExportOutlineJSON", err)
	}
	return data, nil
}

// Undo reverts the last committed outline edit.
func (a *App) Undo() error {
	if _, err := a.state.History.Undo(); err != nil {
		return WrapError("Outline", "Undo", err)
	}
	return nil
}

// Redo re-applies the last undone edit.
func (a *App) Redo() error {
	if _, err := a.state.History.Redo(); err != nil {
		return WrapError("Outline", "Redo", err)
	}
	return nil
}
