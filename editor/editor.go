// Package editor is the incremental editing layer (spec.md §3, §6): a Document owns a single text
// buffer and the *ast.Script parsed from it, applies changes through parser.ApplyChange, and
// keeps an undo/redo history of the inverse edits needed to get back to any prior state. Modeled
// on the teacher's tview markdown_view.go's owned-buffer-plus-redraw shape, generalized from
// "buffer plus cached render lines" to "buffer plus cached Script plus undo history."
package editor

import (
	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/parser"
	"github.com/assforge/asstk/span"
)

// A change is one undoable edit: the forward edit as originally applied, and the inverse edit
// (the exact range and text needed to get back to the state before the forward edit was applied).
type change struct {
	forwardRange       span.Span
	forwardReplacement string
	inverseRange       span.Span
	inverseReplacement string
}

// A Document owns one ASS document's text buffer and parsed Script exclusively (spec.md §6: "The
// editor layer is the only place that mutates state, and it owns its text buffer exclusively").
// A Document is not safe for concurrent use; a caller sharing one across goroutines must wrap it
// in an external read-write lock, per the same section.
type Document struct {
	script    *ast.Script
	undoStack []change
	redoStack []change
}

// NewDocument parses source and returns a Document positioned at that initial state, with empty
// undo/redo history.
func NewDocument(source []byte) *Document {
	return &Document{script: parser.Parse(source)}
}

// Script returns the Document's current parsed state. The returned *ast.Script must not be
// mutated directly; all mutation goes through ApplyChange.
func (d *Document) Script() *ast.Script {
	return d.script
}

// ApplyChange replaces the bytes at editRange (in the current Script.Source's coordinates) with
// replacement, re-parses incrementally via parser.ApplyChange, records the inverse edit on the
// undo stack, and clears the redo stack (a fresh edit invalidates any previously undone history).
func (d *Document) ApplyChange(editRange span.Span, replacement string) parser.Delta {
	oldText := editRange.String(d.script.Source)
	newScript, delta := parser.ApplyChange(d.script, editRange, replacement)

	d.undoStack = append(d.undoStack, change{
		forwardRange:       editRange,
		forwardReplacement: replacement,
		inverseRange:       span.New(editRange.Start, editRange.Start+len(replacement)),
		inverseReplacement: oldText,
	})
	d.redoStack = nil
	d.script = newScript
	return delta
}

// CanUndo reports whether Undo would have an effect.
func (d *Document) CanUndo() bool { return len(d.undoStack) > 0 }

// CanRedo reports whether Redo would have an effect.
func (d *Document) CanRedo() bool { return len(d.redoStack) > 0 }

// Undo reverts the most recently applied change, returning the Delta the reverting edit produced
// and true, or a zero Delta and false if the undo stack is empty. Per spec.md §8,
// ApplyChange(range, replacement) followed by Undo yields a Script AST-equivalent to the one
// before ApplyChange ran.
func (d *Document) Undo() (parser.Delta, bool) {
	if len(d.undoStack) == 0 {
		return parser.Delta{}, false
	}
	last := len(d.undoStack) - 1
	c := d.undoStack[last]
	d.undoStack = d.undoStack[:last]

	newScript, delta := parser.ApplyChange(d.script, c.inverseRange, c.inverseReplacement)
	d.redoStack = append(d.redoStack, c)
	d.script = newScript
	return delta, true
}

// Redo reapplies the most recently undone change, returning the Delta it produced and true, or a
// zero Delta and false if the redo stack is empty.
func (d *Document) Redo() (parser.Delta, bool) {
	if len(d.redoStack) == 0 {
		return parser.Delta{}, false
	}
	last := len(d.redoStack) - 1
	c := d.redoStack[last]
	d.redoStack = d.redoStack[:last]

	newScript, delta := parser.ApplyChange(d.script, c.forwardRange, c.forwardReplacement)
	d.undoStack = append(d.undoStack, c)
	d.script = newScript
	return delta, true
}
