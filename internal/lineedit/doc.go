// Package lineedit adapts golang.org/x/term's line editor for modname.
//
// An [Editor] offers the two capabilities the rename session needs: seeding
// the edit buffer with the current filename and reading back the edited line.
// Seeding works like readline's rl_stuff_char: the text is queued in front of
// the terminal input and consumed as if the user had typed it, so every
// editing key x/term supports (arrows, Home/End, Ctrl-W, Ctrl-U, history
// navigation) applies to it.
//
// The history is owned by the caller through [History]: x/term's own
// recording of every submitted line is switched off and only names passed to
// [History.Record] are recalled with the arrow keys. Tab completion is
// provided by [Completer].
package lineedit
