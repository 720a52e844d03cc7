// Package rename implements the interactive rename of command-line arguments.
//
// A [Session] handles one argument at a time: it splits the path, seeds the
// line editor with the filename, validates what the user submits and renames
// the file. A [Runner] feeds the arguments to the session in order and stops
// at the first failure.
//
// # Outcomes
//
// Every processed argument yields a [Result] whose [Outcome] is Renamed,
// Skipped or Failed. Skipping is not an error: an argument that is empty
// once trailing slashes are removed is skipped silently, and an empty new
// name is skipped with a notice on standard output. Failures are printed to
// standard error by the session before the result is returned.
//
// Two conditions bypass outcomes and end the run at once: the editor
// returning no line at all ([ErrNoInput]) and internal assertion failures.
package rename
