// Package paths splits filesystem paths into a directory and a filename
// component and joins them back together.
//
// Only the final path element is ever edited by modname, so the package works
// on plain strings with "/" as the separator rather than going through
// [path/filepath], whose Clean step would rewrite the directory part:
//
//	df := paths.Split("dir/dir/file") // {Directory: "dir/dir", Filename: "file"}
//	p, _ := paths.Join(df.Directory, "renamed") // "dir/dir/renamed"
//
// # Trailing Separators
//
// Callers strip trailing separators with [TrimTrailingSeparators] before
// splitting. A path that is empty after trimming (for example "//") has no
// filename to edit and is skipped upstream.
//
// # Root
//
// A path directly below the root ("/file") splits into an empty directory.
// Use [IsRooted] on the original path to tell it apart from a bare relative
// filename.
package paths
