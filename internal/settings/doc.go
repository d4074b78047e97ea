// Package settings loads, formats, and rewrites the server settings file.
//
// The managed file is a flat YAML mapping (top-level scalar values only) with
// # comments above keys. The package supports:
//   - Loading the file into a typed snapshot with fixed value coercion rules
//   - Recovering the comment block attached to each top-level key
//   - Writing an edited snapshot back with comments re-injected and the file
//     replaced atomically (temp file + rename)
//   - Watching the file for external edits and reloading on change
//
// Comment preservation is a text-level heuristic: a comment belongs to the
// first top-level key after it in the old file, and is looked up by key name
// when the new content is written. Comments that were not directly above a
// key in the old file do not survive a rewrite.
package settings
