// Package planner computes the rename plan for a lot photo directory.
//
// The planner matches data rows to file names by inventory number prefix and
// derives each new name from the row's lot number and the file's numeric
// suffix. Planning is pure: it never touches the filesystem, so a plan can be
// printed (dry run), journaled or applied by the engine.
//
// Key responsibilities:
//   - Validate rows (lot number and inventory number present)
//   - Prefix-match file names to inventory numbers
//   - Extract the suffix between the first and second period of a file name
//   - Resolve conflicts between rows claiming the same file (last row wins)
package planner
