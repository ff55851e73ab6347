// Package console formats and prints leveled CLI messages.
//
// Formatting is a pure function from (level, message) to a string — there
// is no module-level mutable state to configure. Colors come from
// github.com/fatih/color, which disables itself automatically when output
// is not a terminal.
package console
