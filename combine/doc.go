// Package combine provides composable parsers over byte input.
//
// A Parser is a function from an Input cursor to a value plus the unconsumed
// remainder. Inputs are immutable values, so alternatives backtrack simply by
// re-running from the cursor they started at. Failures carry the byte offset
// they occurred at; ordered choice reports whichever branch got furthest.
//
// Ownership boundary:
// - input cursor and position accounting
// - primitive byte/literal matchers
// - sequencing, choice, and repetition combinators
//
// Grammars built on combine (expression parsing, line pipelines) live with
// their owners under internal/.
package combine
