// Package parser is a parser-combinator engine for building recursive-descent
// parsers out of small, pure functions.
//
// # Model
//
// A [Cursor] is an immutable position in an input text. A [Parser] is a
// function from a Cursor to a [Result]: either a success carrying a value and
// the cursor after the consumed input, or a failure carrying a reason.
//
//	digits := parser.AsString(parser.AtLeastOne(parser.Digit))
//	r := digits(parser.NewCursor("123abc"))
//	r.Value()             // "123"
//	r.Cursor().Remaining() // "abc"
//
// # Combinators
//
// Grammars are built by composing parsers:
//
//   - [Sequence], [Left], [Right], [Then], [Append] run parsers one after the other.
//   - [Or] and [Choice] are ordered choice with full backtracking: the
//     next alternative starts from the cursor the failed one started from.
//   - [Many], [AtLeastOne], [Repeat] and [RepeatSep] repeat a parser. They
//     loop instead of recursing, so stack depth does not grow with the input.
//   - [Map], [Value] and [AsString] transform values.
//   - [Lazy] breaks construction cycles in recursive grammars.
//
// # Errors
//
// Running out of input is an ordinary failure, so [Or] can recover from it
// like from any mismatch. Calling [Result.Value] on a failure or
// [Result.Reason] on a success is a programming error and panics.
//
// The engine does not require the whole input to be consumed. Use
// [WithRequireEnd] with [Parse] or the [End] parser when it should.
package parser
