package parser

import "sync"

// Lazy defers building a parser until it is first applied. Grammars use it
// to refer to rules that are not defined yet, or to themselves:
//
//	var value parser.Parser[Value]
//	array := parser.Right(parser.Literal('['), parser.Lazy(func() parser.Parser[Value] { return value }))
//	value = parser.Or(number, array)
//
// The factory runs at most once, even under concurrent first use.
func Lazy[T any](factory func() Parser[T]) Parser[T] {
	resolve := sync.OnceValue(factory)
	return func(c Cursor) Result[T] {
		return resolve()(c)
	}
}
