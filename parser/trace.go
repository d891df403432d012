package parser

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("combo.parser")

// Trace logs every application of p at debug level under name: where it
// started and how it ended. The result is the result of p.
func Trace[T any](name string, p Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		if !log.AllowLevel(commonlog.Debug) {
			return p(c)
		}
		log.Debugf("%s: enter at %s", name, c.Position())
		r := p(c)
		if r.IsSuccess() {
			log.Debugf("%s: matched %s", name, quote(c.Text()[c.Offset():r.Cursor().Offset()]))
		} else {
			log.Debugf("%s: failed at %s: %s", name, r.Cursor().Position(), r.reason)
		}
		return r
	}
}
