package humanize

// CSS classes returned by PositionClass.
const (
	ClassFirst = "first"
	ClassLast  = "last"
)

// Loop describes the position of an element while ranging over a collection.
type Loop struct {
	Index  int
	Length int
}

// First reports whether the element is the first one.
func (l Loop) First() bool { return l.Index == 0 }

// Last reports whether the element is the last one.
func (l Loop) Last() bool { return l.Index == l.Length-1 }

// Counter is the 1-based index.
func (l Loop) Counter() int { return l.Index + 1 }

// PositionClass returns "first" for the first element, "last" for the last
// and "" otherwise. A single element is "first".
func PositionClass(first, last bool) string {
	switch {
	case first:
		return ClassFirst
	case last:
		return ClassLast
	default:
		return ""
	}
}
