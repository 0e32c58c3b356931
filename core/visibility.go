package core

import (
	"fmt"
	"strings"
)

// Visibility qualifies which elements a primary search may return.
type Visibility int

const (
	// Visible matches only elements currently displayed. This is the default.
	Visible Visibility = iota
	// Invisible matches only elements that are not displayed.
	Invisible
	// All matches elements regardless of visibility.
	All
)

var visibilities = []Visibility{Visible, Invisible, All}

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "VISIBLE"
	case Invisible:
		return "INVISIBLE"
	case All:
		return "ALL"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Matches reports whether an element with the given display state satisfies v.
func (v Visibility) Matches(displayed bool) bool {
	switch v {
	case Visible:
		return displayed
	case Invisible:
		return !displayed
	default:
		return true
	}
}

// ParseVisibility resolves a locator suffix such as "i" or "all".
// The input selects the first of VISIBLE, INVISIBLE, ALL whose name starts
// with it, ignoring case.
func ParseVisibility(s string) (Visibility, error) {
	in := strings.ToUpper(strings.TrimSpace(s))
	if in != "" {
		for _, v := range visibilities {
			if strings.HasPrefix(v.String(), in) {
				return v, nil
			}
		}
	}
	names := make([]string, len(visibilities))
	for i, v := range visibilities {
		names[i] = v.String()
	}
	return Visible, newError(ErrIllegalVisibility, "Illegal visibility type '%s'. Expected one of [%s]",
		s, strings.Join(names, ", "))
}
