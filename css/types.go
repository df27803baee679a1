// Package css builds CSS selector strings from typed fragments.
//
// A simple selector is accumulated fragment by fragment (element, id, classes,
// attribute, pseudo-classes, pseudo-element) in fixed grammar order; two
// selectors of any shape can be joined with a combinator. The package goes one
// way only - from fragments to text - it does not parse selector strings back.
package css

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Construction failure modes. Messages are fixed - they are part of the
// builder contract and tests rely on them verbatim.
var (
	// ErrDuplicateFragment is reported when element, id or pseudo-element is
	// supplied more than once for the same simple selector.
	ErrDuplicateFragment = errors.New("Element, id and pseudo-element should not occur more then one time inside the selector") //nolint:staticcheck

	// ErrOrderViolation is reported when a fragment is added behind the
	// furthest grammar position already reached.
	ErrOrderViolation = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element") //nolint:staticcheck
)

// Selector is a buildable CSS selector: either a simple selector draft or a
// combination of two selectors.
type Selector interface {
	// String renders the current state to CSS text. It is pure and safe to
	// call repeatedly - it never reports construction errors.
	String() string

	// Build renders the selector and surfaces any construction error
	// recorded while it was assembled.
	Build() (string, error)
}

// Combinator represents the relationship operator between two selectors.
type Combinator int

const (
	Descendant Combinator = iota // descendant combination, a single space
	Child                        // >
	Adjacent                     // +
	Sibling                      // ~
)

// String returns the CSS token of the combinator.
func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return ">"
	case Adjacent:
		return "+"
	case Sibling:
		return "~"
	default:
		return ""
	}
}

// CombinatorNames lists combinator names accepted by ParseCombinator.
func CombinatorNames() []string {
	return []string{"descendant", "child", "adjacent", "sibling"}
}

// ParseCombinator maps a combinator name or its literal CSS token to a
// Combinator value.
func ParseCombinator(s string) (Combinator, error) {
	// literal tokens first - the descendant token is itself a space and must
	// not be trimmed away
	switch s {
	case " ":
		return Descendant, nil
	case ">":
		return Child, nil
	case "+":
		return Adjacent, nil
	case "~":
		return Sibling, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "descendant":
		return Descendant, nil
	case "child":
		return Child, nil
	case "adjacent":
		return Adjacent, nil
	case "sibling":
		return Sibling, nil
	}
	return 0, fmt.Errorf("unknown combinator %q (supported: %s)", s, strings.Join(CombinatorNames(), ", "))
}

// Raw adapts an already rendered selector string to the Selector interface.
// The text is emitted verbatim - it is never parsed or validated.
type Raw string

// String returns the wrapped text unchanged.
func (r Raw) String() string {
	return string(r)
}

// Build returns the wrapped text unchanged and never fails.
func (r Raw) Build() (string, error) {
	return string(r), nil
}

// Combined joins two selectors with a combinator. It never inspects the
// internal state of its parts - construction errors recorded on either side
// surface only through Build.
type Combined struct {
	Left  Selector
	Comb  Combinator
	Right Selector
}

// Combine wraps two already built selectors into a combined selector.
func Combine(left Selector, comb Combinator, right Selector) Combined {
	return Combined{Left: left, Comb: comb, Right: right}
}

// String renders the combination as left, space, combinator token, space,
// right. For the descendant combinator the token itself is a space.
func (c Combined) String() string {
	var b strings.Builder
	b.WriteString(c.Left.String())
	b.WriteByte(' ')
	b.WriteString(c.Comb.String())
	b.WriteByte(' ')
	b.WriteString(c.Right.String())
	return b.String()
}

// Build renders the combination, reporting construction errors from both
// sides if any were recorded.
func (c Combined) Build() (string, error) {
	left, lerr := c.Left.Build()
	right, rerr := c.Right.Build()
	if err := multierr.Append(lerr, rerr); err != nil {
		return "", err
	}
	return left + " " + c.Comb.String() + " " + right, nil
}
