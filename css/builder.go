package css

import "strings"

// position marks the furthest grammar slot reached while assembling a simple
// selector. Construction may only keep or advance it, never move it back.
type position int

const (
	posNone position = iota
	posElement
	posID
	posClass
	posAttr
	posPseudoClass
	posPseudoElement
)

// Draft accumulates fragments of one simple selector. The zero value is an
// empty draft; package-level constructors start a fresh one. All fragment
// methods mutate the draft and return it to allow chaining.
//
// The first violated rule is recorded on the draft and every later fragment
// call becomes a no-op; Build surfaces the recorded error. Drafts from
// separate constructor calls share no state.
type Draft struct {
	element       string
	hasElement    bool
	id            string
	hasID         bool
	classes       []string
	attribute     string
	hasAttribute  bool
	pseudoClasses []string
	pseudoElement string
	hasPseudoElem bool
	pos           position
	err           error
}

// Element starts the draft with an element name. Only one element is allowed
// and it must come before every other fragment.
func (d *Draft) Element(value string) *Draft {
	if d.err != nil {
		return d
	}
	// the duplicate check always runs before the ordering check
	if d.hasElement {
		d.err = ErrDuplicateFragment
		return d
	}
	if d.pos != posNone {
		d.err = ErrOrderViolation
		return d
	}
	d.element = value
	d.hasElement = true
	d.pos = posElement
	return d
}

// ID sets the id fragment. Only one id is allowed and it may not follow
// classes, attributes or pseudo fragments.
func (d *Draft) ID(value string) *Draft {
	if d.err != nil {
		return d
	}
	if d.hasID {
		d.err = ErrDuplicateFragment
		return d
	}
	if d.pos > posID {
		d.err = ErrOrderViolation
		return d
	}
	d.id = value
	d.hasID = true
	d.pos = posID
	return d
}

// Class appends a class fragment. Classes repeat freely in call order.
func (d *Draft) Class(value string) *Draft {
	if d.err != nil {
		return d
	}
	if d.pos > posClass {
		d.err = ErrOrderViolation
		return d
	}
	d.classes = append(d.classes, value)
	d.pos = posClass
	return d
}

// Attr sets the attribute fragment. The value is stored verbatim, operators
// and quoting included. A second call while still at the attribute slot
// overwrites the previous value - CSS allows several attribute selectors but
// this grammar collapses them to one slot.
func (d *Draft) Attr(value string) *Draft {
	if d.err != nil {
		return d
	}
	if d.pos > posAttr {
		d.err = ErrOrderViolation
		return d
	}
	d.attribute = value
	d.hasAttribute = true
	d.pos = posAttr
	return d
}

// PseudoClass appends a pseudo-class fragment. Pseudo-classes repeat freely
// in call order.
func (d *Draft) PseudoClass(value string) *Draft {
	if d.err != nil {
		return d
	}
	if d.pos > posPseudoClass {
		d.err = ErrOrderViolation
		return d
	}
	d.pseudoClasses = append(d.pseudoClasses, value)
	d.pos = posPseudoClass
	return d
}

// PseudoElement sets the pseudo-element fragment, the last grammar slot.
// Only one pseudo-element is allowed.
func (d *Draft) PseudoElement(value string) *Draft {
	if d.err != nil {
		return d
	}
	if d.hasPseudoElem {
		d.err = ErrDuplicateFragment
		return d
	}
	d.pseudoElement = value
	d.hasPseudoElem = true
	d.pos = posPseudoElement
	return d
}

// Err returns the first construction error recorded on the draft, if any.
func (d *Draft) Err() error {
	return d.err
}

// String renders the fragments accumulated so far in grammar order:
// element, #id, .class..., [attr], :pseudo-class..., ::pseudo-element.
func (d *Draft) String() string {
	var b strings.Builder
	if d.hasElement {
		b.WriteString(d.element)
	}
	if d.hasID {
		b.WriteByte('#')
		b.WriteString(d.id)
	}
	for _, c := range d.classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	if d.hasAttribute {
		b.WriteByte('[')
		b.WriteString(d.attribute)
		b.WriteByte(']')
	}
	for _, p := range d.pseudoClasses {
		b.WriteByte(':')
		b.WriteString(p)
	}
	if d.hasPseudoElem {
		b.WriteString("::")
		b.WriteString(d.pseudoElement)
	}
	return b.String()
}

// Build renders the draft and reports the first rule violated during
// construction, if any.
func (d *Draft) Build() (string, error) {
	return d.String(), d.err
}

// Element starts a new simple selector draft with an element name.
func Element(value string) *Draft {
	return new(Draft).Element(value)
}

// ID starts a new simple selector draft with an id fragment.
func ID(value string) *Draft {
	return new(Draft).ID(value)
}

// Class starts a new simple selector draft with a class fragment.
func Class(value string) *Draft {
	return new(Draft).Class(value)
}

// Attr starts a new simple selector draft with an attribute fragment.
func Attr(value string) *Draft {
	return new(Draft).Attr(value)
}

// PseudoClass starts a new simple selector draft with a pseudo-class fragment.
func PseudoClass(value string) *Draft {
	return new(Draft).PseudoClass(value)
}

// PseudoElement starts a new simple selector draft with a pseudo-element
// fragment.
func PseudoElement(value string) *Draft {
	return new(Draft).PseudoElement(value)
}
