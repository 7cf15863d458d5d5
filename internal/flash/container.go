package flash

import (
	"fmt"
	"html"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

const (
	// ContainerID is the element id pages give their flash container.
	ContainerID = "flash-messages"

	// BaseClass is joined with the status to form the element's class list.
	BaseClass = "flash-message"
)

// Element is one rendered message node.
type Element struct {
	Class string
	Text  string
}

// Classes splits the class attribute into tokens.
func (e Element) Classes() []string { return strings.Fields(e.Class) }

// HasClass reports whether token is in the class list.
func (e Element) HasClass(token string) bool {
	for _, c := range e.Classes() {
		if c == token {
			return true
		}
	}
	return false
}

// Status returns the part of the class list after BaseClass.
func (e Element) Status() string {
	return strings.TrimSpace(strings.TrimPrefix(e.Class, BaseClass))
}

// Container holds the children of the flash element. It is safe for
// concurrent use; concurrent writers overwrite each other in the order they
// complete.
type Container struct {
	id string

	mu        sync.Mutex
	children  []Element
	observers []func(Element)
}

// NewContainer returns an empty container with the given element id.
func NewContainer(id string) *Container {
	return &Container{id: id}
}

// ID returns the element id.
func (c *Container) ID() string { return c.id }

// Children returns a copy of the current children.
func (c *Container) Children() []Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Element(nil), c.children...)
}

// Observe registers fn to be called with each element after it is inserted.
func (c *Container) Observe(fn func(Element)) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

// replace clears all children and inserts el.
func (c *Container) replace(el Element) {
	c.mu.Lock()
	c.children = c.children[:0]
	c.children = append(c.children, el)
	observers := slices.Clone(c.observers)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(el)
	}
}

// HTML returns the element as sanitized markup. Status tokens that could
// break out of the class attribute are dropped; the base class always stays.
func (e Element) HTML() string {
	classes := slices.DeleteFunc(e.Classes(), func(tok string) bool {
		return !classToken.MatchString(tok)
	})
	markup := fmt.Sprintf(`<div class="%s">%s</div>`,
		html.EscapeString(strings.Join(classes, " ")), html.EscapeString(e.Text))
	return markupPolicy().Sanitize(markup)
}

// HTML returns the container's children as sanitized markup.
func (c *Container) HTML() string {
	var b strings.Builder
	for _, el := range c.Children() {
		b.WriteString(el.HTML())
	}
	return b.String()
}

// classToken accepts any class token that cannot terminate or nest markup.
var classToken = regexp.MustCompile(`^[^"'<>\s]+$`)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func markupPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("div")
		p.AllowAttrs("class").Matching(regexp.MustCompile(`^[^"'<>]+$`)).OnElements("div")
		policy = p
	})
	return policy
}
