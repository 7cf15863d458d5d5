package page

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"sportreg/internal/domain"
	"sportreg/internal/flash"
)

// ErrMissingElement is returned when no element has the requested id.
var ErrMissingElement = errors.New("page: missing element")

// ReadyFunc runs once the document is ready.
type ReadyFunc func(ctx context.Context, doc *Document) error

// Option configures a Document.
type Option func(*Document)

// WithClock sets the clock used for timeouts.
func WithClock(c Clock) Option { return func(d *Document) { d.clock = c } }

// WithLogger sets the document logger.
func WithLogger(l *zap.Logger) Option { return func(d *Document) { d.logger = l } }

// Document is a page: its location, its elements and its pending work.
type Document struct {
	clock  Clock
	logger *zap.Logger

	mu         sync.Mutex
	location   string
	history    []string
	containers map[string]*flash.Container
	links      map[string]*Link
	forms      map[string]*Form
	ready      []ReadyFunc

	tasks  sync.WaitGroup
	timers sync.WaitGroup
}

// NewDocument returns an empty document loaded at location.
func NewDocument(location string, opts ...Option) *Document {
	d := &Document{
		clock:      SystemClock(),
		logger:     zap.NewNop(),
		location:   location,
		containers: make(map[string]*flash.Container),
		links:      make(map[string]*Link),
		forms:      make(map[string]*Form),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Logger returns the document logger.
func (d *Document) Logger() *zap.Logger { return d.logger }

// AddContainer creates a flash container with the given id.
func (d *Document) AddContainer(id string) *flash.Container {
	c := flash.NewContainer(id)
	d.mu.Lock()
	d.containers[id] = c
	d.mu.Unlock()
	return c
}

// AddLink creates a link pointing at href.
func (d *Document) AddLink(id, href string) *Link {
	l := &Link{doc: d, id: id, href: href}
	d.mu.Lock()
	d.links[id] = l
	d.mu.Unlock()
	return l
}

// AddForm creates a form submitting to action.
func (d *Document) AddForm(id, action string) *Form {
	f := &Form{doc: d, id: id, action: action}
	d.mu.Lock()
	d.forms[id] = f
	d.mu.Unlock()
	return f
}

// Container looks up a flash container by id.
func (d *Document) Container(id string) (*flash.Container, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.containers[id]
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, id)
	}
	return c, nil
}

// Link looks up a link by id.
func (d *Document) Link(id string) (*Link, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.links[id]
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, id)
	}
	return l, nil
}

// Form looks up a form by id.
func (d *Document) Form(id string) (*Form, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f, ok := d.forms[id]
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, id)
	}
	return f, nil
}

// OnReady registers fn to run when Ready is called.
func (d *Document) OnReady(fn ReadyFunc) {
	d.mu.Lock()
	d.ready = append(d.ready, fn)
	d.mu.Unlock()
}

// Ready runs every ready callback in registration order. A failing callback
// does not stop the others; all errors are joined.
func (d *Document) Ready(ctx context.Context) error {
	d.mu.Lock()
	fns := append([]ReadyFunc(nil), d.ready...)
	d.mu.Unlock()

	var errs []error
	for _, fn := range fns {
		if err := fn(ctx, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Navigate moves the document to location.
func (d *Document) Navigate(location string) {
	d.mu.Lock()
	d.location = location
	d.history = append(d.history, location)
	d.mu.Unlock()
	d.logger.Debug("navigate", zap.String("location", location))
}

// Location returns the current location.
func (d *Document) Location() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.location
}

// Navigations returns every location navigated to since load.
func (d *Document) Navigations() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.history...)
}

// Go runs fn asynchronously and tracks it until it returns.
func (d *Document) Go(fn func()) {
	d.tasks.Add(1)
	go func() {
		defer d.tasks.Done()
		fn()
	}()
}

// SetTimeout runs fn once after delay. Timeouts cannot be cancelled.
func (d *Document) SetTimeout(delay time.Duration, fn func()) {
	d.timers.Add(1)
	d.clock.AfterFunc(delay, func() {
		defer d.timers.Done()
		fn()
	})
}

// Flush blocks until every task started with Go has returned. Pending
// timeouts are not waited for.
func (d *Document) Flush() { d.tasks.Wait() }

// Wait blocks until all tasks and the timeouts they scheduled have run.
func (d *Document) Wait() {
	d.tasks.Wait()
	d.timers.Wait()
}

// Link is a navigable control.
type Link struct {
	doc  *Document
	id   string
	href string

	mu        sync.Mutex
	listeners []Listener
}

// ID returns the element id.
func (l *Link) ID() string { return l.id }

// Href returns the link target.
func (l *Link) Href() string { return l.href }

// OnActivate registers a click listener.
func (l *Link) OnActivate(fn Listener) {
	l.mu.Lock()
	l.listeners = append(l.listeners, fn)
	l.mu.Unlock()
}

// Activate dispatches a click. Unless a listener prevents it, the document
// then navigates to the link target.
func (l *Link) Activate(ctx context.Context) *Event {
	ev := &Event{Type: "click", Target: l.id}
	l.mu.Lock()
	listeners := append([]Listener(nil), l.listeners...)
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(ctx, ev)
	}
	if !ev.DefaultPrevented() {
		l.doc.Navigate(l.href)
	}
	return ev
}

// Form is a set of named fields with a submit action.
type Form struct {
	doc    *Document
	id     string
	action string

	mu        sync.Mutex
	fields    []domain.FormField
	listeners []Listener
}

// ID returns the element id.
func (f *Form) ID() string { return f.id }

// Action returns the form's submit target.
func (f *Form) Action() string { return f.action }

// Set assigns value to the named field, adding the field if it is new.
func (f *Form) Set(name, value string) *Form {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].Value = value
			return f
		}
	}
	f.fields = append(f.fields, domain.FormField{Name: name, Value: value})
	return f
}

// Snapshot captures the current field values.
func (f *Form) Snapshot() domain.FormSubmission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.FormSubmission{Fields: append([]domain.FormField(nil), f.fields...)}
}

// OnSubmit registers a submit listener.
func (f *Form) OnSubmit(fn Listener) {
	f.mu.Lock()
	f.listeners = append(f.listeners, fn)
	f.mu.Unlock()
}

// Submit dispatches a submit event. Unless a listener prevents it, the
// document then navigates to the form action.
func (f *Form) Submit(ctx context.Context) *Event {
	ev := &Event{Type: "submit", Target: f.id}
	f.mu.Lock()
	listeners := append([]Listener(nil), f.listeners...)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(ctx, ev)
	}
	if !ev.DefaultPrevented() {
		f.doc.Navigate(f.action)
	}
	return ev
}
