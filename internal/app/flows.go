package app

import (
	"context"
	"sync"

	"sportreg/internal/domain"
	"sportreg/internal/flash"
	"sportreg/internal/page"
)

const (
	dashboardPath    = "/dashboard"
	sportFormPath    = "/home"
	logoutPath       = "/logout"
	registerSportURL = "/register_sport"
)

// Outcome is how a page flow ended.
type Outcome struct {
	Rendered    []flash.Element // every flash message, in render order
	Location    string
	Navigations []string
}

// Last returns the message left on the page, if any.
func (o Outcome) Last() (flash.Element, bool) {
	if len(o.Rendered) == 0 {
		return flash.Element{}, false
	}
	return o.Rendered[len(o.Rendered)-1], true
}

type recorder struct {
	mu       sync.Mutex
	rendered []flash.Element
	forward  func(flash.Element)
}

func (r *recorder) observe(el flash.Element) {
	r.mu.Lock()
	r.rendered = append(r.rendered, el)
	r.mu.Unlock()
	if r.forward != nil {
		r.forward(el)
	}
}

func (r *recorder) outcome(doc *page.Document) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Outcome{
		Rendered:    append([]flash.Element(nil), r.rendered...),
		Location:    doc.Location(),
		Navigations: doc.Navigations(),
	}
}

// newPage builds a document at location with a flash container wired to a
// recorder.
func (a *App) newPage(location string, opts []page.Option) (*page.Document, *recorder) {
	opts = append([]page.Option{page.WithLogger(a.logger)}, opts...)
	doc := page.NewDocument(location, opts...)
	rec := &recorder{forward: a.OnFlash}
	doc.AddContainer(flash.ContainerID).Observe(rec.observe)
	return doc, rec
}

// Logout clicks the dashboard's logout link and waits for the page to
// settle, including a scheduled redirect.
func (a *App) Logout(ctx context.Context, opts ...page.Option) (Outcome, error) {
	doc, rec := a.newPage(dashboardPath, opts)
	doc.AddLink(page.LogoutLinkID, logoutPath)
	page.BindLogout(doc, a.API, a.redirectDelay)
	if err := doc.Ready(ctx); err != nil {
		return Outcome{}, err
	}

	link, err := doc.Link(page.LogoutLinkID)
	if err != nil {
		return Outcome{}, err
	}
	link.Activate(ctx)
	doc.Wait()
	return rec.outcome(doc), nil
}

// Enroll fills the registration form with fields, submits it and waits for
// the reply to render.
func (a *App) Enroll(ctx context.Context, fields []domain.FormField, opts ...page.Option) (Outcome, error) {
	doc, rec := a.newPage(sportFormPath, opts)
	form := doc.AddForm(page.RegisterFormID, registerSportURL)
	for _, f := range fields {
		form.Set(f.Name, f.Value)
	}
	page.BindRegistration(doc, a.API)
	if err := doc.Ready(ctx); err != nil {
		return Outcome{}, err
	}

	form.Submit(ctx)
	doc.Wait()
	return rec.outcome(doc), nil
}
