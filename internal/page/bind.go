package page

import (
	"context"
	"time"

	"sportreg/internal/flash"
)

// BindLogout attaches a LogoutHandler to the logout link once doc is ready.
// A zero delay keeps DefaultRedirectDelay.
func BindLogout(doc *Document, client LogoutClient, delay time.Duration) {
	doc.OnReady(func(ctx context.Context, d *Document) error {
		container, err := d.Container(flash.ContainerID)
		if err != nil {
			return err
		}
		link, err := d.Link(LogoutLinkID)
		if err != nil {
			return err
		}
		h := NewLogoutHandler(d, client, flash.NewRenderer(container))
		if delay > 0 {
			h.RedirectDelay = delay
		}
		link.OnActivate(h.HandleActivate)
		return nil
	})
}

// BindRegistration attaches a RegistrationHandler to the registration form
// once doc is ready.
func BindRegistration(doc *Document, client RegistrationClient) {
	doc.OnReady(func(ctx context.Context, d *Document) error {
		container, err := d.Container(flash.ContainerID)
		if err != nil {
			return err
		}
		form, err := d.Form(RegisterFormID)
		if err != nil {
			return err
		}
		h := NewRegistrationHandler(d, form, client, flash.NewRenderer(container))
		form.OnSubmit(h.HandleSubmit)
		return nil
	})
}
