package page

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"sportreg/internal/domain"
	"sportreg/internal/flash"
)

const (
	// LogoutLinkID is the id of the logout control.
	LogoutLinkID = "logout-link"
	// RegisterFormID is the id of the sport registration form.
	RegisterFormID = "register-form"

	// LoginPath is where a successful logout sends the page.
	LoginPath = "/login"
	// DefaultRedirectDelay is how long the logout message stays up before
	// the redirect.
	DefaultRedirectDelay = 1000 * time.Millisecond
)

// Messages shown when the server cannot be used.
const (
	msgUnreachable = "Could not reach the server"
	msgMalformed   = "Unexpected response from the server"
)

// LogoutClient performs the logout request.
type LogoutClient interface {
	Logout(ctx context.Context) (domain.Notification, error)
}

// RegistrationClient posts a sport registration.
type RegistrationClient interface {
	RegisterSport(ctx context.Context, submission domain.FormSubmission) (domain.Notification, error)
}

// LogoutHandler handles clicks on the logout link.
type LogoutHandler struct {
	doc      *Document
	client   LogoutClient
	renderer *flash.Renderer

	// RedirectDelay is the wait between an "info" reply and the redirect.
	RedirectDelay time.Duration
	// RedirectTo is the location navigated to after logout.
	RedirectTo string
}

// NewLogoutHandler returns a handler with the default redirect settings.
func NewLogoutHandler(doc *Document, client LogoutClient, renderer *flash.Renderer) *LogoutHandler {
	return &LogoutHandler{
		doc:           doc,
		client:        client,
		renderer:      renderer,
		RedirectDelay: DefaultRedirectDelay,
		RedirectTo:    LoginPath,
	}
}

// HandleActivate is the logout link's click listener.
func (h *LogoutHandler) HandleActivate(ctx context.Context, ev *Event) {
	logger := h.doc.Logger()
	logger.Debug("logout link clicked")
	ev.PreventDefault()

	h.doc.Go(func() {
		n, err := h.client.Logout(ctx)
		if err != nil {
			renderFailure(logger, h.renderer, "logout", err)
			return
		}
		render(logger, h.renderer, n)

		if n.Status == domain.StatusInfo {
			target := h.RedirectTo
			h.doc.SetTimeout(h.RedirectDelay, func() { h.doc.Navigate(target) })
		}
	})
}

// RegistrationHandler handles submissions of the sport registration form.
type RegistrationHandler struct {
	doc      *Document
	form     *Form
	client   RegistrationClient
	renderer *flash.Renderer
}

// NewRegistrationHandler returns a handler that posts form's fields.
func NewRegistrationHandler(
	doc *Document,
	form *Form,
	client RegistrationClient,
	renderer *flash.Renderer,
) *RegistrationHandler {
	return &RegistrationHandler{doc: doc, form: form, client: client, renderer: renderer}
}

// HandleSubmit is the registration form's submit listener.
func (h *RegistrationHandler) HandleSubmit(ctx context.Context, ev *Event) {
	logger := h.doc.Logger()
	logger.Debug("sports registration form submitted")
	ev.PreventDefault()

	submission := h.form.Snapshot()
	h.doc.Go(func() {
		n, err := h.client.RegisterSport(ctx, submission)
		if err != nil {
			renderFailure(logger, h.renderer, "register sport", err)
			return
		}
		render(logger, h.renderer, n)
	})
}

func render(logger *zap.Logger, r *flash.Renderer, n domain.Notification) {
	if err := r.Render(n.Status, n.Message); err != nil {
		logger.Error("render flash message", zap.Error(err))
	}
}

func renderFailure(logger *zap.Logger, r *flash.Renderer, op string, err error) {
	logger.Warn("request failed", zap.String("op", op), zap.Error(err))
	msg := msgUnreachable
	if errors.Is(err, domain.ErrMalformedResponse) {
		msg = msgMalformed
	}
	render(logger, r, domain.Error(msg))
}
