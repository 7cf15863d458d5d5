package flash

import "errors"

// ErrMissingContainer is returned when a Renderer has no container to write to.
var ErrMissingContainer = errors.New("flash: missing container element")

// Renderer writes notifications into one Container.
type Renderer struct {
	container *Container
}

// NewRenderer binds a renderer to container.
func NewRenderer(container *Container) *Renderer {
	return &Renderer{container: container}
}

// Render replaces the container's content with a single element showing
// message. The status is not validated; it is appended verbatim to BaseClass.
func (r *Renderer) Render(status, message string) error {
	if r == nil || r.container == nil {
		return ErrMissingContainer
	}
	r.container.replace(Element{
		Class: BaseClass + " " + status,
		Text:  message,
	})
	return nil
}
