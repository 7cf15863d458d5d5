// Package page models the behaviour a browser page attaches to its elements.
//
// A Document holds elements by id (the flash container, links, forms) and
// dispatches user actions to registered listeners. Listeners that need the
// network run their continuation asynchronously on the document, so several
// activations may be in flight at once; Wait drains them.
//
// Two behaviours are provided:
//
//   - LogoutHandler: on activation of the logout link, GET /logout, render
//     the reply and, for an "info" reply, navigate to /login after a delay.
//   - RegistrationHandler: on submission of the registration form, POST the
//     fields to /register_sport and render the reply.
//
// Both suppress the element's default action and report transport or
// decoding failures as an error flash.
package page
