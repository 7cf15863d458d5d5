// Package flash renders single-slot status notifications.
//
// A Container is the page element that shows the current flash message. A
// Renderer owns a handle to one Container and replaces its content on every
// call; the container never holds more than one message.
package flash
