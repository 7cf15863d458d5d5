package types

// Well-known notification statuses. The set is open: servers may send any
// other label and it is passed through untouched.
const (
	StatusSuccess = "success"
	StatusInfo    = "info"
	StatusError   = "error"
)

// Notification is the {status, message} payload every JSON endpoint answers
// with, and what the flash container displays.
type Notification struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Success returns a success notification.
func Success(message string) Notification {
	return Notification{Status: StatusSuccess, Message: message}
}

// Info returns an info notification.
func Info(message string) Notification {
	return Notification{Status: StatusInfo, Message: message}
}

// Error returns an error notification.
func Error(message string) Notification {
	return Notification{Status: StatusError, Message: message}
}
