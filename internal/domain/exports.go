package domain

import (
	interfaces "sportreg/internal/domain/interfaces"
	types "sportreg/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username       = types.Username
	Principal      = types.Principal
	Notification   = types.Notification
	FormField      = types.FormField
	FormSubmission = types.FormSubmission
	User           = types.User
	Registrant     = types.Registrant
	ClientCookie   = types.ClientCookie
	ClientSession  = types.ClientSession
	Rejection      = types.Rejection
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	UserStore          = interfaces.UserStore
	RegistrantStore    = interfaces.RegistrantStore
	ClientSessionStore = interfaces.ClientSessionStore
	AccountService     = interfaces.AccountService
	EnrollmentService  = interfaces.EnrollmentService
	SessionService     = interfaces.SessionService
	APIClient          = interfaces.APIClient
)

const (
	StatusSuccess = types.StatusSuccess
	StatusInfo    = types.StatusInfo
	StatusError   = types.StatusError
)

var (
	ErrConflict          = types.ErrConflict
	ErrMalformedResponse = types.ErrMalformedResponse

	Success = types.Success
	Info    = types.Info
	Error   = types.Error
	Reject  = types.Reject
)
