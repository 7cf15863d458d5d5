// Package account signs users up and checks their credentials.
//
// It enforces the username and password length policy, hashes passwords
// with bcrypt and persists accounts via the domain.UserStore.
package account
