// Package server is the sportsd HTTP application.
//
// It serves the HTML pages with their scripts and the JSON endpoints those
// scripts call. Every JSON reply to a form or control is a notification
// object {"status": ..., "message": ...} that the page renders into its
// flash-messages container.
//
// Routes
//
//	GET  /                  home page
//	GET  /home              sports registration form
//	GET  /register          signup page
//	POST /register          create an account
//	GET  /login             login page
//	POST /login             sign in, sets the session cookie
//	GET  /logout            sign out (login required)
//	GET  /dashboard         dashboard page (login required)
//	POST /register_sport    register a student for a sport (login required)
//	GET  /registrants       registrants table (login required)
//	GET  /api/registrants   registrants as JSON (login required)
//	GET  /static/...        scripts and stylesheet
package server
