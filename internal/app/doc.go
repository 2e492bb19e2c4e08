// Package app provides the main Bubble Tea application model for fitpro.
//
// It owns the text inputs, focus order, spinner and help overlay, forwards
// edits to the signup.Form controller, runs the account service call as a
// command, and applies its outcome back on the event loop. A successful
// signup schedules an explicit reset of the form instead of reloading
// anything.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View).
package app
