// Package debug provides debug logging functionality for fitpro.
//
// When enabled via the --debug flag, it writes leveled, timestamped lines
// about submissions, service calls and session writes to a file, since the
// terminal itself belongs to the form.
package debug
