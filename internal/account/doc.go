// Package account talks to the remote account service that creates users.
//
// Client is the HTTP implementation used against a real backend; Offline is
// an in-process stand-in for demos and tests. Both return *signup.RemoteError
// when the service rejects a signup.
package account
