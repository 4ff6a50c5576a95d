package session

import "errors"

// ErrSessionClosed is returned by mutators invoked after the session
// reached a terminal state.
var ErrSessionClosed = errors.New("session: closed")
