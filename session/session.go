// Package session holds the process wide state the views share: the theme
// flag and the wallet session. Both are plain objects created with their
// initial values and torn down with Close.
package session

import "errors"

var ErrClosed = errors.New("session closed")
