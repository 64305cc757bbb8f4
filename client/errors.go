package client

import "errors"

var (
	// ErrTransport is returned when the server could not be reached or its
	// response could not be understood.
	ErrTransport = errors.New("transport failure")
	// ErrFileSetIncomplete is returned by ReadFileSet when the numbered files
	// in a directory have a gap.
	ErrFileSetIncomplete = errors.New("file set is missing a numbered file")
	// ErrNoRecord is returned when nothing has been stored by this client yet.
	ErrNoRecord = errors.New("no stored batch recorded")
)
