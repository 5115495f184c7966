package render

import "fmt"

var (
	// ErrViewNotFound is returned when a view path names no known view.
	ErrViewNotFound = fmt.Errorf("view not found")
)
