package content

import "fmt"

// NotFoundError reports a missing content item.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// ReadError reports a filesystem or parse failure while reading content.
// Callers expose a generic message and log the wrapped cause.
type ReadError struct {
	Op   string
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("content %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
