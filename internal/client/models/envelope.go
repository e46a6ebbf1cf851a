package models

// Envelope is the wrapper every API response uses.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// Rejected reports whether the server answered success=false, with its
// message.
func (e *Envelope[T]) Rejected() (string, bool) {
	return e.Message, !e.Success
}

// Empty is the payload of endpoints that return no data.
type Empty struct{}
