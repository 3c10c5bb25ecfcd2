package catalog

import "encoding/json/v2"

// Result is the envelope every catalog operation returns: either a value or a
// human-readable failure message, never both. Callers branch on OK and render
// the message as-is; a failed result's Value is the zero value, so "no data"
// rendering needs no nil checks.
type Result[T any] struct {
	ok      bool
	value   T
	message string
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Fail wraps a failure message.
func Fail[T any](message string) Result[T] {
	return Result[T]{ok: false, message: message}
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the wrapped value, or the zero value for failed results.
func (r Result[T]) Value() T {
	return r.value
}

// Message returns the failure message, empty for successful results.
func (r Result[T]) Message() string {
	return r.message
}

type resultJSON[T any] struct {
	OK      bool   `json:"ok"`
	Value   *T     `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON encodes as {"ok":true,"value":...} or {"ok":false,"message":...}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(resultJSON[T]{OK: true, Value: &r.value})
	}
	return json.Marshal(resultJSON[T]{OK: false, Message: r.message})
}

// UnmarshalJSON decodes the envelope produced by MarshalJSON.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var raw resultJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.ok = raw.OK
	r.message = raw.Message
	if raw.Value != nil {
		r.value = *raw.Value
	} else {
		var zero T
		r.value = zero
	}
	return nil
}
