package models

// Empty is the payload of operations whose remote call returns null.
type Empty struct{}

// Response is the envelope every remote account operation resolves to.
//
// Data is meaningful only when IsSuccess is true. ErrorMessage holds the
// human-readable failure text and Err the underlying error, both set only
// when IsSuccess is false.
type Response[T any] struct {
	IsSuccess    bool
	Data         T
	ErrorMessage string
	Err          error
}

// Succeed wraps data in a successful envelope.
func Succeed[T any](data T) Response[T] {
	return Response[T]{IsSuccess: true, Data: data}
}

// Fail builds a failed envelope from err. A nil err still produces a
// failure, with a generic message.
func Fail[T any](err error) Response[T] {
	msg := "request failed"
	if err != nil {
		msg = err.Error()
	}
	return Response[T]{ErrorMessage: msg, Err: err}
}

// Error returns the failure cause, or nil for a successful envelope.
func (r Response[T]) Error() error {
	if r.IsSuccess {
		return nil
	}
	return r.Err
}
