package service

// StoreError reports a persistence failure. When a submit pipeline returns
// a StoreError the notification email was never attempted.
type StoreError struct {
	Entity string // human-readable entity name, e.g. "contact message"
	Err    error
}

func (e *StoreError) Error() string {
	return "failed to save " + e.Entity + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// DispatchError reports an email relay failure. The row was already
// persisted when this is returned; the send is never retried.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return "failed to send notification email: " + e.Err.Error()
}

func (e *DispatchError) Unwrap() error { return e.Err }
