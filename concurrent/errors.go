package concurrent

// ErrCannotRecover can be returned by a Supplier when the failure
// would repeat for every other operation of the batch. The
// operations not yet started are then skipped
type ErrCannotRecover struct {
	Cause error
}

// Error implementation of error for ErrCannotRecover
func (e ErrCannotRecover) Error() string {
	return e.Cause.Error()
}

// Unwrap returns the cause of the error
func (e ErrCannotRecover) Unwrap() error {
	return e.Cause
}
