package concurrent

// Supplier defines an arbitrary operation producing an R
type Supplier[R any] interface {
	Supply() (R, error)
}

// SupplierFunc allows a function to act as a Supplier
type SupplierFunc[R any] func() (R, error)

// Supply implementation of Supplier interface for SupplierFunc.
func (f SupplierFunc[R]) Supply() (R, error) {
	return f()
}

// Result of a supplier
type Result[R any] struct {
	value R
	err   error
}

// Value returned by the supplier
func (r Result[R]) Value() R {
	return r.value
}

// Err returned by the supplier
func (r Result[R]) Err() error {
	return r.err
}
