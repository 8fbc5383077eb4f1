package tableau

// ErrCapacityExceeded is returned by Grow when allocating another
// stabilizer row would meet or exceed NMax.
type CapacityExceededError struct{}

func (*CapacityExceededError) Error() string {
	return "tableau: capacity exceeded"
}

var ErrCapacityExceeded error = &CapacityExceededError{}
