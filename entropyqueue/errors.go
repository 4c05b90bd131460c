package entropyqueue

import "errors"

// Sentinel errors for entropyqueue operations.
var (
	// ErrZeroEntropy indicates an insert or update was attempted at
	// entropy 0; entropy 0 is never a valid resting state for a live cell.
	ErrZeroEntropy = errors.New("entropyqueue: entropy must be at least 1")

	// ErrEntropyOutOfRange indicates an entropy above the queue's configured maximum.
	ErrEntropyOutOfRange = errors.New("entropyqueue: entropy exceeds configured maximum")

	// ErrAlreadyPresent indicates Insert was called for a coord already in the queue.
	ErrAlreadyPresent = errors.New("entropyqueue: coordinate already present")

	// ErrNotPresent indicates Remove or UpdateEntropy was called for an absent coord.
	ErrNotPresent = errors.New("entropyqueue: coordinate not present")
)
