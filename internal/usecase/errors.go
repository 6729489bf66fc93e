package usecase

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable wraps a failure to load a collection from the record
// store. Clients answer it with a blocking error and a reload option.
var ErrStoreUnavailable = errors.New("record store unavailable")

func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
