package sim

import (
	"errors"
	"fmt"
)

// Precondition failures. Both mean the host wired the session incorrectly;
// the session cannot continue and should be terminated.
var (
	ErrMissingEntity        = errors.New("sim: missing entity")
	ErrMissingAssetMetadata = errors.New("sim: missing asset metadata")
)

func missingEntity(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingEntity, name)
}
