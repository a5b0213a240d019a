package value

import (
	"fmt"

	"github.com/ubjdata/codec/errs"
)

func duplicateKeyError(key string) error {
	return fmt.Errorf("%w: %q", errs.ErrDuplicateMappingKey, key)
}
