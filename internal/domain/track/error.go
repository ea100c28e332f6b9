package track

import (
	"errors"
)

var ErrNotFound = errors.New("tracking record not found")
