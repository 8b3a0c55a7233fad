package booking

import "errors"

var ErrValidation = errors.New("validation error")
