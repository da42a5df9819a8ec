package settings

import "errors"

var ErrForbidden = errors.New("access denied")
