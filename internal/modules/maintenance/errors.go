package maintenance

import "errors"

var ErrForbidden = errors.New("access denied")
