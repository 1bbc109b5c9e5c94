package auth

import "errors"

// ErrDisabled indicates that no signing secret is configured.
var ErrDisabled = errors.New("operator tokens are disabled")
