package specfn

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by the matrix-argument hypergeometric
// functions for arguments larger than 1×1. Implementing the general case
// requires Koev & Edelman's truncated Jack-polynomial algorithm; callers
// must receive a loud signal rather than a silently wrong value.
var ErrNotImplemented = fmt.Errorf("specfn: %w", errNotImplemented)
var errNotImplemented = errors.New("matrix-argument hypergeometric function not implemented")
