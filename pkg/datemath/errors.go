package datemath

import "errors"

// ErrUnknownDate is returned by Parse for a value it cannot place on a day.
var ErrUnknownDate = errors.New("datemath: unknown date")
