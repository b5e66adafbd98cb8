package report

import "errors"

var ErrInvalidRange = errors.New("invalid report range: expected 3months, 6months or 12months")
