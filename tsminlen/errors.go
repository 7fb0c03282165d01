package tsminlen

import "errors"

// ErrUnsupportedStrategy indicates a --ts-total-length-strategy value
// other than "none": the specification leaves that strategy's contract
// unpinned (§9 Open Question), so this package refuses to guess at it.
var ErrUnsupportedStrategy = errors.New("tsminlen: unsupported total-length strategy")
