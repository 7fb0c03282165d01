package result

import "errors"

// ErrInconsistentReconstruction is returned when the edit script's
// summed step costs disagree with the cost astar.Result itself
// reports, which would mean either the traceback or this package's
// interpretation of it has a bug.
var ErrInconsistentReconstruction = errors.New("result: reconstructed cost disagrees with search cost")
