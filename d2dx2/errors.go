package d2dx2

import "errors"

// ErrInvalidGridSize indicates a grid narrower than the stencil of the
// requested builder. Checked at builder entry; matched with errors.Is.
var ErrInvalidGridSize = errors.New("d2dx2: grid smaller than stencil width")
