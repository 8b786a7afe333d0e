package d1dx1

import "errors"

// ErrInvalidGridSize indicates a grid narrower than the stencil of the
// requested builder. Checked at builder entry; matched with errors.Is.
var ErrInvalidGridSize = errors.New("d1dx1: grid smaller than stencil width")
