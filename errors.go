package storex

import "errors"

// ErrNilReducer is returned by New and Builder.Build when no reducer was
// supplied. It is the only error the container itself produces: dispatch
// outcomes are exactly the reducer's nil/non-nil split, passed through
// untouched.
var ErrNilReducer = errors.New("storex: nil reducer")
