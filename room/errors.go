package room

import "errors"

var (
	// ErrInvalidBounds indicates an upper corner below the lower corner on some axis.
	ErrInvalidBounds = errors.New("room: upper bounds must not be below lower bounds")
	// ErrBoundsMismatch indicates a penalty matrix whose size differs from the bounds.
	ErrBoundsMismatch = errors.New("room: penalty matrix does not match room bounds")
	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("room: cell size must be positive")
	// ErrOutsideRoom indicates a grid position outside the room's bounds.
	ErrOutsideRoom = errors.New("room: position outside room")
)
