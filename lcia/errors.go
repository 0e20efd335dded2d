package lcia

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrEmptyInventory is returned when a table has no rows, so no maximum
// GHG contributor exists.
const ErrEmptyInventory = constError("empty inventory: no process to assess")
