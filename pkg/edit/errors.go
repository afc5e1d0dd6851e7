package edit

import "errors"

// ErrNoValueSlot is returned when a value is set on an element that has no
// value token and the grammar does not define where the value text would be
// inserted.
var ErrNoValueSlot = errors.New("edit: element has no value slot")
