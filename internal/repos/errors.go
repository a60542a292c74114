package repos

import "errors"

// ErrNotFound is returned when a requested row does not exist. Handlers
// map it to a 404; gorm.ErrRecordNotFound never escapes this package.
var ErrNotFound = errors.New("record not found")
