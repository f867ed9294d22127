package memory

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateID    = errors.New("record with this id already stored")
)
