package corpus

import "errors"

var (
	ErrTextNotFound = errors.New("text not found in corpus")
	ErrInvalidName  = errors.New("text name cannot be empty")
)
