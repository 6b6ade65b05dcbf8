package knowledge

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown support category")
	ErrMissingCategory = errors.New("knowledge base is missing a category")
	ErrInvalidBase     = errors.New("invalid knowledge base")
)
