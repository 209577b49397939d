package corpus

import "errors"

var (
	ErrUnknownToken  = errors.New("corpus: token not in vocabulary")
	ErrUnknownWordID = errors.New("corpus: word id out of vocabulary range")
	ErrBadLine       = errors.New("corpus: malformed line")
	ErrBadFormat     = errors.New("corpus: unknown input format")
)
