package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse  = errors.New("parse error")
	ErrKeyTag = fmt.Errorf("%w: key cannot be tagged", ErrParse)
)
