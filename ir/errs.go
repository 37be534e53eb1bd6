package ir

import (
	"errors"

	"github.com/signadot/richtext/format"
)

var (
	ErrBadTag    = errors.New("bad tag")
	ErrBadFormat = format.ErrBadFormat
)
