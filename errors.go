package odf

import "errors"

var (
	ErrArchive       = errors.New("odf: invalid archive")
	ErrXML           = errors.New("odf: invalid xml")
	ErrLimitExceeded = errors.New("odf: limit exceeded")
	ErrValidation    = errors.New("odf: validation failed")
)
