package spreadsheet

import "errors"

var (
	// ErrEmptyFile means the workbook or CSV contained no rows at all.
	ErrEmptyFile = errors.New("file is empty")
	// ErrNoHeaders means the first row had no usable column headers.
	ErrNoHeaders = errors.New("no headers detected")
	// ErrUnreadable means the file could not be parsed as a spreadsheet.
	ErrUnreadable = errors.New("unreadable spreadsheet file")
)
