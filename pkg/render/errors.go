package render

import "errors"

var (
	// ErrParseTemplate is returned when a template or layout does not parse.
	ErrParseTemplate = errors.New("render: failed to parse template")

	// ErrExecuteTemplate is returned when a parsed template fails to execute.
	ErrExecuteTemplate = errors.New("render: failed to execute template")
)
