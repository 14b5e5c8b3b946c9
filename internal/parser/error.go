package parser

import "github.com/lenticularis39/epica/internal/token"

// ParseError is a single parse-time diagnostic, carrying enough information
// for the driver to convert it into an errors.CompilerError.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e ParseError) Error() string {
	return e.Message
}
