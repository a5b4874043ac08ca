package lib

import "fmt"

type LexErrorKind int

const (
	UnexpectedCharacter LexErrorKind = iota
	UnterminatedString
	InvalidCharacterLiteral
	MalformedNumber
)

// LexError is the single failure channel for the lexer. Detail holds the
// offending character or run when there is one. Scanning is abortive, so at
// most one of these exists per Tokenize call.
type LexError struct {
	Kind     LexErrorKind
	Detail   string
	Location Location
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnterminatedString:
		return fmt.Sprintf("Error at line %d: unterminated string", e.Location.Line)
	case InvalidCharacterLiteral:
		return fmt.Sprintf("Error at line %d: invalid character literal: %s", e.Location.Line, e.Detail)
	case MalformedNumber:
		return fmt.Sprintf("Error at line %d: malformed number: %s", e.Location.Line, e.Detail)
	}
	return fmt.Sprintf("Error at line %d: unexpected character: %s", e.Location.Line, e.Detail)
}

func errUnexpectedCharacter(ch rune, loc Location) *LexError {
	return &LexError{Kind: UnexpectedCharacter, Detail: string(ch), Location: loc}
}

func errUnterminatedString(loc Location) *LexError {
	return &LexError{Kind: UnterminatedString, Location: loc}
}

func errInvalidCharacterLiteral(body string, loc Location) *LexError {
	return &LexError{Kind: InvalidCharacterLiteral, Detail: body, Location: loc}
}

func errMalformedNumber(text string, loc Location) *LexError {
	return &LexError{Kind: MalformedNumber, Detail: text, Location: loc}
}
