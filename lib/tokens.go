package lib

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TokenPlus TokenType = iota
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenCarat
	TokenLessThan
	TokenGreaterThan
	TokenAnd
	TokenEq
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenColon
	TokenSemi
	TokenArrow
	TokenIdentifier
	TokenLiteral
)

var tokenTypeNames = map[TokenType]string{
	TokenPlus:        "+",
	TokenMinus:       "-",
	TokenMultiply:    "*",
	TokenDivide:      "/",
	TokenCarat:       "^",
	TokenLessThan:    "<",
	TokenGreaterThan: ">",
	TokenAnd:         "&",
	TokenEq:          "=",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenLBrace:      "{",
	TokenRBrace:      "}",
	TokenColon:       ":",
	TokenSemi:        ";",
	TokenArrow:       "->",
	TokenIdentifier:  "identifier",
	TokenLiteral:     "literal",
}

func (t TokenType) String() string {
	name, ok := tokenTypeNames[t]
	if !ok {
		return "unknown"
	}
	return name
}

type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralChar
	LiteralBool
	LiteralString
)

// Literal carries the concrete value of a literal token. Kind selects which
// one of the value fields is meaningful; the rest stay zero.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Char  rune
	Bool  bool
	Str   string
}

func (l Literal) String() string {
	switch l.Kind {
	case LiteralInt:
		return strconv.FormatInt(l.Int, 10)
	case LiteralFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case LiteralChar:
		return "'" + string(l.Char) + "'"
	case LiteralBool:
		return strconv.FormatBool(l.Bool)
	case LiteralString:
		return strconv.Quote(l.Str)
	}
	return "unknown"
}

// Token is one classified lexical unit. Name is set only for identifiers and
// Literal only for literal tokens. Keywords are not split out at this layer;
// the parser decides which identifiers are reserved.
type Token struct {
	Type    TokenType
	Name    string
	Literal Literal
}

func (t Token) String() string {
	switch t.Type {
	case TokenIdentifier:
		return fmt.Sprintf("identifier(%s)", t.Name)
	case TokenLiteral:
		return fmt.Sprintf("literal(%s)", t.Literal)
	}
	return t.Type.String()
}

// Location is the 0-based source line a token's first character appeared on.
type Location struct {
	Line int
}

// TokenRecord pairs a token with where it began. The lexer emits these in
// source order.
type TokenRecord struct {
	Token    Token
	Location Location
}
