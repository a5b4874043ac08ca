package lib

import (
	"strconv"
	"strings"
	"unicode"
)

// Tokenize scans src left to right and returns its tokens in source order.
// On the first lexical error the scan stops and a *LexError comes back with
// no partial token sequence. Token-free input (whitespace and comments only)
// yields an empty slice.
func Tokenize(src string) ([]TokenRecord, error) {
	records := []TokenRecord{}
	err := lex(src, func(rec TokenRecord) {
		records = append(records, rec)
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func lex(src string, emit func(TokenRecord)) error {
	l := newLexer(src, emit)
	return l.scan()
}

type lexer struct {
	src          []rune
	length       int
	pos          int
	line         int
	emitCallback func(TokenRecord)
}

func newLexer(src string, emit func(TokenRecord)) *lexer {
	runes := []rune(src)
	return &lexer{
		src:          runes,
		length:       len(runes),
		pos:          0,
		line:         0,
		emitCallback: emit,
	}
}

func (l *lexer) peek() (rune, bool) {
	if l.pos >= l.length {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) advance() (rune, bool) {
	ch, ok := l.peek()
	if !ok {
		return 0, false
	}
	l.pos++
	return ch, true
}

// consumeWhile takes characters as long as cond holds and returns them as a
// string. The first character that fails cond is not consumed and stays
// available to the caller.
func (l *lexer) consumeWhile(cond func(rune) bool) string {
	var result []rune
	for {
		ch, ok := l.peek()
		if !ok || !cond(ch) {
			break
		}
		result = append(result, ch)
		l.pos++
	}
	return string(result)
}

func (l *lexer) emit(tok Token, loc Location) {
	l.emitCallback(TokenRecord{Token: tok, Location: loc})
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	ch, ok := l.peek()
	if !ok {
		return false, nil
	}

	// Line recorded before any characters of the token are consumed.
	loc := Location{Line: l.line}

	if isDigit(ch) {
		tok, err := l.scanNumber(loc)
		if err != nil {
			return false, err
		}
		l.emit(tok, loc)
		return true, nil
	}

	if isAlpha(ch) {
		l.emit(l.scanIdentifier(), loc)
		return true, nil
	}

	switch ch {
	case '"':
		tok, err := l.scanString(loc)
		if err != nil {
			return false, err
		}
		l.emit(tok, loc)
	case '\'':
		tok, err := l.scanChar(loc)
		if err != nil {
			return false, err
		}
		l.emit(tok, loc)
	case '-':
		l.emit(l.scanMinus(), loc)
	case '+':
		l.advance()
		l.emit(Token{Type: TokenPlus}, loc)
	case '*':
		l.advance()
		l.emit(Token{Type: TokenMultiply}, loc)
	case '/':
		l.advance()
		l.emit(Token{Type: TokenDivide}, loc)
	case '^':
		l.advance()
		l.emit(Token{Type: TokenCarat}, loc)
	case '<':
		l.advance()
		l.emit(Token{Type: TokenLessThan}, loc)
	case '>':
		l.advance()
		l.emit(Token{Type: TokenGreaterThan}, loc)
	case '&':
		l.advance()
		l.emit(Token{Type: TokenAnd}, loc)
	case '=':
		l.advance()
		l.emit(Token{Type: TokenEq}, loc)
	case '(':
		l.advance()
		l.emit(Token{Type: TokenLParen}, loc)
	case ')':
		l.advance()
		l.emit(Token{Type: TokenRParen}, loc)
	case '{':
		l.advance()
		l.emit(Token{Type: TokenLBrace}, loc)
	case '}':
		l.advance()
		l.emit(Token{Type: TokenRBrace}, loc)
	case ':':
		l.advance()
		l.emit(Token{Type: TokenColon}, loc)
	case ';':
		l.advance()
		l.emit(Token{Type: TokenSemi}, loc)
	case '!':
		// Line comment: discard through the end of the line.
		l.consumeWhile(func(c rune) bool { return c != '\n' })
	case '\n':
		l.line++
		l.advance()
	default:
		if unicode.IsSpace(ch) {
			l.advance()
			return true, nil
		}
		return false, errUnexpectedCharacter(ch, loc)
	}

	return true, nil
}

// scanNumber consumes the maximal run of digits and dots. A run with a dot
// parses as a float, otherwise as an int. Runs the consume rule admits but
// strconv rejects (several dots, int64 overflow) are malformed numbers.
func (l *lexer) scanNumber(loc Location) (Token, error) {
	text := l.consumeWhile(func(c rune) bool { return isDigit(c) || c == '.' })

	if strings.ContainsRune(text, '.') {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, errMalformedNumber(text, loc)
		}
		return Token{Type: TokenLiteral, Literal: Literal{Kind: LiteralFloat, Float: value}}, nil
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, errMalformedNumber(text, loc)
	}
	return Token{Type: TokenLiteral, Literal: Literal{Kind: LiteralInt, Int: value}}, nil
}

// scanString reads a double-quoted string. There are no escape sequences; a
// backslash is just a character, and the value is exactly what sits between
// the quotes.
func (l *lexer) scanString(loc Location) (Token, error) {
	l.advance()
	value := l.consumeWhile(func(c rune) bool { return c != '"' })
	if _, ok := l.peek(); !ok {
		return Token{}, errUnterminatedString(loc)
	}
	l.advance()
	return Token{Type: TokenLiteral, Literal: Literal{Kind: LiteralString, Str: value}}, nil
}

// scanChar reads a single-quoted character literal, whose body must be
// exactly one character.
func (l *lexer) scanChar(loc Location) (Token, error) {
	l.advance()
	body := l.consumeWhile(func(c rune) bool { return c != '\'' })
	runes := []rune(body)
	if len(runes) != 1 {
		return Token{}, errInvalidCharacterLiteral(body, loc)
	}
	l.advance()
	return Token{Type: TokenLiteral, Literal: Literal{Kind: LiteralChar, Char: runes[0]}}, nil
}

// scanIdentifier consumes an identifier run. Apostrophes are legal inside
// identifiers; whether an apostrophe starts a char literal or extends an
// identifier depends only on which character started the run. The spellings
// true and false become boolean literals, everything else is an identifier.
func (l *lexer) scanIdentifier() Token {
	name := l.consumeWhile(func(c rune) bool {
		return unicode.IsLetter(c) || c == '_' || isDigit(c) || c == '\''
	})
	switch name {
	case "true":
		return Token{Type: TokenLiteral, Literal: Literal{Kind: LiteralBool, Bool: true}}
	case "false":
		return Token{Type: TokenLiteral, Literal: Literal{Kind: LiteralBool, Bool: false}}
	}
	return Token{Type: TokenIdentifier, Name: name}
}

// scanMinus needs one character of lookahead: -> is the only two-character
// token, and the longer match wins.
func (l *lexer) scanMinus() Token {
	l.advance()
	if ch, ok := l.peek(); ok && ch == '>' {
		l.advance()
		return Token{Type: TokenArrow}
	}
	return Token{Type: TokenMinus}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
