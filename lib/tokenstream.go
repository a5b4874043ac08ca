package lib

// tokenReader is the surface a parser consumes tokens through.
type tokenReader interface {
	Next() (rec TokenRecord, done bool)
	Peek() (rec TokenRecord, done bool)
	PeekAt(offset int) (rec TokenRecord, done bool)
}

// TokenStream is a positional reader over an already tokenized source. Reads
// never mutate the underlying records, so several streams can share one
// slice.
type TokenStream struct {
	records []TokenRecord
	pos     int
}

var _ tokenReader = (*TokenStream)(nil)

func NewTokenStream(records []TokenRecord) *TokenStream {
	return &TokenStream{records: records}
}

func (ts *TokenStream) Len() int {
	return len(ts.records)
}

// Next returns the record at the read position and advances past it. done is
// true once the stream is exhausted and stays true on repeated calls.
func (ts *TokenStream) Next() (TokenRecord, bool) {
	rec, done := ts.PeekAt(0)
	if !done {
		ts.pos++
	}
	return rec, done
}

// Peek returns the record at the read position without advancing.
func (ts *TokenStream) Peek() (TokenRecord, bool) {
	return ts.PeekAt(0)
}

// PeekAt looks offset records past the read position without advancing.
func (ts *TokenStream) PeekAt(offset int) (TokenRecord, bool) {
	i := ts.pos + offset
	if i >= len(ts.records) {
		return TokenRecord{}, true
	}
	return ts.records[i], false
}
