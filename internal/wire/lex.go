// Package wire lexes and parses pin specification strings and connection
// descriptions.
package wire

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EOF is the sentinel rune returned by Lexer.Next at the end of input. It
// is also the type of the item marking the end of the token stream.
const EOF = -1

// A Type identifies the type of a lexed item.
type Type int

// A Pos is the rune index of an item within the input string.
type Pos int

// Item types.
const (
	Raw Type = iota
	Ident
	BracketOpen
	BracketClose
	Comma
	Int
	Range
	Equal
)

// An Item is a token returned by Lexer.Lex.
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	switch v := i.Value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case rune:
		return strconv.QuoteRune(v)
	}
	return "<invalid>"
}

// A StateFn lexes items in a given lexer state. Returning nil hands
// control back to the initial state.
type StateFn func(l *Lexer) StateFn

// A Lexer splits i/o specs and connection descriptions into items.
//
type Lexer struct {
	input string
	off   int  // byte offset just past the current rune
	pos   int  // rune index of the current rune
	cur   rune
	start int // rune index of the first rune of the item being lexed

	bOff int // one level of backup
	bPos int
	bCur rune

	state StateFn
	queue []Item
}

// New returns a new lexer for the given input.
//
func New(input string) *Lexer {
	return &Lexer{input: input, pos: -1, cur: EOF, state: lexInit}
}

// Lex returns the next item in the input stream.
//
func (l *Lexer) Lex() Item {
	for len(l.queue) == 0 {
		if next := l.state(l); next != nil {
			l.state = next
		} else {
			l.state = lexInit
		}
	}
	i := l.queue[0]
	l.queue = l.queue[1:]
	return i
}

// Next advances to the next rune in the input and returns it.
//
func (l *Lexer) Next() rune {
	l.bOff, l.bPos, l.bCur = l.off, l.pos, l.cur
	if l.off >= len(l.input) {
		if l.cur != EOF {
			l.pos++
		}
		l.cur = EOF
		return EOF
	}
	r, w := utf8.DecodeRuneInString(l.input[l.off:])
	l.off += w
	l.pos++
	l.cur = r
	return r
}

// Backup undoes the last call to Next. Only one level of backup is
// supported.
//
func (l *Lexer) Backup() {
	l.off, l.pos, l.cur = l.bOff, l.bPos, l.bCur
}

// Current returns the rune returned by the last call to Next.
//
func (l *Lexer) Current() rune {
	return l.cur
}

// AcceptWhile consumes runes as long as f returns true, leaving the first
// rune that does not match ready to be read again.
//
func (l *Lexer) AcceptWhile(f func(r rune) bool) {
	for {
		r := l.Next()
		if r == EOF || !f(r) {
			l.Backup()
			return
		}
	}
}

// Emit queues an item of the given type and value at the position of the
// item being lexed.
//
func (l *Lexer) Emit(t Type, value interface{}) {
	l.queue = append(l.queue, Item{Type: t, Pos: Pos(l.start), Value: value})
}

func lexInit(l *Lexer) StateFn {
	r := l.Next()
	l.start = l.pos
	switch {
	case r == EOF:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case unicode.IsLetter(r) || r == '_':
		return lexIdent
	case r == '[':
		l.Emit(BracketOpen, "[")
	case r == ']':
		l.Emit(BracketClose, "]")
	case r == ',':
		l.Emit(Comma, ",")
	case '0' <= r && r <= '9':
		return lexNumber
	case r == '=':
		l.Emit(Equal, "=")
	case r == '.':
		if l.Next() == '.' {
			l.Emit(Range, "..")
			break
		}
		l.Backup()
		fallthrough
	default:
		l.Emit(Raw, r)
		return lexEOF
	}
	return nil
}

func lexNumber(l *Lexer) StateFn {
	i := int(l.Current() - '0')
	r := l.Next()
	for '0' <= r && r <= '9' {
		i = i*10 + int(r-'0')
		r = l.Next()
	}
	l.Backup()
	l.Emit(Int, i)
	return nil
}

func lexIdent(l *Lexer) StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	r := l.Next()
	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, buf.String())
	return nil
}

// lexEOF places the lexer in end-of-file state. Once in this state, the
// lexer will only emit EOF.
//
func lexEOF(l *Lexer) StateFn {
	l.Emit(EOF, "end of input")
	return lexEOF
}
