// Package token implements the single-pass C source tokenizer: it turns a
// caller-owned byte span into an ordered, gapless token stream without
// evaluating the preprocessor or dropping any trivia, so that a patch
// engine working downstream can always reconstruct the original bytes
// when no edit applies.
package token

import (
	"errors"
	"fmt"

	"github.com/talav/c2openapi/internal/apierr"
)

// Kind identifies a token's lexical category.
type Kind byte

const (
	KindUnknown Kind = iota

	// Trivia.
	KindWhitespace
	KindLineComment
	KindBlockComment
	KindDirective

	// Literals.
	KindInteger
	KindFloat
	KindString
	KindChar

	// Identifiers and reserved words.
	KindIdent
	KindKeyword

	// Punctuation.
	KindLbrace
	KindRbrace
	KindLbracket
	KindRbracket
	KindLparen
	KindRparen
	KindSemicolon
	KindComma
	KindDot
	KindArrow
	KindEllipsis
	KindColon
	KindQuestion

	KindAssign
	KindPlusAssign
	KindMinusAssign
	KindStarAssign
	KindSlashAssign
	KindPercentAssign
	KindAmpAssign
	KindPipeAssign
	KindCaretAssign
	KindShlAssign
	KindShrAssign

	KindEq
	KindNe
	KindLt
	KindLe
	KindGt
	KindGe

	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindPercent
	KindIncrement
	KindDecrement

	KindAmp
	KindPipe
	KindCaret
	KindTilde
	KindShl
	KindShr

	KindLogicalAnd
	KindLogicalOr
	KindExclamation
)

// String renders the Kind's name, matching debug.WarningCode's plain-text
// style.
func (k Kind) String() string {
	switch k {
	case KindWhitespace:
		return "Whitespace"
	case KindLineComment:
		return "LineComment"
	case KindBlockComment:
		return "BlockComment"
	case KindDirective:
		return "Directive"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindChar:
		return "Char"
	case KindIdent:
		return "Ident"
	case KindKeyword:
		return "Keyword"
	case KindLbrace:
		return "Lbrace"
	case KindRbrace:
		return "Rbrace"
	case KindLbracket:
		return "Lbracket"
	case KindRbracket:
		return "Rbracket"
	case KindLparen:
		return "Lparen"
	case KindRparen:
		return "Rparen"
	case KindSemicolon:
		return "Semicolon"
	case KindComma:
		return "Comma"
	case KindDot:
		return "Dot"
	case KindArrow:
		return "Arrow"
	case KindEllipsis:
		return "Ellipsis"
	case KindColon:
		return "Colon"
	case KindQuestion:
		return "Question"
	case KindAssign:
		return "Assign"
	case KindPlusAssign, KindMinusAssign, KindStarAssign, KindSlashAssign,
		KindPercentAssign, KindAmpAssign, KindPipeAssign, KindCaretAssign,
		KindShlAssign, KindShrAssign:
		return "CompoundAssign"
	case KindEq:
		return "Equality"
	case KindNe:
		return "NotEqual"
	case KindLt:
		return "LessThan"
	case KindLe:
		return "LessThanEqual"
	case KindGt:
		return "GreaterThan"
	case KindGe:
		return "GreaterThanEqual"
	case KindPlus:
		return "Plus"
	case KindMinus:
		return "Sub"
	case KindStar:
		return "Asterisk"
	case KindSlash:
		return "Divide"
	case KindPercent:
		return "Percent"
	case KindIncrement:
		return "Increment"
	case KindDecrement:
		return "Decrement"
	case KindAmp:
		return "And"
	case KindPipe:
		return "Pipe"
	case KindCaret:
		return "Caret"
	case KindTilde:
		return "Tilde"
	case KindShl:
		return "LeftShift"
	case KindShr:
		return "RightShift"
	case KindLogicalAnd:
		return "LogicalAnd"
	case KindLogicalOr:
		return "LogicalOr"
	case KindExclamation:
		return "Exclamation"
	default:
		return "Unknown"
	}
}

// Token is a lexeme: a kind and a half-open byte range into the caller's
// source buffer. Tokens never copy source bytes.
type Token struct {
	Kind   Kind
	Offset int
	Length int

	// Numeric is populated only for KindInteger/KindFloat tokens.
	Numeric *NumericLiteral
}

// Bytes returns the token's slice of src. src must be the same buffer
// passed to Scan.
func (t Token) Bytes(src []byte) []byte {
	return src[t.Offset : t.Offset+t.Length]
}

// End returns the exclusive end offset of the token.
func (t Token) End() int {
	return t.Offset + t.Length
}

// NumericLiteral is the discriminated result of parsing a numeric literal.
// Exactly one of the Integer/Float field groups is populated, mirroring
// model.Additional and model.Bound's preference for a flat struct with
// mutually exclusive members over an interface, since the member count
// here (integer vs float) is small and fixed.
type NumericLiteral struct {
	IsFloat bool

	// Integer fields, valid when !IsFloat.
	Base      int // 2, 8, 10, or 16
	Magnitude uint64
	Unsigned  bool
	Long      bool
	LongLong  bool

	// Float fields, valid when IsFloat.
	Value      float64
	FloatSfx   bool // 'f'/'F' suffix
	LongDouble bool // 'l'/'L' suffix
	Decimal32  bool // 'df'/'DF' suffix
	Decimal64  bool // 'dd'/'DD' suffix
	Decimal128 bool // 'dl'/'DL' suffix

	// Overflowed reports that Magnitude saturated to ^uint64(0) rather
	// than fitting the literal's true value; Scan still emits the token
	// (never aborts the scan) and also returns ErrOutOfRange.
	Overflowed bool
}

var keywords = map[string]struct{}{
	"auto": {}, "break": {}, "case": {}, "char": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "extern": {}, "float": {}, "for": {}, "goto": {},
	"if": {}, "inline": {}, "int": {}, "long": {}, "register": {},
	"restrict": {}, "return": {}, "short": {}, "signed": {}, "sizeof": {},
	"static": {}, "struct": {}, "switch": {}, "typedef": {}, "union": {},
	"unsigned": {}, "void": {}, "volatile": {}, "while": {}, "_Bool": {},
	"_Complex": {}, "_Imaginary": {}, "_Alignas": {}, "_Alignof": {},
	"_Atomic": {}, "_Generic": {}, "_Noreturn": {}, "_Static_assert": {},
	"_Thread_local": {},
}

// Scan tokenizes src in a single pass. Scanning stops early only for an
// unterminated string, character, or block-comment literal: every other
// byte sequence — junk, unknown punctuation, stray bytes — still produces
// an explicit token, so a failed scan always carries the successfully
// scanned prefix alongside the error. An integer literal that overflows
// does not stop the scan: its token is kept with Overflowed set, and the
// first such OutOfRange error is returned with the complete token stream.
func Scan(src []byte) ([]Token, error) {
	s := &scanner{src: src}

	var rangeErr error

	for s.pos < len(src) {
		if err := s.next(); err != nil {
			if errors.Is(err, apierr.ErrOutOfRange) {
				if rangeErr == nil {
					rangeErr = err
				}

				continue
			}

			return s.tokens, err
		}
	}

	return s.tokens, rangeErr
}

type scanner struct {
	src    []byte
	pos    int
	tokens []Token
}

func (s *scanner) emit(kind Kind, start int) {
	s.tokens = append(s.tokens, Token{Kind: kind, Offset: start, Length: s.pos - start})
}

func (s *scanner) next() error {
	start := s.pos
	c := s.src[s.pos]

	switch {
	case isSpace(c):
		s.scanWhitespace()
		s.emit(KindWhitespace, start)

		return nil
	case c == '/' && s.peek(1) == '*':
		if err := s.scanBlockComment(); err != nil {
			return err
		}

		s.emit(KindBlockComment, start)

		return nil
	case c == '/' && s.peek(1) == '/':
		s.scanLineComment()
		s.emit(KindLineComment, start)

		return nil
	case c == '#' && s.atLineStart():
		s.scanDirective()
		s.emit(KindDirective, start)

		return nil
	case c == '"' || (c == 'L' && s.peek(1) == '"') || (c == 'u' && s.peek(1) == '8' && s.peek(2) == '"') ||
		(c == 'u' && s.peek(1) == '"') || (c == 'U' && s.peek(1) == '"'):
		if err := s.scanQuoted('"'); err != nil {
			return err
		}

		s.emit(KindString, start)

		return nil
	case c == '\'' || (c == 'L' && s.peek(1) == '\'') || (c == 'u' && s.peek(1) == '\''):
		if err := s.scanQuoted('\''); err != nil {
			return err
		}

		s.emit(KindChar, start)

		return nil
	case isDigit(c) || (c == '.' && isDigit(s.peek(1))):
		num, err := s.scanNumeric()
		tok := Token{Kind: KindInteger, Offset: start, Length: s.pos - start, Numeric: num}
		if num.IsFloat {
			tok.Kind = KindFloat
		}

		s.tokens = append(s.tokens, tok)

		return err
	case isIdentStart(c):
		s.scanIdent()
		name := string(s.src[start:s.pos])
		kind := KindIdent

		if _, ok := keywords[name]; ok {
			kind = KindKeyword
		}

		s.emit(kind, start)

		return nil
	default:
		kind := s.scanPunctuation()
		s.emit(kind, start)

		return nil
	}
}

func (s *scanner) peek(ahead int) byte {
	if s.pos+ahead >= len(s.src) {
		return 0
	}

	return s.src[s.pos+ahead]
}

func (s *scanner) atLineStart() bool {
	i := s.pos - 1
	for i >= 0 && (s.src[i] == ' ' || s.src[i] == '\t') {
		i--
	}

	return i < 0 || s.src[i] == '\n'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func (s *scanner) scanWhitespace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

func (s *scanner) scanLineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		if s.src[s.pos] == '\\' && s.peek(1) == '\n' {
			s.pos += 2

			continue
		}

		s.pos++
	}
}

func (s *scanner) scanBlockComment() error {
	start := s.pos
	s.pos += 2 // consume "/*"

	for {
		if s.pos >= len(s.src) {
			return component("token", "unterminated block comment", start)
		}

		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2

			return nil
		}

		s.pos++
	}
}

func (s *scanner) scanDirective() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		if s.src[s.pos] == '\\' && s.peek(1) == '\n' {
			s.pos += 2

			continue
		}

		s.pos++
	}
}

func (s *scanner) scanQuoted(quote byte) error {
	start := s.pos

	// Consume any prefix (L, u, U, u8) already matched by the caller.
	for s.src[s.pos] != quote {
		s.pos++
	}

	s.pos++ // opening quote

	for {
		if s.pos >= len(s.src) || s.src[s.pos] == '\n' {
			kind := "string"
			if quote == '\'' {
				kind = "character"
			}

			return component("token", fmt.Sprintf("unterminated %s literal", kind), start)
		}

		if s.src[s.pos] == '\\' {
			s.pos += 2

			continue
		}

		if s.src[s.pos] == quote {
			s.pos++

			return nil
		}

		s.pos++
	}
}

func (s *scanner) scanIdent() {
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++
	}
}

// multiCharPunct is tried longest-first, matching spec.md §4.1 rule 7.
var multiCharPunct = []struct {
	text string
	kind Kind
}{
	{"...", KindEllipsis},
	{"<<=", KindShlAssign},
	{">>=", KindShrAssign},
	{"==", KindEq},
	{"!=", KindNe},
	{"<=", KindLe},
	{">=", KindGe},
	{"<<", KindShl},
	{">>", KindShr},
	{"&&", KindLogicalAnd},
	{"||", KindLogicalOr},
	{"++", KindIncrement},
	{"--", KindDecrement},
	{"->", KindArrow},
	{"+=", KindPlusAssign},
	{"-=", KindMinusAssign},
	{"*=", KindStarAssign},
	{"/=", KindSlashAssign},
	{"%=", KindPercentAssign},
	{"&=", KindAmpAssign},
	{"|=", KindPipeAssign},
	{"^=", KindCaretAssign},
}

var singleCharPunct = map[byte]Kind{
	'{': KindLbrace, '}': KindRbrace,
	'[': KindLbracket, ']': KindRbracket,
	'(': KindLparen, ')': KindRparen,
	';': KindSemicolon, ',': KindComma, '.': KindDot,
	':': KindColon, '?': KindQuestion, '=': KindAssign,
	'<': KindLt, '>': KindGt,
	'+': KindPlus, '-': KindMinus, '*': KindStar, '/': KindSlash, '%': KindPercent,
	'&': KindAmp, '|': KindPipe, '^': KindCaret, '~': KindTilde, '!': KindExclamation,
}

func (s *scanner) scanPunctuation() Kind {
	for _, m := range multiCharPunct {
		if s.pos+len(m.text) <= len(s.src) && string(s.src[s.pos:s.pos+len(m.text)]) == m.text {
			s.pos += len(m.text)

			return m.kind
		}
	}

	kind, ok := singleCharPunct[s.src[s.pos]]

	s.pos++

	if !ok {
		return KindUnknown
	}

	return kind
}

func component(name, message string, offset int) error {
	return apierr.New(apierr.KindInvalidInput, name, fmt.Sprintf("%s at offset %d", message, offset), nil)
}
