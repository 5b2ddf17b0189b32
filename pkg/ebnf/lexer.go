package ebnf

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/railyard/railyard/pkg/errors"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokCharClass
	tokDefine // = ::= :=
	tokEnd    // ; .
	tokOr
	tokComma
	tokMinus
	tokQuest
	tokStar
	tokPlus
	tokLParen
	tokRParen
	tokLBrack
	tokRBrack
	tokLBrace
	tokRBrace
)

type token struct {
	kind tokenKind
	text string
	line int
}

// lex tokenizes an EBNF source text. The trailing token is always tokEOF.
func lex(src string) ([]token, error) {
	var tokens []token
	line := 1
	i := 0
	emit := func(kind tokenKind, text string) {
		tokens = append(tokens, token{kind: kind, text: text, line: line})
	}
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case strings.HasPrefix(src[i:], "(*"):
			end := strings.Index(src[i+2:], "*)")
			if end < 0 {
				return nil, errors.New(errors.ErrCodeSyntax, "line %d: unterminated comment", line)
			}
			line += strings.Count(src[i:i+2+end+2], "\n")
			i += 2 + end + 2
		case strings.HasPrefix(src[i:], "::="):
			emit(tokDefine, "::=")
			i += 3
		case strings.HasPrefix(src[i:], ":="):
			emit(tokDefine, ":=")
			i += 2
		case c == '=':
			emit(tokDefine, "=")
			i++
		case c == ';' || c == '.':
			emit(tokEnd, string(c))
			i++
		case c == '|':
			emit(tokOr, "|")
			i++
		case c == ',':
			emit(tokComma, ",")
			i++
		case c == '-':
			emit(tokMinus, "-")
			i++
		case c == '?':
			emit(tokQuest, "?")
			i++
		case c == '*':
			emit(tokStar, "*")
			i++
		case c == '+':
			emit(tokPlus, "+")
			i++
		case c == '(':
			emit(tokLParen, "(")
			i++
		case c == ')':
			emit(tokRParen, ")")
			i++
		case c == '{':
			emit(tokLBrace, "{")
			i++
		case c == '}':
			emit(tokRBrace, "}")
			i++
		case c == '[':
			if class, ok := scanCharClass(src[i:]); ok {
				emit(tokCharClass, class)
				i += len(class)
			} else {
				emit(tokLBrack, "[")
				i++
			}
		case c == ']':
			emit(tokRBrack, "]")
			i++
		case c == '\'' || c == '"':
			text, size, err := scanString(src[i:], line)
			if err != nil {
				return nil, err
			}
			emit(tokString, text)
			i += size
		default:
			r, size := utf8.DecodeRuneInString(src[i:])
			if !isIdentRune(r) {
				return nil, errors.New(errors.ErrCodeSyntax, "line %d: unexpected character %q", line, r)
			}
			start := i
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				if !isIdentRune(r) {
					break
				}
				i += size
			}
			emit(tokIdent, src[start:i])
		}
	}
	tokens = append(tokens, token{kind: tokEOF, line: line})
	return tokens, nil
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// scanCharClass decides whether a leading bracket opens a character class
// rather than an optional group. A class spans to the nearest closing bracket
// and must be a compact run like [a-z] or [^abc]; anything with whitespace or
// grammar punctuation inside is an optional group instead.
func scanCharClass(src string) (string, bool) {
	end := strings.IndexByte(src, ']')
	if end <= 1 {
		return "", false
	}
	inner := src[1:end]
	if !strings.Contains(inner, "-") && !strings.HasPrefix(inner, "^") {
		return "", false
	}
	if strings.ContainsAny(inner, " \t\n'\"|(){};=,") {
		return "", false
	}
	return src[:end+1], true
}

// scanString reads a quoted terminal, honoring backslash escapes, and returns
// the unquoted text and the number of source bytes consumed.
func scanString(src string, line int) (string, int, error) {
	quote := src[0]
	var b strings.Builder
	i := 1
	for i < len(src) {
		c := src[i]
		switch c {
		case quote:
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(src) {
				return "", 0, errors.New(errors.ErrCodeSyntax, "line %d: unterminated string", line)
			}
			b.WriteByte(src[i+1])
			i += 2
		case '\n':
			return "", 0, errors.New(errors.ErrCodeSyntax, "line %d: unterminated string", line)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, errors.New(errors.ErrCodeSyntax, "line %d: unterminated string", line)
}
