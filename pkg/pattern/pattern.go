package pattern

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUnsupportedToken reports a pattern letter run with no equivalent in the
	// target dialect.
	ErrUnsupportedToken = errors.New("pattern: unsupported token")
	// ErrUnterminatedQuote reports a quoted literal missing its closing quote.
	ErrUnterminatedQuote = errors.New("pattern: unterminated quoted literal")
	// ErrLiteral reports literal text that Go's layout parser would read as a
	// reference-time element.
	ErrLiteral = errors.New("pattern: literal collides with layout element")
)

// TokenKind separates pattern letters from literal text.
type TokenKind int

const (
	TokenField TokenKind = iota
	TokenLiteral
)

// Token is one element of a tokenised pattern. Field tokens carry the pattern
// letter and how many times it repeats ("MMM" is Letter 'M', Count 3).
type Token struct {
	Kind   TokenKind
	Letter rune
	Count  int
	Text   string
}

func (t Token) String() string {
	if t.Kind == TokenLiteral {
		return t.Text
	}
	return strings.Repeat(string(t.Letter), t.Count)
}

// Parse tokenises a CLDR style date/time pattern. ASCII letters are pattern
// fields, text between single quotes is literal ('' is an escaped quote), and
// every other rune is literal.
func Parse(pattern string) ([]Token, error) {
	runes := []rune(pattern)
	var (
		tokens  []Token
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: TokenLiteral, Text: literal.String()})
		literal.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i++
				continue
			}
			closed := false
			for i++; i < len(runes); i++ {
				if runes[i] != '\'' {
					literal.WriteRune(runes[i])
					continue
				}
				if i+1 < len(runes) && runes[i+1] == '\'' {
					literal.WriteRune('\'')
					i++
					continue
				}
				closed = true
				break
			}
			if !closed {
				return nil, fmt.Errorf("%w in %q", ErrUnterminatedQuote, pattern)
			}
		case isLetter(r):
			flush()
			count := 1
			for i+1 < len(runes) && runes[i+1] == r {
				count++
				i++
			}
			tokens = append(tokens, Token{Kind: TokenField, Letter: r, Count: count})
		default:
			literal.WriteRune(r)
		}
	}
	flush()
	return tokens, nil
}

// GoLayout translates a CLDR style pattern into a Go reference layout usable
// with time.Parse and time.Format.
//
// Go has no unpadded 24-hour element, so "H" maps to "15": formatting pads to
// two digits while parsing still accepts a single digit.
func GoLayout(pattern string) (string, error) {
	tokens, err := Parse(pattern)
	if err != nil {
		return "", err
	}

	var (
		out    strings.Builder
		pieces = make([]layoutPiece, 0, len(tokens))
	)
	for idx, token := range tokens {
		if token.Kind == TokenLiteral {
			if !literalSafe(token.Text) {
				return "", fmt.Errorf("%w: %q in %q", ErrLiteral, token.Text, pattern)
			}
			out.WriteString(token.Text)
			pieces = append(pieces, layoutPiece{text: token.Text})
			continue
		}
		element, err := goElement(token)
		if err != nil {
			return "", fmt.Errorf("%w %q in %q", err, token.String(), pattern)
		}
		piece := layoutPiece{text: element, element: true}
		if token.Letter == 'S' {
			if !followsSeparator(tokens, idx) {
				return "", fmt.Errorf("%w %q in %q: fraction must follow '.' or ','", ErrUnsupportedToken, token.String(), pattern)
			}
			prev := tokens[idx-1].Text
			piece.separator = prev[len(prev)-1:]
		}
		out.WriteString(element)
		pieces = append(pieces, piece)
	}

	layout := out.String()
	if !boundariesSafe(layout, pieces) {
		return "", fmt.Errorf("%w: adjacent text changes an element in %q", ErrLiteral, pattern)
	}
	return layout, nil
}

// layoutPiece is one translated token. separator is the character a fraction
// element is anchored to.
type layoutPiece struct {
	text      string
	element   bool
	separator string
}

// boundariesSafe reports whether layout formats exactly like its pieces
// formatted one by one. Go tokenizes the joined layout, so a literal next to
// an element can merge with it ("_" before "2" is the space-padded day).
func boundariesSafe(layout string, pieces []layoutPiece) bool {
	for _, sample := range []time.Time{literalSampleA, literalSampleB} {
		var want strings.Builder
		for _, piece := range pieces {
			switch {
			case !piece.element:
				want.WriteString(piece.text)
			case piece.separator != "":
				want.WriteString(sample.Format(piece.separator + piece.text)[len(piece.separator):])
			default:
				want.WriteString(sample.Format(piece.text))
			}
		}
		if sample.Format(layout) != want.String() {
			return false
		}
	}
	return true
}

// Kendo translates a CLDR style pattern into the Kendo UI client format
// dialect. Literal text containing letters is re-quoted.
func Kendo(pattern string) (string, error) {
	tokens, err := Parse(pattern)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, token := range tokens {
		if token.Kind == TokenLiteral {
			out.WriteString(kendoLiteral(token.Text))
			continue
		}
		element, err := kendoElement(token)
		if err != nil {
			return "", fmt.Errorf("%w %q in %q", err, token.String(), pattern)
		}
		out.WriteString(element)
	}
	return out.String(), nil
}

func goElement(token Token) (string, error) {
	n := token.Count
	switch token.Letter {
	case 'y', 'u':
		if n == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M', 'L':
		switch n {
		case 1:
			return "1", nil
		case 2:
			return "01", nil
		case 3:
			return "Jan", nil
		default:
			return "January", nil
		}
	case 'd':
		switch n {
		case 1:
			return "2", nil
		case 2:
			return "02", nil
		}
	case 'E':
		if n >= 4 {
			return "Monday", nil
		}
		return "Mon", nil
	case 'H':
		if n <= 2 {
			return "15", nil
		}
	case 'h':
		switch n {
		case 1:
			return "3", nil
		case 2:
			return "03", nil
		}
	case 'm':
		switch n {
		case 1:
			return "4", nil
		case 2:
			return "04", nil
		}
	case 's':
		switch n {
		case 1:
			return "5", nil
		case 2:
			return "05", nil
		}
	case 'S':
		if n <= 9 {
			return strings.Repeat("0", n), nil
		}
	case 'a':
		return "PM", nil
	case 'z':
		if n <= 3 {
			return "MST", nil
		}
	case 'Z':
		if n <= 3 {
			return "-0700", nil
		}
		return "-07:00", nil
	case 'X':
		switch n {
		case 1:
			return "Z07", nil
		case 2:
			return "Z0700", nil
		case 3:
			return "Z07:00", nil
		}
	case 'x':
		switch n {
		case 1:
			return "-07", nil
		case 2:
			return "-0700", nil
		case 3:
			return "-07:00", nil
		}
	}
	return "", ErrUnsupportedToken
}

func kendoElement(token Token) (string, error) {
	n := token.Count
	switch token.Letter {
	case 'y', 'u':
		if n == 2 {
			return "yy", nil
		}
		return "yyyy", nil
	case 'M', 'L':
		if n > 4 {
			n = 4
		}
		return strings.Repeat("M", n), nil
	case 'd', 'H', 'h', 'm', 's':
		if n <= 2 {
			return strings.Repeat(string(token.Letter), n), nil
		}
	case 'E':
		if n >= 4 {
			return "dddd", nil
		}
		return "ddd", nil
	case 'S':
		if n > 3 {
			n = 3
		}
		return strings.Repeat("f", n), nil
	case 'a':
		return "tt", nil
	case 'z', 'Z', 'X', 'x':
		return "zzz", nil
	}
	return "", ErrUnsupportedToken
}

// Two reference instants that differ in every layout element: year, month,
// day, weekday, hour, AM/PM, minute, second, fraction and zone. Literal text
// that formats to itself under both contains no layout element.
var (
	literalSampleA = time.Date(1999, time.December, 31, 23, 58, 57, 123000000, time.FixedZone("QRS", 3*3600))
	literalSampleB = time.Date(2003, time.August, 4, 8, 7, 9, 456000000, time.FixedZone("TUV", -5*3600))
)

func literalSafe(text string) bool {
	return literalSampleA.Format(text) == text && literalSampleB.Format(text) == text
}

func followsSeparator(tokens []Token, idx int) bool {
	if idx == 0 {
		return false
	}
	prev := tokens[idx-1]
	if prev.Kind != TokenLiteral || prev.Text == "" {
		return false
	}
	last := prev.Text[len(prev.Text)-1]
	return last == '.' || last == ','
}

func kendoLiteral(text string) string {
	hasLetter := false
	for _, r := range text {
		if isLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter && !strings.Contains(text, "'") {
		return text
	}
	return "'" + strings.ReplaceAll(text, "'", "\\'") + "'"
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
