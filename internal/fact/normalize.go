package fact

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Normalize parses a json body and re-encodes it in canonical form:
// double-quoted strings, ", " and ": " separators, non-ASCII escaped as
// \uXXXX and object keys kept in input order.
//
// The parser also accepts single-quoted strings and the literals True, False
// and None, which the fact service has been seen to emit, plus NaN, Infinity
// and -Infinity, which are re-emitted verbatim. Lone UTF-16 surrogate escapes
// are kept as escapes. Nesting deeper than maxNestingDepth is rejected.
// Normalizing an already canonical document returns it unchanged.
func Normalize(body string) (string, error) {
	p := &lenientParser{s: body}
	v, err := p.parse()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	var sb strings.Builder
	encodeValue(&sb, v)
	return sb.String(), nil
}

// EncodeText encodes raw text as a canonical JSON string.
func EncodeText(text string) string {
	var sb strings.Builder
	encodeString(&sb, text)
	return sb.String()
}

type member struct {
	key   string
	value any
}

type object []member

type number string

const maxNestingDepth = 10000

type lenientParser struct {
	s     string
	pos   int
	depth int
}

func (p *lenientParser) enter() error {
	p.depth++
	if p.depth > maxNestingDepth {
		return p.errorf("exceeded max nesting depth %d", maxNestingDepth)
	}
	return nil
}

func (p *lenientParser) parse() (any, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, p.errorf("unexpected trailing data")
	}
	return v, nil
}

func (p *lenientParser) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *lenientParser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *lenientParser) parseValue() (any, error) {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return nil, p.errorf("unexpected end of input")
	}
	switch c := p.s[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"' || c == '\'':
		return p.parseString()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return p.parseLiteral()
	}
}

func (p *lenientParser) parseObject() (any, error) {
	p.pos++ // {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	obj := object{}
	index := map[string]int{}

	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == '}' {
		p.pos++
		return obj, nil
	}

	for {
		p.skipSpace()
		if p.pos >= len(p.s) || (p.s[p.pos] != '"' && p.s[p.pos] != '\'') {
			return nil, p.errorf("expected object key")
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if p.pos >= len(p.s) || p.s[p.pos] != ':' {
			return nil, p.errorf("expected ':' after object key")
		}
		p.pos++

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		// A repeated key keeps its first position and takes the last value.
		if i, ok := index[key]; ok {
			obj[i].value = val
		} else {
			index[key] = len(obj)
			obj = append(obj, member{key: key, value: val})
		}

		p.skipSpace()
		if p.pos >= len(p.s) {
			return nil, p.errorf("unterminated object")
		}
		switch p.s[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, p.errorf("expected ',' or '}' in object")
		}
	}
}

func (p *lenientParser) parseArray() (any, error) {
	p.pos++ // [
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	arr := []any{}

	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ']' {
		p.pos++
		return arr, nil
	}

	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		p.skipSpace()
		if p.pos >= len(p.s) {
			return nil, p.errorf("unterminated array")
		}
		switch p.s[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.errorf("expected ',' or ']' in array")
		}
	}
}

func (p *lenientParser) parseString() (string, error) {
	quote := p.s[p.pos]
	p.pos++

	var sb strings.Builder
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c == quote:
			p.pos++
			return sb.String(), nil
		case c == '\\':
			if err := p.escape(&sb); err != nil {
				return "", err
			}
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf("unterminated string")
}

func (p *lenientParser) escape(sb *strings.Builder) error {
	p.pos++ // backslash
	if p.pos >= len(p.s) {
		return p.errorf("unterminated escape")
	}
	c := p.s[p.pos]
	p.pos++
	switch c {
	case '"', '\'', '\\', '/':
		sb.WriteByte(c)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		r, err := p.hex4()
		if err != nil {
			return err
		}
		if isHighSurrogate(r) && strings.HasPrefix(p.s[p.pos:], `\u`) {
			mark := p.pos
			p.pos += 2
			low, err := p.hex4()
			if err != nil {
				return err
			}
			if isLowSurrogate(low) {
				sb.WriteRune(utf16.DecodeRune(r, low))
				return nil
			}
			p.pos = mark
		}
		if utf16.IsSurrogate(r) {
			writeLoneSurrogate(sb, r)
			return nil
		}
		sb.WriteRune(r)
	default:
		return p.errorf("invalid escape %q", c)
	}
	return nil
}

func isHighSurrogate(r rune) bool { return r >= 0xd800 && r < 0xdc00 }

func isLowSurrogate(r rune) bool { return r >= 0xdc00 && r < 0xe000 }

// writeLoneSurrogate stores an unpaired surrogate in its 3-byte generalized
// UTF-8 form so encodeString can escape it again.
func writeLoneSurrogate(sb *strings.Builder, r rune) {
	sb.WriteByte(0xe0 | byte(r>>12))
	sb.WriteByte(0x80 | byte(r>>6)&0x3f)
	sb.WriteByte(0x80 | byte(r)&0x3f)
}

func loneSurrogateAt(s string, i int) (rune, bool) {
	if len(s)-i < 3 || s[i] != 0xed || s[i+1] < 0xa0 || s[i+1] > 0xbf || s[i+2]&0xc0 != 0x80 {
		return 0, false
	}
	return 0xd000 | rune(s[i+1]&0x3f)<<6 | rune(s[i+2]&0x3f), true
}

func (p *lenientParser) hex4() (rune, error) {
	if p.pos+4 > len(p.s) {
		return 0, p.errorf("short unicode escape")
	}
	n, err := strconv.ParseUint(p.s[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid unicode escape %q", p.s[p.pos:p.pos+4])
	}
	p.pos += 4
	return rune(n), nil
}

func (p *lenientParser) parseNumber() (any, error) {
	start := p.pos
	if strings.HasPrefix(p.s[p.pos:], "-Infinity") {
		p.pos += len("-Infinity")
		return number("-Infinity"), nil
	}
	if p.s[p.pos] == '-' {
		p.pos++
	}
	if p.digits() == 0 {
		return nil, p.errorf("invalid number")
	}
	if p.pos < len(p.s) && p.s[p.pos] == '.' {
		p.pos++
		if p.digits() == 0 {
			return nil, p.errorf("invalid fraction")
		}
	}
	if p.pos < len(p.s) && (p.s[p.pos] == 'e' || p.s[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
			p.pos++
		}
		if p.digits() == 0 {
			return nil, p.errorf("invalid exponent")
		}
	}
	return number(p.s[start:p.pos]), nil
}

func (p *lenientParser) digits() int {
	n := 0
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
		n++
	}
	return n
}

var literals = []struct {
	word  string
	value any
}{
	{"true", true},
	{"false", false},
	{"null", nil},
	{"True", true},
	{"False", false},
	{"None", nil},
	{"NaN", number("NaN")},
	{"Infinity", number("Infinity")},
}

func (p *lenientParser) parseLiteral() (any, error) {
	for _, lit := range literals {
		if strings.HasPrefix(p.s[p.pos:], lit.word) {
			p.pos += len(lit.word)
			return lit.value, nil
		}
	}
	return nil, p.errorf("unexpected character %q", p.s[p.pos])
}

func encodeValue(sb *strings.Builder, v any) {
	switch v := v.(type) {
	case object:
		sb.WriteByte('{')
		for i, m := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			encodeString(sb, m.key)
			sb.WriteString(": ")
			encodeValue(sb, m.value)
		}
		sb.WriteByte('}')
	case []any:
		sb.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			encodeValue(sb, e)
		}
		sb.WriteByte(']')
	case string:
		encodeString(sb, v)
	case number:
		sb.WriteString(string(v))
	case bool:
		sb.WriteString(strconv.FormatBool(v))
	case nil:
		sb.WriteString("null")
	}
}

const hexDigits = "0123456789abcdef"

func encodeString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		if r, ok := loneSurrogateAt(s, i); ok {
			writeUnicodeEscape(sb, r)
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r <= 0x7e:
				sb.WriteRune(r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				writeUnicodeEscape(sb, hi)
				writeUnicodeEscape(sb, lo)
			default:
				writeUnicodeEscape(sb, r)
			}
		}
	}
	sb.WriteByte('"')
}

func writeUnicodeEscape(sb *strings.Builder, r rune) {
	sb.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		sb.WriteByte(hexDigits[(r>>uint(shift))&0xf])
	}
}
