package cssedit

import "github.com/yaklabco/edittree/pkg/edit"

// declaration is one scanned "name: value" pair. value is nil for a
// fragment with no ':' (an element without a value token).
type declaration struct {
	name  edit.Token
	value *edit.Token
}

// declScanner performs a single pass over the declaration list portion of a
// rule, producing name/value token pairs. It skips comments and stray
// semicolons, and keeps strings and url(...) groups intact inside values.
type declScanner struct {
	src string
	pos int
	end int
}

// scanDeclarations tokenizes src[start:end] as a CSS declaration list.
func scanDeclarations(src string, start, end int) []declaration {
	s := &declScanner{src: src, pos: start, end: end}

	var decls []declaration
	for {
		d, ok := s.next()
		if !ok {
			break
		}
		decls = append(decls, d)
	}
	return decls
}

// next scans one declaration. ok is false at end of input.
func (s *declScanner) next() (declaration, bool) {
	s.skipInsignificant()
	if s.pos >= s.end {
		return declaration{}, false
	}

	nameStart := s.pos
	for s.pos < s.end {
		c := s.src[s.pos]
		if c == ':' || c == ';' {
			break
		}
		if c == '/' && s.pos+1 < s.end && s.src[s.pos+1] == '*' {
			break
		}
		s.pos++
	}
	nameEnd := trimRightSpace(s.src, nameStart, s.pos)

	d := declaration{name: edit.Token{Start: nameStart, Value: s.src[nameStart:nameEnd]}}

	s.skipInsignificantButSemi()
	if s.pos >= s.end || s.src[s.pos] != ':' {
		// No value part: a bare fragment like "border" with nothing after.
		return d, true
	}
	s.pos++ // ':'
	s.skipSpace()

	valStart := s.pos
	depth := 0
scan:
	for s.pos < s.end {
		switch c := s.src[s.pos]; c {
		case '"', '\'':
			s.skipString(c)
		case '(':
			depth++
			s.pos++
		case ')':
			if depth > 0 {
				depth--
			}
			s.pos++
		case ';':
			if depth == 0 {
				break scan
			}
			s.pos++
		case '/':
			if s.pos+1 < s.end && s.src[s.pos+1] == '*' {
				s.skipComment()
			} else {
				s.pos++
			}
		default:
			s.pos++
		}
	}
	valEnd := trimRightSpace(s.src, valStart, s.pos)

	tok := edit.Token{Start: valStart, Value: s.src[valStart:valEnd]}
	d.value = &tok
	return d, true
}

// skipInsignificant consumes whitespace, comments, and stray semicolons.
func (s *declScanner) skipInsignificant() {
	for s.pos < s.end {
		switch c := s.src[s.pos]; {
		case isSpace(c) || c == ';':
			s.pos++
		case c == '/' && s.pos+1 < s.end && s.src[s.pos+1] == '*':
			s.skipComment()
		default:
			return
		}
	}
}

// skipInsignificantButSemi consumes whitespace and comments but stops at ';'
// so a valueless fragment is terminated correctly.
func (s *declScanner) skipInsignificantButSemi() {
	for s.pos < s.end {
		switch c := s.src[s.pos]; {
		case isSpace(c):
			s.pos++
		case c == '/' && s.pos+1 < s.end && s.src[s.pos+1] == '*':
			s.skipComment()
		default:
			return
		}
	}
}

func (s *declScanner) skipSpace() {
	for s.pos < s.end && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// skipComment consumes a /* ... */ comment; an unterminated comment runs to
// the end of input.
func (s *declScanner) skipComment() {
	s.pos += 2
	for s.pos < s.end {
		if s.src[s.pos] == '*' && s.pos+1 < s.end && s.src[s.pos+1] == '/' {
			s.pos += 2
			return
		}
		s.pos++
	}
}

// skipString consumes a quoted string including the closing quote,
// respecting backslash escapes.
func (s *declScanner) skipString(quote byte) {
	s.pos++
	for s.pos < s.end {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
		case quote:
			s.pos++
			return
		default:
			s.pos++
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// trimRightSpace returns the end of src[start:end] with trailing whitespace
// removed, never moving before start.
func trimRightSpace(src string, start, end int) int {
	for end > start && isSpace(src[end-1]) {
		end--
	}
	return end
}

// indexTopLevel returns the offset of the first unquoted, uncommented
// occurrence of target in src, or -1.
func indexTopLevel(src string, target byte) int {
	for i := 0; i < len(src); {
		switch c := src[i]; {
		case c == target:
			return i
		case c == '"' || c == '\'':
			i = skipStringAt(src, i)
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipCommentAt(src, i)
		default:
			i++
		}
	}
	return -1
}

// matchingBrace returns the offset of the '}' matching the '{' at open,
// or -1 when unbalanced.
func matchingBrace(src string, open int) int {
	depth := 0
	for i := open; i < len(src); {
		switch c := src[i]; {
		case c == '{':
			depth++
			i++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
			i++
		case c == '"' || c == '\'':
			i = skipStringAt(src, i)
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipCommentAt(src, i)
		default:
			i++
		}
	}
	return -1
}

func skipStringAt(src string, i int) int {
	quote := src[i]
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1
		default:
			i++
		}
	}
	return i
}

func skipCommentAt(src string, i int) int {
	i += 2
	for i < len(src) {
		if src[i] == '*' && i+1 < len(src) && src[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return i
}
