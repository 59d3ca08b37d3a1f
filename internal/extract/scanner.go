package extract

import (
	"fmt"
	"strings"
)

// ScanFile runs the lexical scanner over one source file and returns the
// raw candidates found (File and Namespace are filled in by the caller).
//
// The scanner is a single pass with an explicit context stack instead of a
// full TypeScript parser: no pure-Go TSX parser exists, and the candidate
// contexts the extractor needs (JSX text, attribute values, object
// properties, variable initializers, call arguments) can all be recovered
// from token order plus the stack. Known limitation: a TSX generic arrow
// like `const f = <T,>(x) => x` is read as a JSX tag; the app's code style
// does not use that form.
func ScanFile(content string) ([]Candidate, error) {
	s := &scanner{src: content, line: 1}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.cands, nil
}

// Token sentinels recorded in scanner.prev for context decisions.
const (
	tokString   = "\x00str"
	tokTemplate = "\x00tpl"
)

type frameKind int

const (
	frameBrace frameKind = iota
	frameParen
	frameBracket
	frameJSXTag
	frameJSXChildren
	frameJSXExpr
)

type frame struct {
	kind   frameKind
	object bool   // frameBrace: looks like an object literal
	callee string // frameParen: dotted callee name, "" for grouping
	attr   string // frameJSXTag: current attribute; frameJSXExpr: owning attribute
	child  bool   // frameJSXExpr: expression container in child position
	tokens int    // frameJSXExpr: significant tokens seen inside
	str    string // frameJSXExpr: first token when it was a string
	strLn  int
}

type scanner struct {
	src   string
	pos   int
	line  int
	cands []Candidate

	frames []frame

	prev      string // last significant token
	prevPrev  string
	prevIdent string // last identifier
	lastStr   string // last string literal value
	chain     string // dotted member chain ending at prevIdent

	declKeyword bool   // just saw const/let/var
	declName    string // declarator awaiting '='
	pendingVar  string // variable name whose initializer comes next
	pendingProp string // object property whose value comes next
}

func (s *scanner) run() error {
	for s.pos < len(s.src) {
		if top := s.top(); top != nil && top.kind == frameJSXChildren {
			s.scanJSXText()
			if s.pos >= len(s.src) {
				break
			}
			if s.src[s.pos] == '<' && s.peek(1) == '/' {
				s.skipClosingTag()
				continue
			}
			// '<' opens a nested tag, '{' an expression container; both
			// are handled by the ordinary token loop below.
		}

		c := s.src[s.pos]
		switch {
		case c == '\n':
			s.line++
			s.pos++
		case c == ' ' || c == '\t' || c == '\r':
			s.pos++
		case c == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		case c == '\'' || c == '"':
			value, line, err := s.scanString(c)
			if err != nil {
				return err
			}
			s.handleString(value, line)
		case c == '`':
			value, line, interp, err := s.scanTemplate()
			if err != nil {
				return err
			}
			if interp {
				s.significant(tokTemplate)
			} else {
				s.handleString(value, line)
			}
		case isIdentStart(c):
			s.handleIdent(s.scanIdent())
		default:
			if err := s.handlePunct(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *scanner) top() *frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *scanner) push(f frame) { s.frames = append(s.frames, f) }

func (s *scanner) pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

// significant records a token for context decisions and expires the
// one-token pending states.
func (s *scanner) significant(tok string) {
	if top := s.top(); top != nil && top.kind == frameJSXExpr {
		top.tokens++
	}
	s.prevPrev = s.prev
	s.prev = tok
	s.pendingVar = ""
	s.pendingProp = ""
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (s *scanner) scanIdent() string {
	start := s.pos
	inTag := s.top() != nil && s.top().kind == frameJSXTag
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isIdentPart(c) || (inTag && c == '-') {
			s.pos++
			continue
		}
		break
	}
	return s.src[start:s.pos]
}

func (s *scanner) scanString(quote byte) (string, int, error) {
	line := s.line
	s.pos++ // opening quote
	var b strings.Builder
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch c {
		case '\\':
			if s.pos+1 < len(s.src) {
				b.WriteByte(s.src[s.pos+1])
				if s.src[s.pos+1] == '\n' {
					s.line++
				}
				s.pos += 2
				continue
			}
			s.pos++
		case quote:
			s.pos++
			return b.String(), line, nil
		case '\n':
			return "", line, fmt.Errorf("line %d: unterminated string literal", line)
		default:
			b.WriteByte(c)
			s.pos++
		}
	}
	return "", line, fmt.Errorf("line %d: unterminated string literal", line)
}

func (s *scanner) scanTemplate() (string, int, bool, error) {
	line := s.line
	s.pos++ // opening backtick
	var b strings.Builder
	interp := false
	depth := 0
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\\' && s.pos+1 < len(s.src):
			b.WriteByte(s.src[s.pos+1])
			if s.src[s.pos+1] == '\n' {
				s.line++
			}
			s.pos += 2
		case c == '$' && s.peek(1) == '{':
			interp = true
			depth++
			s.pos += 2
		case c == '}' && depth > 0:
			depth--
			s.pos++
		case c == '`' && depth == 0:
			s.pos++
			return b.String(), line, interp, nil
		case c == '\n':
			s.line++
			b.WriteByte(c)
			s.pos++
		default:
			if depth == 0 {
				b.WriteByte(c)
			}
			s.pos++
		}
	}
	return "", line, interp, fmt.Errorf("line %d: unterminated template literal", line)
}

func (s *scanner) skipLineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

func (s *scanner) skipBlockComment() {
	s.pos += 2
	for s.pos < len(s.src) {
		if s.src[s.pos] == '\n' {
			s.line++
		}
		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2
			return
		}
		s.pos++
	}
}

// exprPosition reports whether a '<' or '/' at this point starts an
// expression (JSX element / regex literal) rather than an operator.
func exprPosition(prev string) bool {
	switch prev {
	case "", "(", "[", "{", ",", "=", ":", ";", "?", "!", "=>", "&&", "||",
		"return", "case", "default", "do", "else", "typeof", "in", "of":
		return true
	}
	return false
}

// objectStart reports whether a '{' after prev opens an object literal.
func objectStart(prev string) bool {
	switch prev {
	case "(", ",", "=", ":", "[", "return", "??", "&&", "||":
		return true
	}
	return false
}
