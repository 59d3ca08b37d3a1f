package extract

import (
	"strings"
)

// handleIdent processes an identifier or keyword token.
func (s *scanner) handleIdent(id string) {
	if top := s.top(); top != nil && top.kind == frameJSXTag && s.prev != "=" {
		top.attr = id
	}

	switch id {
	case "const", "let", "var":
		s.declKeyword = true
		s.declName = ""
	default:
		if s.declKeyword {
			s.declName = id
			s.declKeyword = false
		}
	}

	if s.prev == "." {
		s.chain += "." + id
	} else {
		s.chain = id
	}
	s.prevIdent = id
	s.significant(id)
}

// handleString classifies a string (or interpolation-free template)
// literal by its syntactic context.
func (s *scanner) handleString(value string, line int) {
	top := s.top()
	pendingVar, pendingProp := s.pendingVar, s.pendingProp

	switch {
	case top != nil && top.kind == frameJSXTag:
		// attr="value"
		if s.prev == "=" && top.attr != "" {
			if hinted(top.attr, KindJSXAttr) {
				s.addCandidate(Candidate{Line: line, Text: value, Kind: KindJSXAttr, Attribute: top.attr})
			}
			top.attr = ""
		}

	case top != nil && top.kind == frameJSXExpr:
		// first token of {"literal"}; resolved when the container closes
		if top.tokens == 0 {
			top.str = value
			top.strLn = line
		}

	case pendingVar != "":
		if hinted(pendingVar, KindVariable) {
			s.addCandidate(Candidate{Line: line, Text: value, Kind: KindVariable, Attribute: pendingVar})
		}

	case pendingProp != "":
		if hinted(pendingProp, KindObjectProp) {
			s.addCandidate(Candidate{Line: line, Text: value, Kind: KindObjectProp, Attribute: pendingProp})
		}

	case top != nil && top.kind == frameParen && isSink(top.callee):
		s.addCandidate(Candidate{Line: line, Text: value, Kind: KindCallArg, Attribute: top.callee})
	}

	s.lastStr = value
	s.significant(tokString)
}

// isSink matches the reconstructed callee against the known user-facing
// call sinks, tolerating a longer leading chain (this.toast.success).
func isSink(callee string) bool {
	if callee == "" {
		return false
	}
	if callSinks[callee] {
		return true
	}
	parts := strings.Split(callee, ".")
	if len(parts) >= 2 {
		return callSinks[parts[len(parts)-2]+"."+parts[len(parts)-1]]
	}
	return false
}

// handlePunct processes one punctuation token.
func (s *scanner) handlePunct() error {
	c := s.src[s.pos]
	top := s.top()

	switch c {
	case '(':
		callee := ""
		if s.prev != "" && s.prev == s.prevIdent {
			callee = s.chain
		}
		s.significant("(")
		s.push(frame{kind: frameParen, callee: callee})
		s.pos++

	case ')':
		s.significant(")")
		s.popKind(frameParen)
		s.pos++

	case '[':
		s.significant("[")
		s.push(frame{kind: frameBracket})
		s.pos++

	case ']':
		s.significant("]")
		s.popKind(frameBracket)
		s.pos++

	case '{':
		switch {
		case top != nil && top.kind == frameJSXTag && s.prev == "=":
			attr := top.attr
			top.attr = ""
			s.significant("{")
			s.push(frame{kind: frameJSXExpr, attr: attr})
		case top != nil && top.kind == frameJSXChildren:
			s.significant("{")
			s.push(frame{kind: frameJSXExpr, child: true})
		default:
			obj := objectStart(s.prev)
			s.significant("{")
			s.push(frame{kind: frameBrace, object: obj})
		}
		s.pos++

	case '}':
		if top != nil && top.kind == frameJSXExpr {
			s.closeJSXExpr(top)
			s.pop()
			s.significant("}")
			s.pos++
			return nil
		}
		s.significant("}")
		s.popKind(frameBrace)
		s.pos++

	case '<':
		next := s.peek(1)
		inChildren := top != nil && top.kind == frameJSXChildren
		if (inChildren || exprPosition(s.prev)) && (isIdentStart(next) || next == '>') {
			s.pos++
			s.scanTagName()
			s.push(frame{kind: frameJSXTag})
			s.prevPrev = ""
			s.prev = ""
			return nil
		}
		s.significant("<")
		s.pos++

	case '>':
		if top != nil && top.kind == frameJSXTag {
			top.kind = frameJSXChildren
			top.attr = ""
			s.prevPrev = ""
			s.prev = ""
			s.pos++
			return nil
		}
		s.significant(">")
		s.pos++

	case '/':
		if top != nil && top.kind == frameJSXTag && s.peek(1) == '>' {
			s.pop()
			s.significant(">")
			s.pos += 2
			return nil
		}
		if exprPosition(s.prev) {
			s.skipRegex()
			return nil
		}
		s.significant("/")
		s.pos++

	case '=':
		switch {
		case s.peek(1) == '>':
			s.significant("=>")
			s.pos += 2
		case s.peek(1) == '=':
			s.significant("==")
			s.pos += 2
			if s.pos < len(s.src) && s.src[s.pos] == '=' {
				s.pos++
			}
		default:
			s.significant("=")
			if s.declName != "" {
				s.pendingVar = s.declName
				s.declName = ""
			}
			s.pos++
		}

	case ':':
		nameTok, beforeTok := s.prev, s.prevPrev
		s.significant(":")
		if top != nil && top.kind == frameBrace && top.object &&
			(beforeTok == "{" || beforeTok == "," || beforeTok == "") {
			if nameTok == tokString {
				s.pendingProp = s.lastStr
			} else if nameTok != "" && nameTok == s.prevIdent {
				s.pendingProp = nameTok
			}
		}
		s.pos++

	case ';':
		s.declName = ""
		s.significant(";")
		s.pos++

	case '&':
		if s.peek(1) == '&' {
			s.significant("&&")
			s.pos += 2
			return nil
		}
		s.significant("&")
		s.pos++

	case '|':
		if s.peek(1) == '|' {
			s.significant("||")
			s.pos += 2
			return nil
		}
		s.significant("|")
		s.pos++

	case '.':
		s.significant(".")
		s.pos++

	default:
		if c >= '0' && c <= '9' {
			s.scanNumber()
			s.significant("\x00num")
			return nil
		}
		s.significant(string(c))
		s.pos++
	}
	return nil
}

func (s *scanner) scanNumber() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isIdentPart(c) || c == '.' {
			s.pos++
			continue
		}
		break
	}
}

func (s *scanner) scanTagName() string {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isIdentPart(c) || c == '.' || c == '-' {
			s.pos++
			continue
		}
		break
	}
	return s.src[start:s.pos]
}

// scanJSXText consumes element text up to the next '<' or '{' and emits a
// jsx-text candidate for the whitespace-normalized run.
func (s *scanner) scanJSXText() {
	start := s.pos
	textLine := s.line
	sawText := false
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '<' || c == '{' {
			break
		}
		if c == '\n' {
			s.line++
		} else if !sawText && c != ' ' && c != '\t' && c != '\r' {
			sawText = true
			textLine = s.line
		}
		s.pos++
	}
	text := strings.Join(strings.Fields(s.src[start:s.pos]), " ")
	if text == "" {
		return
	}
	s.addCandidate(Candidate{Line: textLine, Text: text, Kind: KindJSXText})
}

// skipClosingTag consumes "</...>" and pops the element.
func (s *scanner) skipClosingTag() {
	for s.pos < len(s.src) && s.src[s.pos] != '>' {
		if s.src[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
	if s.pos < len(s.src) {
		s.pos++
	}
	s.popKind(frameJSXChildren)
	s.prevPrev = ""
	s.prev = ">"
}

// closeJSXExpr resolves an expression container that held exactly one
// string literal: a child position is JSX text, an attribute position
// follows the attribute hint rules.
func (s *scanner) closeJSXExpr(f *frame) {
	if f.tokens != 1 || f.strLn == 0 {
		return
	}
	if f.child {
		s.addCandidate(Candidate{Line: f.strLn, Text: f.str, Kind: KindJSXText})
		return
	}
	if f.attr != "" && hinted(f.attr, KindJSXAttr) {
		s.addCandidate(Candidate{Line: f.strLn, Text: f.str, Kind: KindJSXAttr, Attribute: f.attr})
	}
}

// popKind pops frames up to and including the innermost frame of kind k.
// Unbalanced input pops nothing.
func (s *scanner) popKind(k frameKind) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].kind == k {
			s.frames = s.frames[:i]
			return
		}
	}
}

// skipRegex consumes a regex literal in expression position. A newline
// before the closing slash means it was a division after all; give up.
func (s *scanner) skipRegex() {
	s.pos++
	inClass := false
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch c {
		case '\\':
			s.pos += 2
			continue
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '\n':
			s.significant("/")
			return
		case '/':
			if !inClass {
				s.pos++
				for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
					s.pos++
				}
				s.significant("\x00re")
				return
			}
		}
		s.pos++
	}
}

// addCandidate records a candidate after the user-facing check.
func (s *scanner) addCandidate(c Candidate) {
	if !userFacing(c.Text) {
		return
	}
	s.cands = append(s.cands, c)
}
