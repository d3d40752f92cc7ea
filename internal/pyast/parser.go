package pyast

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ParseError reports malformed source that the parser cannot recover from.
type ParseError struct {
	Filename string
	Line     int
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Msg)
}

// logicalLine is one Python logical line: physical lines joined across
// brackets, backslash continuations and triple-quoted strings, with string
// contents masked and comments removed.
type logicalLine struct {
	start  int // 1-based first physical line
	indent int
	code   string
}

// ParseFile parses the named file. If src is non-nil it is used instead of
// reading from disk.
func ParseFile(filename string, src []byte) (*File, error) {
	if src == nil {
		content, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		src = content
	}
	p := &parser{filename: filename}
	return p.parse(src)
}

type parser struct {
	filename string
}

func (p *parser) errorf(line int, format string, args ...interface{}) error {
	return &ParseError{Filename: p.filename, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parse(src []byte) (*File, error) {
	lines, err := p.logicalLines(src)
	if err != nil {
		return nil, err
	}
	return p.buildTree(lines)
}

const (
	stCode = iota
	stString
	stTriple
)

// logicalLines splits the source into logical lines. String literals are
// masked down to their quotes so later stages can treat `#`, commas and
// equals signs positionally.
func (p *parser) logicalLines(src []byte) ([]logicalLine, error) {
	physical := strings.Split(string(src), "\n")

	var (
		out       []logicalLine
		code      strings.Builder
		startLine int
		indent    int
		depth     int
		state     = stCode
		quote     byte
		strCont   bool // single-quoted string continued by a trailing backslash
		backCont  bool // code continued by a trailing backslash
	)

	for li, raw := range physical {
		ln := li + 1
		raw = strings.TrimSuffix(raw, "\r")

		continuing := state != stCode || depth > 0 || backCont || code.Len() > 0
		if !continuing {
			startLine = ln
			indent = indentWidth(raw)
		}
		backCont = false
		strCont = false

		hardCont := false
		i := 0
	scan:
		for i < len(raw) {
			c := raw[i]
			switch state {
			case stTriple:
				delim := strings.Repeat(string(quote), 3)
				switch {
				case strings.HasPrefix(raw[i:], delim):
					code.WriteByte('"')
					state = stCode
					i += 3
				case c == '\\':
					i += 2
				default:
					i++
				}
			case stString:
				switch {
				case c == '\\' && i == len(raw)-1:
					strCont = true
					i++
				case c == '\\':
					i += 2
				case c == quote:
					code.WriteByte('"')
					state = stCode
					i++
				default:
					i++
				}
			default: // stCode
				switch c {
				case '#':
					i = len(raw)
				case '\'', '"':
					quote = c
					if strings.HasPrefix(raw[i:], strings.Repeat(string(c), 3)) {
						state = stTriple
						code.WriteByte('"')
						i += 3
					} else {
						state = stString
						code.WriteByte('"')
						i++
					}
				case '(', '[', '{':
					depth++
					code.WriteByte(c)
					i++
				case ')', ']', '}':
					depth--
					if depth < 0 {
						return nil, p.errorf(ln, "unmatched %q", string(c))
					}
					code.WriteByte(c)
					i++
				case '\\':
					if i == len(raw)-1 {
						hardCont = true
						break scan
					}
					code.WriteByte(c)
					i++
				default:
					code.WriteByte(c)
					i++
				}
			}
		}

		switch state {
		case stTriple:
			// masked content spans physical lines
			continue
		case stString:
			if strCont {
				continue
			}
			return nil, p.errorf(ln, "unterminated string literal")
		default:
			if hardCont {
				backCont = true
				code.WriteByte(' ')
				continue
			}
			if depth > 0 {
				code.WriteByte(' ')
				continue
			}
			text := strings.TrimSpace(code.String())
			code.Reset()
			if text != "" {
				out = append(out, logicalLine{start: startLine, indent: indent, code: text})
			}
		}
	}

	last := len(physical)
	switch {
	case state == stTriple:
		return nil, p.errorf(last, "unterminated triple-quoted string")
	case state == stString:
		return nil, p.errorf(last, "unterminated string literal")
	case depth > 0:
		return nil, p.errorf(last, "unexpected end of file, unclosed bracket")
	}
	if text := strings.TrimSpace(code.String()); text != "" {
		out = append(out, logicalLine{start: startLine, indent: indent, code: text})
	}

	return out, nil
}

func indentWidth(line string) int {
	n := 0
	for _, c := range []byte(line) {
		if c != ' ' && c != '\t' {
			break
		}
		n++
	}
	return n
}

type blockKind int

const (
	blockModule blockKind = iota
	blockClass
	blockFunc
)

type block struct {
	kind   blockKind
	indent int
}

var (
	defHeaderRe   = regexp.MustCompile(`^(?:async[ \t]+)?def[ \t]+([A-Za-z_][A-Za-z0-9_]*)[ \t]*\(`)
	classHeaderRe = regexp.MustCompile(`^class\b`)
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
	bareIdentRe   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	numberRe      = regexp.MustCompile(`^(?:0[xX][0-9a-fA-F_]+|0[oO][0-7_]+|0[bB][01_]+|(?:\d[\d_]*(?:\.[\d_]*)?|\.\d[\d_]*)(?:[eE][+-]?\d[\d_]*)?[jJ]?)$`)
	maskedStrRe   = regexp.MustCompile(`^[A-Za-z]{0,2}""$`)
)

// statement keywords that can never start a plain assignment
var stmtKeywords = map[string]bool{
	"if": true, "elif": true, "else": true, "for": true, "while": true,
	"return": true, "import": true, "from": true, "with": true, "try": true,
	"except": true, "finally": true, "raise": true, "pass": true,
	"break": true, "continue": true, "global": true, "nonlocal": true,
	"del": true, "assert": true, "yield": true, "lambda": true,
}

// compound-statement keywords whose inline suite after a top-level ':' shares
// the enclosing block
var suiteKeywords = map[string]bool{
	"if": true, "elif": true, "else": true, "for": true, "while": true,
	"with": true, "try": true, "except": true, "finally": true,
}

// buildTree walks the logical lines with an indentation-based block stack and
// emits FuncDef and Assign nodes in source order.
func (p *parser) buildTree(lines []logicalLine) (*File, error) {
	file := &File{}
	stack := []block{{kind: blockModule, indent: -1}}

	for _, ll := range lines {
		for len(stack) > 1 && ll.indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}

		switch {
		case defHeaderRe.MatchString(ll.code):
			fn, suite, err := p.parseDef(ll)
			if err != nil {
				return nil, err
			}
			file.Nodes = append(file.Nodes, fn)
			if suite != "" {
				// inline body, no indented block follows
				appendAssigns(file, ll.start, suite, true)
			} else {
				stack = append(stack, block{kind: blockFunc, indent: ll.indent})
			}
		case classHeaderRe.MatchString(ll.code):
			if idx := topLevelIndex(ll.code, ':'); idx >= 0 && strings.TrimSpace(ll.code[idx+1:]) != "" {
				appendAssigns(file, ll.start, ll.code[idx+1:], false)
			} else {
				stack = append(stack, block{kind: blockClass, indent: ll.indent})
			}
		default:
			code := ll.code
			if suiteKeywords[identRe.FindString(code)] {
				idx := topLevelIndex(code, ':')
				if idx < 0 {
					continue
				}
				code = code[idx+1:]
			}
			appendAssigns(file, ll.start, code, stack[len(stack)-1].kind == blockFunc)
		}
	}

	return file, nil
}

// appendAssigns parses one or more simple statements separated by top-level
// semicolons and appends the resulting Assign nodes.
func appendAssigns(file *File, line int, code string, funcScoped bool) {
	for _, part := range splitTopLevel(code, ';') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if assign := parseAssign(part, line); assign != nil {
			assign.FuncScoped = funcScoped
			file.Nodes = append(file.Nodes, assign)
		}
	}
}

// parseDef parses a function definition header. The returned suite text is
// non-empty for inline bodies (`def f(): return 1`).
func (p *parser) parseDef(ll logicalLine) (*FuncDef, string, error) {
	m := defHeaderRe.FindStringSubmatchIndex(ll.code)
	name := ll.code[m[2]:m[3]]

	// m[1] is just past the opening parenthesis
	depth := 1
	i := m[1]
	for ; i < len(ll.code) && depth > 0; i++ {
		switch ll.code[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
	}
	if depth != 0 {
		return nil, "", p.errorf(ll.start, "unclosed parameter list in def %s", name)
	}
	paramsText := ll.code[m[1] : i-1]

	colon := topLevelIndex(ll.code[i:], ':')
	if colon < 0 {
		return nil, "", p.errorf(ll.start, "expected ':' after parameter list in def %s", name)
	}
	suite := strings.TrimSpace(ll.code[i+colon+1:])

	return &FuncDef{Line: ll.start, Name: name, Params: parseParams(paramsText)}, suite, nil
}

// parseParams extracts the named positional parameters. Entries after a
// star (vararg, keyword-only) and positional-only markers are skipped.
func parseParams(s string) []Param {
	var params []Param
	afterStar := false
	for _, part := range splitTopLevel(s, ',') {
		part = strings.TrimSpace(part)
		if part == "" || part == "/" {
			continue
		}
		if strings.HasPrefix(part, "*") {
			afterStar = true
			continue
		}
		if afterStar {
			continue
		}
		name := identRe.FindString(part)
		if name == "" {
			continue
		}
		param := Param{Name: name}
		if eq := assignIndex(part); eq >= 0 {
			expr := classifyExpr(part[eq+1:])
			param.Default = &expr
		}
		params = append(params, param)
	}
	return params
}

// parseAssign recognizes a plain assignment statement and returns nil for
// anything else (annotated assignments, augmented assignments, expressions).
func parseAssign(code string, line int) *Assign {
	word := identRe.FindString(code)
	if stmtKeywords[word] {
		return nil
	}

	var splits []int
	depth := 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '=':
			if depth != 0 {
				continue
			}
			if i+1 < len(code) && code[i+1] == '=' {
				i++
				continue
			}
			if i > 0 && strings.IndexByte("=!<>+-*/%&|^:@", code[i-1]) >= 0 {
				continue
			}
			splits = append(splits, i)
		}
	}
	if len(splits) == 0 {
		return nil
	}

	// an annotated target makes this an annotated assignment, not an Assign
	first := code[:splits[0]]
	if topLevelIndex(first, ':') >= 0 {
		return nil
	}

	assign := &Assign{Line: line}
	prev := 0
	for _, pos := range splits {
		group := code[prev:pos]
		prev = pos + 1
		for _, t := range splitTopLevel(group, ',') {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			assign.Targets = append(assign.Targets, Target{
				Name:   t,
				Simple: bareIdentRe.MatchString(t),
			})
		}
	}
	return assign
}

// assignIndex returns the position of the first top-level '=' that is a
// default-value delimiter, or -1.
func assignIndex(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '=':
			if depth != 0 {
				continue
			}
			if i+1 < len(s) && s[i+1] == '=' {
				i++
				continue
			}
			if i > 0 && strings.IndexByte("=!<>+-*/%&|^:@", s[i-1]) >= 0 {
				continue
			}
			return i
		}
	}
	return -1
}

// topLevelIndex returns the index of the first occurrence of c outside any
// bracket pair, or -1.
func topLevelIndex(s string, c byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		default:
			if depth == 0 && s[i] == c {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits s on sep occurrences outside bracket pairs.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		default:
			if depth == 0 && s[i] == sep {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	return parts
}

// classifyExpr tags a default-value expression. String literals arrive
// masked down to their quotes.
func classifyExpr(text string) Expr {
	orig := strings.TrimSpace(text)
	s := orig

	// unwrap fully parenthesized expressions; (1) is still a constant
	for strings.HasPrefix(s, "(") && matchingClose(s) == len(s)-1 {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return Expr{Kind: ExprTuple, Text: orig}
		}
		if topLevelIndex(inner, ',') >= 0 {
			return Expr{Kind: ExprTuple, Text: orig}
		}
		s = inner
	}

	kind := ExprOther
	switch {
	case s == "":
		kind = ExprOther
	case s[0] == '[':
		kind = ExprList
	case s[0] == '{':
		kind = ExprDict
	case s == "True" || s == "False" || s == "None" || s == "...":
		kind = ExprConstant
	case numberRe.MatchString(s):
		kind = ExprConstant
	case isMaskedString(s):
		if strings.ContainsAny(s, "fF") {
			kind = ExprOther // formatted string, not a constant
		} else {
			kind = ExprConstant
		}
	default:
		if ident := identRe.FindString(s); ident != "" {
			rest := s[len(ident):]
			for strings.HasPrefix(rest, ".") {
				next := identRe.FindString(rest[1:])
				if next == "" {
					break
				}
				rest = rest[1+len(next):]
			}
			switch {
			case rest == "":
				kind = ExprName
			case rest[0] == '(' && matchingClose(rest) == len(rest)-1:
				kind = ExprCall
			}
		}
	}
	return Expr{Kind: kind, Text: orig}
}

// isMaskedString reports whether s consists solely of (possibly prefixed,
// possibly implicitly concatenated) masked string literals.
func isMaskedString(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !maskedStrRe.MatchString(f) {
			return false
		}
	}
	return true
}

// matchingClose returns the index of the bracket closing s[0], or -1.
func matchingClose(s string) int {
	if len(s) == 0 {
		return -1
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
