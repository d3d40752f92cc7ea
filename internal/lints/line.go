package lints

import (
	"regexp"
	"strings"
	"unicode/utf8"

	tt "github.com/pystyle/pystyle/internal/types"
)

// maxLineLength is the PEP8 line limit, in characters.
const maxLineLength = 79

var (
	defSpacesRe   = regexp.MustCompile(`^[^#]? *_?_?def {2,}`)
	classSpacesRe = regexp.MustCompile(`^[^#]? *class {2,}`)
	classLowerRe  = regexp.MustCompile(`^ *class +[a-z]`)
	classUndscrRe = regexp.MustCompile(`^ *class +[a-zA-Z]+_`)
	funcNamingRe  = regexp.MustCompile(`^ *def +[a-z0-9_]*[A-Z]`)
)

func newIssue(code tt.RuleCode, filename string, line int) tt.Issue {
	return tt.Issue{
		Rule:     code,
		Filename: filename,
		Line:     line,
		Message:  code.Description(),
	}
}

// CheckLineLength reports S001 for lines longer than 79 characters.
// Length is counted in characters, not bytes.
func CheckLineLength(filename, line string, lineNum int) []tt.Issue {
	if utf8.RuneCountInString(line) > maxLineLength {
		return []tt.Issue{newIssue(tt.TooLong, filename, lineNum)}
	}
	return nil
}

// CheckIndentation reports S002 when the leading space count is not a
// multiple of four. Tabs do not count as indentation here.
func CheckIndentation(filename, line string, lineNum int) []tt.Issue {
	spaces := 0
	for _, c := range []byte(line) {
		if c != ' ' {
			break
		}
		spaces++
	}
	if spaces > 0 && spaces%4 != 0 {
		return []tt.Issue{newIssue(tt.Indentation, filename, lineNum)}
	}
	return nil
}

// CheckSemicolon reports S003 when the statement part of the line (before
// any comment) ends with a semicolon.
func CheckSemicolon(filename, line string, lineNum int) []tt.Issue {
	code, _, _ := strings.Cut(line, "#")
	code = strings.TrimRight(code, " \t\n\v\f\r")
	if strings.HasSuffix(code, ";") {
		return []tt.Issue{newIssue(tt.Semicolon, filename, lineNum)}
	}
	return nil
}

// CheckCommentSpacing reports S004 when an inline comment is not preceded
// by at least two spaces. Full-line comments are exempt.
func CheckCommentSpacing(filename, line string, lineNum int) []tt.Issue {
	if strings.HasPrefix(line, "#") {
		return nil
	}
	before, _, found := strings.Cut(line, "#")
	if found && !strings.HasSuffix(before, "  ") {
		return []tt.Issue{newIssue(tt.CommentSpacing, filename, lineNum)}
	}
	return nil
}

// CheckTodo reports S005 when a comment contains "todo" in any casing,
// at most once per line.
func CheckTodo(filename, line string, lineNum int) []tt.Issue {
	_, comment, found := strings.Cut(line, "#")
	if found && strings.Contains(strings.ToLower(comment), "todo") {
		return []tt.Issue{newIssue(tt.Todo, filename, lineNum)}
	}
	return nil
}

// CheckConstructionSpacing reports S007 when a def or class keyword is
// followed by more than one space.
func CheckConstructionSpacing(filename, line string, lineNum int) []tt.Issue {
	if defSpacesRe.MatchString(line) || classSpacesRe.MatchString(line) {
		return []tt.Issue{newIssue(tt.ConstructionSpaces, filename, lineNum)}
	}
	return nil
}

// CheckClassNaming reports S008 for class names that start lowercase or
// contain an underscore.
func CheckClassNaming(filename, line string, lineNum int) []tt.Issue {
	if classLowerRe.MatchString(line) || classUndscrRe.MatchString(line) {
		return []tt.Issue{newIssue(tt.ClassNaming, filename, lineNum)}
	}
	return nil
}

// CheckFunctionNaming reports S009 for function names containing an
// uppercase letter.
func CheckFunctionNaming(filename, line string, lineNum int) []tt.Issue {
	if funcNamingRe.MatchString(line) {
		return []tt.Issue{newIssue(tt.FunctionNaming, filename, lineNum)}
	}
	return nil
}
