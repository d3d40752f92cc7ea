package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RuleCode identifies one style violation kind (S001..S012).
type RuleCode string

const (
	TooLong            RuleCode = "S001"
	Indentation        RuleCode = "S002"
	Semicolon          RuleCode = "S003"
	CommentSpacing     RuleCode = "S004"
	Todo               RuleCode = "S005"
	BlankLines         RuleCode = "S006"
	ConstructionSpaces RuleCode = "S007"
	ClassNaming        RuleCode = "S008"
	FunctionNaming     RuleCode = "S009"
	ArgumentNaming     RuleCode = "S010"
	VariableNaming     RuleCode = "S011"
	MutableDefault     RuleCode = "S012"
)

// ruleDescriptions is the fixed rule catalog. Initialized once, never mutated.
var ruleDescriptions = map[RuleCode]string{
	TooLong:            "Too long",
	Indentation:        "Indentation is not a multiple of four",
	Semicolon:          "Unnecessary semicolon after a statement",
	CommentSpacing:     "Less than two spaces before inline comments",
	Todo:               "TODO found",
	BlankLines:         "More than two blank lines preceding a code line",
	ConstructionSpaces: "Too many spaces after construction_name (def or class)",
	ClassNaming:        "Class name class_name should be written in CamelCase",
	FunctionNaming:     "Function name function_name should be written in snake_case",
	ArgumentNaming:     "Argument name arg_name should be written in snake_case",
	VariableNaming:     "Variable var_name should be written in snake_case",
	MutableDefault:     "The default argument value is mutable",
}

// AllRuleCodes lists every rule code in catalog order.
var AllRuleCodes = []RuleCode{
	TooLong, Indentation, Semicolon, CommentSpacing, Todo, BlankLines,
	ConstructionSpaces, ClassNaming, FunctionNaming, ArgumentNaming,
	VariableNaming, MutableDefault,
}

// Description returns the fixed human-readable description for the code.
func (c RuleCode) Description() string {
	return ruleDescriptions[c]
}

// Valid reports whether the code names a rule in the catalog.
func (c RuleCode) Valid() bool {
	_, ok := ruleDescriptions[c]
	return ok
}

// Issue represents one style violation found in a checked file.
type Issue struct {
	Rule     RuleCode `json:"rule"`
	Filename string   `json:"filename"`
	Line     int      `json:"line"`
	Message  string   `json:"message"`
}

// String renders the issue in the canonical report format.
func (i Issue) String() string {
	return fmt.Sprintf("%s: Line %d: %s %s", i.Filename, i.Line, i.Rule, i.Message)
}

// Severity controls whether a configured rule reports or stays silent.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityOff:
		return "off"
	default:
		return "error"
	}
}

// UnmarshalYAML accepts "error", "warning" and "off".
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "", "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "off", "false":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q", value.Value)
	}
	return nil
}

// MarshalYAML renders the severity as its string form.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// ConfigRule holds the per-rule configuration.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}
