package domain

import (
	"encoding/json"
	"math"

	"gopkg.in/yaml.v3"
)

// Priority is the importance code of a test case (1 is the most important).
type Priority int

const (
	PriorityUndefined Priority = 0
	PriorityCritical  Priority = 1
	PriorityHigh      Priority = 2
	PriorityMedium    Priority = 3
	PriorityLow       Priority = 4
)

// DefaultPriorityLabel is used for any priority outside 1..4
const DefaultPriorityLabel = "3"

// Label returns the value written to the 优先级 column.
func (p Priority) Label() string {
	switch p {
	case PriorityCritical:
		return "1"
	case PriorityHigh:
		return "2"
	case PriorityMedium:
		return "3"
	case PriorityLow:
		return "4"
	default:
		return DefaultPriorityLabel
	}
}

// UnmarshalJSON accepts any JSON value; non-integers decode as PriorityUndefined.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Priority(enumValue(v))
	return nil
}

// UnmarshalYAML accepts any YAML scalar; non-integers decode as PriorityUndefined.
func (p *Priority) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = Priority(enumValue(v))
	return nil
}

// ExecutionType says how a test case is executed.
type ExecutionType int

const (
	ExecutionUndefined ExecutionType = 0
	ExecutionManual    ExecutionType = 1
	ExecutionAutomated ExecutionType = 2
)

// Case type labels of the 用例类型 column
const (
	CaseTypeFunctional = "功能测试"
	CaseTypeAutomated  = "自动"
)

// Label returns the value written to the 用例类型 column. Unknown types are functional tests.
func (e ExecutionType) Label() string {
	switch e {
	case ExecutionManual:
		return CaseTypeFunctional
	case ExecutionAutomated:
		return CaseTypeAutomated
	default:
		return CaseTypeFunctional
	}
}

// UnmarshalJSON accepts any JSON value; non-integers decode as ExecutionUndefined.
func (e *ExecutionType) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = ExecutionType(enumValue(v))
	return nil
}

// UnmarshalYAML accepts any YAML scalar; non-integers decode as ExecutionUndefined.
func (e *ExecutionType) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	*e = ExecutionType(enumValue(v))
	return nil
}

// enumValue maps a decoded scalar to an enum code. Integral numbers keep their
// value, true is 1, everything else is 0.
func enumValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		if n > math.MaxInt32 {
			return 0
		}
		return int(n)
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return 0
		}
		return int(n)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}
