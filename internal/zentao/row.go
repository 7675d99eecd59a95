package zentao

import (
	"strconv"
	"strings"

	"xmind2zentao/internal/domain"
)

var moduleReplacer = strings.NewReplacer("（", "(", "）", ")")

// GenerateRow maps a test case to its import row
func GenerateRow(tc domain.TestCase) domain.Row {
	steps, expected := StepsAndExpected(tc.Steps)
	return domain.Row{
		Module:          Module(tc.Suite),
		Title:           tc.Name,
		Preconditions:   tc.Preconditions,
		Steps:           steps,
		ExpectedResults: expected,
		Keywords:        "",
		Priority:        tc.Importance.Label(),
		CaseType:        tc.ExecutionType.Label(),
		ApplyPhase:      domain.ApplyPhase,
	}
}

// Module returns the module column for a suite path. Full-width parentheses
// become ASCII ones; an empty suite is written as "/".
func Module(suite string) string {
	if suite == "" {
		return domain.EmptyModule
	}
	return moduleReplacer.Replace(suite)
}

// StepsAndExpected renders the numbered steps and expected results columns.
// A step without an expected result adds no line to the expected column.
func StepsAndExpected(steps []domain.Step) (string, string) {
	var stepText, expectedText strings.Builder
	for _, s := range steps {
		num := strconv.Itoa(s.StepNumber)
		stepText.WriteString(num + ". " + flatten(s.Actions) + "\n")
		if s.ExpectedResults != "" {
			expectedText.WriteString(num + ". " + flatten(s.ExpectedResults) + "\n")
		}
	}
	return stepText.String(), expectedText.String()
}

// flatten drops line breaks and trims the result
func flatten(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", ""))
}
