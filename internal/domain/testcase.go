package domain

// TestCase is one parsed test case as exported from the outline.
type TestCase struct {
	Suite         string        `json:"suite" yaml:"suite"`
	Name          string        `json:"name" yaml:"name"`
	Preconditions string        `json:"preconditions" yaml:"preconditions"`
	Steps         []Step        `json:"steps" yaml:"steps"`
	Importance    Priority      `json:"importance" yaml:"importance"`
	ExecutionType ExecutionType `json:"execution_type" yaml:"execution_type"`
}

// Step is a single numbered action of a test case
type Step struct {
	StepNumber      int    `json:"step_number" yaml:"step_number"`
	Actions         string `json:"actions" yaml:"actions"`
	ExpectedResults string `json:"expectedresults,omitempty" yaml:"expectedresults,omitempty"`
}
