package zentao

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xmind2zentao/internal/domain"
)

func row(title, steps, expected string) domain.Row {
	return domain.Row{
		Module:          "/",
		Title:           title,
		Steps:           steps,
		ExpectedResults: expected,
		Priority:        "3",
		CaseType:        domain.CaseTypeFunctional,
		ApplyPhase:      domain.ApplyPhase,
	}
}

func TestMerge_SharedPrefix(t *testing.T) {
	rows := []domain.Row{
		row("Login > Valid", "1. Open app\n2. Enter valid password\n", "1. Login page\n2. Home page\n"),
		row("Login > Invalid", "1. Open app\n", ""),
	}

	merged := Merge(rows)

	want := []domain.Row{
		row("Login",
			"1.Valid\n1.1. Open app\n1.2. Enter valid password\n2.Invalid\n2.1. Open app",
			"1.Valid\n1.1. Login page\n1.2. Home page\n2.Invalid",
		),
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

// A title without the separator is its own sub-case, so the title is
// repeated as the first labelled line.
func TestMerge_TitleWithoutSeparator(t *testing.T) {
	merged := Merge([]domain.Row{row("Logout", "1. Tap logout\n", "")})

	require.Len(t, merged, 1)
	assert.Equal(t, "Logout", merged[0].Title)
	assert.Equal(t, "1.Logout\n1.1. Tap logout", merged[0].Steps)
	assert.Equal(t, "1.Logout", merged[0].ExpectedResults)
}

func TestMerge_SplitRules(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantTitle string
		wantSteps string
	}{
		{name: "two parts", title: "A > B", wantTitle: "A", wantSteps: "1.B"},
		{name: "more parts joined without separator", title: "A > B > C", wantTitle: "A", wantSteps: "1.BC"},
		{name: "separator needs spaces", title: "A>B", wantTitle: "A>B", wantSteps: "1.A>B"},
		{name: "empty title", title: "", wantTitle: "", wantSteps: "1."},
		{name: "trailing separator", title: "A > ", wantTitle: "A", wantSteps: "1."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := Merge([]domain.Row{row(tt.title, "", "")})
			require.Len(t, merged, 1)
			assert.Equal(t, tt.wantTitle, merged[0].Title)
			assert.Equal(t, tt.wantSteps, merged[0].Steps)
		})
	}
}

func TestMerge_GroupsInFirstSeenOrder(t *testing.T) {
	first := row("B > 1", "1. x\n", "")
	first.Priority = "1"
	first.Module = "first"
	second := row("B > 2", "1. y\n", "")
	second.Priority = "4"
	second.Module = "second"

	rows := []domain.Row{
		first,
		row("A > 1", "1. z\n", ""),
		second,
		row("B > 3", "", ""),
	}

	merged := Merge(rows)

	require.Len(t, merged, 2)
	assert.Equal(t, "B", merged[0].Title)
	assert.Equal(t, "A", merged[1].Title)
	assert.Equal(t, "1", merged[0].Priority, "group keeps the first row's fields")
	assert.Equal(t, "first", merged[0].Module)
	assert.Equal(t, "1.1\n1.1. x\n2.2\n2.1. y\n3.3", merged[0].Steps)
	assert.Equal(t, "1.1\n2.2\n3.3", merged[0].ExpectedResults)
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	rows := []domain.Row{
		row("Login > Valid", "1. a\n", "1. b\n"),
		row("Login > Invalid", "1. c\n", ""),
	}
	before := append([]domain.Row(nil), rows...)

	Merge(rows)

	assert.Equal(t, before, rows)
}

func TestMerge_Empty(t *testing.T) {
	assert.Empty(t, Merge(nil))
}
