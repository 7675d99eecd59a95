package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xmind2zentao/internal/domain"
)

const jsonCases = `[
  {
    "suite": "用户中心（登录）",
    "name": "Login > Valid",
    "preconditions": "account exists",
    "importance": 1,
    "execution_type": 1,
    "steps": [
      {"step_number": 1, "actions": "Open app", "expectedresults": "Login page"},
      {"step_number": 2, "actions": "Submit form", "expectedresults": ""}
    ]
  },
  {
    "name": "Logout",
    "steps": []
  }
]`

const yamlCases = `
- suite: 用户中心
  name: Login > Invalid
  importance: 2
  execution_type: 2
  steps:
    - step_number: 1
      actions: |
        Enter a wrong
        password
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCaseListParser_Parse(t *testing.T) {
	p := NewCaseListParser()

	t.Run("json by extension", func(t *testing.T) {
		cases, err := p.Parse(writeFile(t, "cases.json", jsonCases))
		require.NoError(t, err)
		require.Len(t, cases, 2)

		assert.Equal(t, "用户中心（登录）", cases[0].Suite)
		assert.Equal(t, domain.PriorityCritical, cases[0].Importance)
		assert.Equal(t, domain.ExecutionManual, cases[0].ExecutionType)
		require.Len(t, cases[0].Steps, 2)
		assert.Equal(t, "Login page", cases[0].Steps[0].ExpectedResults)

		assert.Equal(t, "", cases[1].Suite)
		assert.Equal(t, domain.PriorityUndefined, cases[1].Importance)
		assert.Empty(t, cases[1].Steps)
	})

	t.Run("yaml by extension", func(t *testing.T) {
		cases, err := p.Parse(writeFile(t, "cases.yaml", yamlCases))
		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Equal(t, domain.ExecutionAutomated, cases[0].ExecutionType)
		assert.Equal(t, "Enter a wrong\npassword\n", cases[0].Steps[0].Actions)
	})

	t.Run("unknown extension falls back to yaml", func(t *testing.T) {
		cases, err := p.Parse(writeFile(t, "cases.txt", jsonCases))
		require.NoError(t, err)
		assert.Len(t, cases, 2)
	})

	t.Run("empty yaml document", func(t *testing.T) {
		cases, err := p.Parse(writeFile(t, "empty.yml", ""))
		require.NoError(t, err)
		assert.Empty(t, cases)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := p.Parse(writeFile(t, "broken.json", `{"name": `))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := p.Parse(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
