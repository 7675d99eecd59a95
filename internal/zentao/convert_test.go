package zentao

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xmind2zentao/internal/config"
	"xmind2zentao/internal/domain"
	"xmind2zentao/internal/parser"
	"xmind2zentao/internal/storage"
)

func newTestConverter() *Converter {
	return NewConverter(parser.NewCaseListParser(), storage.NewCSVStorage(config.New()))
}

// copyFixture copies testdata/cases.json into a temp dir under name.
func copyFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "cases.json"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestConverter_Golden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	tests := []struct {
		name  string
		merge bool
	}{
		{name: "plain", merge: false},
		{name: "merged", merge: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := copyFixture(t, "cases.json")
			output := filepath.Join(filepath.Dir(source), "out.data")

			result, err := newTestConverter().ConvertTo(source, output, tt.merge)
			require.NoError(t, err)

			data, err := os.ReadFile(result.Output)
			require.NoError(t, err)
			g.Assert(t, tt.name, data)
		})
	}
}

func TestConverter_Convert(t *testing.T) {
	source := copyFixture(t, "regression.json")

	output, err := newTestConverter().Convert(source, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(source), "regressio.data"), output)

	rows, err := storage.NewCSVStorage(config.New()).Load(output)
	require.NoError(t, err)
	require.Len(t, rows, 3, "one row per test case")
	assert.Equal(t, "Login > Valid", rows[0].Title)
	assert.Equal(t, "Login > Invalid", rows[1].Title)
	assert.Equal(t, "Logout", rows[2].Title)
}

func TestConverter_ConvertTo_Result(t *testing.T) {
	source := copyFixture(t, "cases.json")
	output := filepath.Join(filepath.Dir(source), "out.data")

	result, err := newTestConverter().ConvertTo(source, output, true)
	require.NoError(t, err)

	assert.Equal(t, source, result.Source)
	assert.Equal(t, output, result.Output)
	assert.Equal(t, 3, result.Cases)
	assert.Equal(t, 2, result.Rows)
	assert.True(t, result.Merged)
}

func TestConverter_Overwrites(t *testing.T) {
	source := copyFixture(t, "cases.json")
	output := filepath.Join(filepath.Dir(source), "out.data")
	require.NoError(t, os.WriteFile(output, []byte("stale\nstale\nstale\nstale\nstale\n"), 0644))

	c := newTestConverter()
	_, err := c.ConvertTo(source, output, false)
	require.NoError(t, err)
	_, err = c.ConvertTo(source, output, true)
	require.NoError(t, err)

	rows, err := storage.NewCSVStorage(config.New()).Load(output)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "only the merged result remains")
}

func TestConverter_Idempotent(t *testing.T) {
	for _, merge := range []bool{false, true} {
		source := copyFixture(t, "cases.json")
		c := newTestConverter()

		output, err := c.Convert(source, merge)
		require.NoError(t, err)
		first, err := os.ReadFile(output)
		require.NoError(t, err)

		output, err = c.Convert(source, merge)
		require.NoError(t, err)
		second, err := os.ReadFile(output)
		require.NoError(t, err)

		assert.Equal(t, first, second, "merge=%v", merge)
	}
}

func TestConverter_ParseError(t *testing.T) {
	source := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(source, []byte("{"), 0644))

	_, err := newTestConverter().Convert(source, false)
	assert.Error(t, err)
	_, statErr := os.Stat(OutputPath(source))
	assert.ErrorIs(t, statErr, os.ErrNotExist, "nothing written when parsing fails")
}

type recordingProgress struct {
	total    int
	updates  []int
	finished bool
}

func (p *recordingProgress) Start(total int) { p.total = total }
func (p *recordingProgress) Update(done int) { p.updates = append(p.updates, done) }
func (p *recordingProgress) Finish()         { p.finished = true }

func TestConverter_Rows_ReportsProgress(t *testing.T) {
	source := copyFixture(t, "cases.json")
	progress := &recordingProgress{}

	c := newTestConverter()
	c.SetProgress(progress)
	rows, cases, err := c.Rows(source, false)
	require.NoError(t, err)

	assert.Equal(t, 3, cases)
	assert.Len(t, rows, 3)
	assert.Equal(t, 3, progress.total)
	assert.Equal(t, []int{1, 2, 3}, progress.updates)
	assert.True(t, progress.finished)

	titles := make([]string, 0, len(rows))
	for _, r := range rows {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"Login > Valid", "Login > Invalid", "Logout"}, titles)
	for _, r := range rows {
		assert.Len(t, r.Fields(), domain.ColumnCount)
	}
}
