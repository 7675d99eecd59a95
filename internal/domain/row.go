package domain

// ColumnCount is the number of columns in every ZenTao import row
const ColumnCount = 9

// Row is one line of the ZenTao import file
type Row struct {
	Module          string
	Title           string
	Preconditions   string
	Steps           string
	ExpectedResults string
	Keywords        string
	Priority        string
	CaseType        string
	ApplyPhase      string
}

// Fields returns the row in column order
func (r Row) Fields() []string {
	return []string{
		r.Module,
		r.Title,
		r.Preconditions,
		r.Steps,
		r.ExpectedResults,
		r.Keywords,
		r.Priority,
		r.CaseType,
		r.ApplyPhase,
	}
}

// Records returns the header followed by every row's fields, ready for a CSV writer.
func Records(rows []Row) [][]string {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, Header())
	for _, r := range rows {
		records = append(records, r.Fields())
	}
	return records
}
