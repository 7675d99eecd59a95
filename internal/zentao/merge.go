package zentao

import (
	"strconv"
	"strings"

	"xmind2zentao/internal/domain"
)

// Merge folds rows whose titles share the part before " > " into one row per
// title, in first-seen order. The part after the separator becomes the first
// line of each folded block, and every line of the n-th block is prefixed
// with "n.".
//
// A title without the separator is treated as its own sub-case, so its first
// line repeats the title ("1.<title>").
func Merge(rows []domain.Row) []domain.Row {
	merged := make([]domain.Row, 0, len(rows))
	index := make(map[string]int)
	counts := make(map[string]int)

	for _, row := range rows {
		title, subCase := splitTitle(row.Title)
		steps := subCase + "\n" + row.Steps
		expected := subCase + "\n" + row.ExpectedResults

		i, ok := index[title]
		if !ok {
			first := row
			first.Title = title
			first.Steps = labelLines("1.", steps)
			first.ExpectedResults = labelLines("1.", expected)
			index[title] = len(merged)
			counts[title] = 1
			merged = append(merged, first)
			continue
		}

		counts[title]++
		label := strconv.Itoa(counts[title]) + "."
		merged[i].Steps += "\n" + labelLines(label, steps)
		merged[i].ExpectedResults += "\n" + labelLines(label, expected)
	}

	return merged
}

// splitTitle returns the group title and the sub-case name of a row title.
func splitTitle(title string) (string, string) {
	parts := strings.Split(title, domain.TitleSeparator)
	switch len(parts) {
	case 1:
		return parts[0], parts[0]
	case 2:
		return parts[0], parts[1]
	default:
		return parts[0], strings.Join(parts[1:], "")
	}
}

// labelLines prefixes each line with label. The last segment after the final
// line break is dropped and no terminator is added back.
func labelLines(label, text string) string {
	lines := strings.Split(text, "\n")
	lines = lines[:len(lines)-1]
	for i, line := range lines {
		lines[i] = label + line
	}
	return strings.Join(lines, "\n")
}
