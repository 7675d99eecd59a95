package zentao

import (
	"fmt"
	"time"

	"xmind2zentao/internal/domain"
	"xmind2zentao/internal/parser"
	"xmind2zentao/internal/storage"
)

// Progress receives row generation progress
type Progress interface {
	Start(total int)
	Update(done int)
	Finish()
}

// Converter turns test case lists into ZenTao import files
type Converter struct {
	parser   parser.Parser
	storage  storage.Storage
	progress Progress
}

// NewConverter creates a new Converter
func NewConverter(p parser.Parser, st storage.Storage) *Converter {
	return &Converter{
		parser:  p,
		storage: st,
	}
}

// SetProgress sets the progress reporter used while generating rows
func (c *Converter) SetProgress(progress Progress) {
	c.progress = progress
}

// Convert writes the import file for source next to it and returns its path.
func (c *Converter) Convert(source string, merge bool) (string, error) {
	result, err := c.ConvertTo(source, OutputPath(source), merge)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// ConvertTo writes the import file for source to output, replacing any
// existing file there.
func (c *Converter) ConvertTo(source, output string, merge bool) (*domain.ConversionResult, error) {
	start := time.Now()

	rows, cases, err := c.Rows(source, merge)
	if err != nil {
		return nil, err
	}

	if err := c.storage.Save(output, rows); err != nil {
		return nil, fmt.Errorf("write %s: %w", output, err)
	}

	return &domain.ConversionResult{
		Source:   source,
		Output:   output,
		Cases:    cases,
		Rows:     len(rows),
		Merged:   merge,
		Duration: time.Since(start),
	}, nil
}

// Rows parses source and builds its data rows without writing anything.
// It also returns the number of test cases read.
func (c *Converter) Rows(source string, merge bool) ([]domain.Row, int, error) {
	cases, err := c.parser.Parse(source)
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", source, err)
	}

	if c.progress != nil {
		c.progress.Start(len(cases))
	}
	rows := make([]domain.Row, 0, len(cases))
	for i, tc := range cases {
		rows = append(rows, GenerateRow(tc))
		if c.progress != nil {
			c.progress.Update(i + 1)
		}
	}
	if c.progress != nil {
		c.progress.Finish()
	}

	if merge {
		rows = Merge(rows)
	}
	return rows, len(cases), nil
}
