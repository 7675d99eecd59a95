package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"xmind2zentao/internal/domain"
)

// CaseListParser reads a list of test cases stored as JSON or YAML.
// The format is picked from the file extension; anything other than .json is
// decoded as YAML, which also accepts plain JSON documents.
type CaseListParser struct{}

// NewCaseListParser creates a new CaseListParser
func NewCaseListParser() *CaseListParser {
	return &CaseListParser{}
}

// Parse reads all test cases from path
func (p *CaseListParser) Parse(path string) ([]domain.TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test case list: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return p.ParseJSON(data)
	}
	return p.ParseYAML(data)
}

// ParseJSON decodes a JSON array of test cases
func (p *CaseListParser) ParseJSON(data []byte) ([]domain.TestCase, error) {
	var cases []domain.TestCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("decode json test cases: %w", err)
	}
	return cases, nil
}

// ParseYAML decodes a YAML sequence of test cases. An empty document yields no cases.
func (p *CaseListParser) ParseYAML(data []byte) ([]domain.TestCase, error) {
	var cases []domain.TestCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("decode yaml test cases: %w", err)
	}
	return cases, nil
}
