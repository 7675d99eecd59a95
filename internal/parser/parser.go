package parser

import "xmind2zentao/internal/domain"

// Parser reads the test cases exported from a test outline
type Parser interface {
	Parse(path string) ([]domain.TestCase, error)
}
