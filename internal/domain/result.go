package domain

import "time"

// ConversionResult describes one converted source file
type ConversionResult struct {
	Source   string        // Path of the test case list
	Output   string        // Path of the written import file
	Cases    int           // Test cases read from the source
	Rows     int           // Data rows written, header excluded
	Merged   bool          // Whether the merge pass ran
	Duration time.Duration // Time taken to convert
}
