package cli

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: ExitSuccess},
		{name: "plain error", err: errors.New("boom"), expected: ExitFailure},
		{name: "command error", err: NewExitError(ExitCommandError, "bad flag"), expected: ExitCommandError},
		{name: "wrapped exit error", err: fmt.Errorf("outer: %w", WrapExitError(ExitCommandError, "inner", os.ErrNotExist)), expected: ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetExitCode(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	err := WrapExitError(ExitFailure, "conversion failed", os.ErrNotExist)

	assert.Equal(t, "conversion failed: file does not exist", err.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "bad flag", NewExitError(ExitCommandError, "bad flag").Error())
}

func TestFlags_ToConfigFlags(t *testing.T) {
	f := &Flags{Merge: true, Encoding: "gbk", Output: "o.data", NameFilter: "*x*", ShowCases: true, Quiet: true}
	cf := f.ToConfigFlags()

	assert.True(t, cf.Merge)
	assert.Equal(t, "gbk", cf.Encoding)
	assert.Equal(t, "o.data", cf.Output)
	assert.Equal(t, "*x*", cf.NameFilter)
	assert.True(t, cf.ShowCases)
	assert.True(t, cf.Quiet)
}
