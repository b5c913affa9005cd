package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(RepoNotFound, "repository root /tmp/x")
	assert.Equal(t, "[REPO_NOT_FOUND] repository root /tmp/x", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("stat failed")
	err := Wrap(InvalidInput, "bad path", cause)

	assert.Contains(t, err.Error(), "stat failed")
	assert.True(t, stderrors.Is(err, cause))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, NotADirectory, CodeOf(New(NotADirectory, "x")))
	assert.Equal(t, Internal, CodeOf(fmt.Errorf("plain")))
}
