package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_ReadText(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility")
	}
	s := &System{read: func() (string, error) { return "copied words", nil }}

	text, err := s.ReadText()

	require.NoError(t, err)
	assert.Equal(t, "copied words", text)
}

func TestSystem_ReadTextError(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility")
	}
	s := &System{read: func() (string, error) { return "", errors.New("xclip: exit 1") }}

	_, err := s.ReadText()

	assert.ErrorContains(t, err, "read clipboard: xclip: exit 1")
}

func TestSystem_Unsupported(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("clipboard utility present")
	}

	_, err := NewSystem().ReadText()

	assert.Error(t, err)
}
