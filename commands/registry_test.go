package commands

import (
	"fmt"
	"sync"
	"testing"

	"github.com/brettbedarf/fme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Single(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("md", fme.MdCommand)

	name, err := r.Lookup("md")
	require.NoError(t, err)
	assert.Equal(t, fme.MdCommand, name)
}

func TestRegister_DuplicateKeepsFirst(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("x", fme.MdCommand)
	r.Register("x", fme.RmCommand)

	name, err := r.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, fme.MdCommand, name)
	assert.Equal(t, 1, r.Len())
}

func TestRegister_Concurrent(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	r := NewRegistry()

	for i := range 100 {
		wg.Go(func() {
			token := fmt.Sprintf("cmd%d", i)
			r.Register(token, fme.MfCommand)
			name, err := r.Lookup(token)
			assert.NoError(t, err)
			assert.Equal(t, fme.MfCommand, name)
		})
	}
	wg.Wait()
	assert.Equal(t, 100, r.Len())
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	name, err := r.Lookup("ls")

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "Unknown command is met: ls")
	assert.Equal(t, fme.UnknownCommand, name)
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	assert.Equal(t, len(fme.CommandNames), r.Len())
	for _, want := range fme.CommandNames {
		got, err := r.Lookup(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// names are case sensitive
	_, err := r.Lookup("MD")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
