package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScripted_ReplaysInOrder(t *testing.T) {
	ctx := context.Background()
	p := NewScripted("Engineering", "Second", "yes", "n")

	name, err := p.Input(ctx, "Name?")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", name)

	idx, err := p.Select(ctx, "Pick", []string{"First", "Second", "Third"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	ok, err := p.Confirm(ctx, "Sure?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Confirm(ctx, "Again?")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []string{"Name?", "Pick", "Sure?", "Again?"}, p.Asked)
	assert.Zero(t, p.Remaining())
}

func TestScripted_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewScripted("Missing").Select(ctx, "Pick", []string{"A", "B"})
	assert.ErrorContains(t, err, `"Missing" is not an option`)

	_, err = NewScripted("maybe").Confirm(ctx, "Sure?")
	assert.Error(t, err)

	_, err = NewScripted().Input(ctx, "Name?")
	assert.ErrorContains(t, err, "no scripted answer")
}
