package hanoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPuzzle(t *testing.T) {
	p, err := New(3)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Level())
	assert.Equal(t, []Disk{3, 2, 1}, p.Pile(0))
	assert.Empty(t, p.Pile(1))
	assert.Empty(t, p.Pile(2))
	assert.Equal(t, "[3 2 1] [] []", p.String())
}

func TestInitializeInvalidLevel(t *testing.T) {
	for _, n := range []int{0, -1, -42} {
		_, err := New(n)
		assert.ErrorIs(t, err, ErrInvalidLevel, "New(%d)", n)
	}

	p, err := New(2)
	require.NoError(t, err)
	require.NoError(t, p.Move(0, 1))

	// A rejected level leaves the puzzle as it was
	assert.ErrorIs(t, p.Initialize(0), ErrInvalidLevel)
	assert.Equal(t, 2, p.Level())
	assert.Equal(t, []Disk{1}, p.Pile(1))
}

func TestInitializeResets(t *testing.T) {
	p, err := New(3)
	require.NoError(t, err)
	require.NoError(t, p.Move(0, 2))
	require.NoError(t, p.Move(0, 1))

	require.NoError(t, p.Initialize(4))
	assert.Equal(t, []Disk{4, 3, 2, 1}, p.Pile(0))
	assert.Zero(t, p.Height(1))
	assert.Zero(t, p.Height(2))
}

func TestMoveIllegal(t *testing.T) {
	tests := []struct {
		name     string
		setup    []Move
		from, to int
	}{
		{name: "empty source", from: 1, to: 2},
		{name: "larger onto smaller", setup: []Move{{0, 2}}, from: 0, to: 2},
		{name: "same pile", from: 0, to: 0},
		{name: "source out of range", from: 3, to: 1},
		{name: "destination out of range", from: 0, to: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := New(3)
			require.NoError(t, err)
			for _, m := range tc.setup {
				require.NoError(t, p.Apply(m))
			}
			before := p.String()

			err = p.Move(tc.from, tc.to)
			assert.ErrorIs(t, err, ErrIllegalMove)
			assert.Equal(t, before, p.String(), "failed move must not change the puzzle")
		})
	}
}

func TestMoveOntoLargerDisk(t *testing.T) {
	p, err := New(3)
	require.NoError(t, err)

	require.NoError(t, p.Move(0, 2)) // 1 -> pile 2
	require.NoError(t, p.Move(0, 1)) // 2 -> pile 1
	require.NoError(t, p.Move(2, 1)) // 1 onto 2

	assert.Equal(t, []Disk{2, 1}, p.Pile(1))
	top, ok := p.Top(1)
	assert.True(t, ok)
	assert.Equal(t, Disk(1), top)

	_, ok = p.Top(2)
	assert.False(t, ok)
}

func TestIsSolved(t *testing.T) {
	p, err := New(1)
	require.NoError(t, err)

	assert.False(t, p.IsSolved(2))
	assert.True(t, p.IsSolved(0))
	require.NoError(t, p.Move(0, 2))
	assert.True(t, p.IsSolved(2))
	assert.False(t, p.IsSolved(5))
}

func TestPileReturnsCopy(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)

	pile := p.Pile(0)
	pile[0] = 99
	assert.Equal(t, []Disk{2, 1}, p.Pile(0))
	assert.Nil(t, p.Pile(7))
}

func TestClone(t *testing.T) {
	p, err := New(3)
	require.NoError(t, err)

	c := p.Clone()
	require.NoError(t, c.Move(0, 1))

	assert.Equal(t, 3, p.Height(0))
	assert.Equal(t, 2, c.Height(0))
	assert.Equal(t, p.Level(), c.Level())
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "0->2", Move{From: 0, To: 2}.String())
}
