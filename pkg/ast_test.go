package shork

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASTGetFindsNodeRegardlessOfInsertionOrder(t *testing.T) {
	a := NewAST()
	a.Add(Node{ID: 3})
	a.Add(Node{ID: 1})
	a.Add(Node{ID: 2})

	n, err := a.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 2, n.ID)
}

func TestASTGetErrorsOnMissingID(t *testing.T) {
	a := NewAST()
	a.Add(Node{ID: 1})

	_, err := a.Get(99)
	assert.Error(t, err)
}

func TestASTSiblingsErrorsOnRoot(t *testing.T) {
	a := NewAST()
	a.Add(Node{ID: 1})

	n, err := a.Get(1)
	require.NoError(t, err)

	_, err = a.Siblings(n)
	assert.Error(t, err)
}

func TestASTSiblingsIncludesSelf(t *testing.T) {
	a := NewAST()
	parentID := 0
	a.Add(Node{ID: 0, Children: []int{1, 2}})
	a.Add(Node{ID: 1, Parent: &parentID})
	a.Add(Node{ID: 2, Parent: &parentID})

	n, err := a.Get(1)
	require.NoError(t, err)

	sibs, err := a.Siblings(n)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, sibs)
}

func TestASTRoots(t *testing.T) {
	a := NewAST()
	parentID := 0
	a.Add(Node{ID: 0})
	a.Add(Node{ID: 1, Parent: &parentID})

	assert.Equal(t, []int{0}, a.Roots())
}

func TestASTSetRootAllReparentsEveryRoot(t *testing.T) {
	a := NewAST()
	a.Add(Node{ID: 0})
	a.Add(Node{ID: 1})
	a.Add(Node{ID: 2})

	a.SetRootAll(2)

	assert.Equal(t, []int{2}, a.Roots())

	n0, err := a.Get(0)
	require.NoError(t, err)
	require.NotNil(t, n0.Parent)
	assert.Equal(t, 2, *n0.Parent)
}

func TestASTCloneIntoMergesDisjointFragments(t *testing.T) {
	left := NewAST()
	left.Add(Node{ID: 0})

	right := NewAST()
	right.Add(Node{ID: 1})

	dst := NewAST()
	left.CloneInto(dst)
	right.CloneInto(dst)

	assert.ElementsMatch(t, []int{0, 1}, dst.Roots())
}

func TestASTPrintRendersEveryRootIndented(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	a := NewAST()
	parentID := 0
	a.Add(Node{ID: 0, Tok: Token{Typ: TokenPlus}, Children: []int{1}})
	a.Add(Node{ID: 1, Tok: Token{Typ: TokenIntegerType, Raw: encodeInt64(1)}, Parent: &parentID})

	var buf strings.Builder
	a.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "Plus")
	assert.Contains(t, out, "IntegerType")
	assert.True(t, strings.HasPrefix(strings.SplitN(out, "\n", 2)[1], "    "))
}
