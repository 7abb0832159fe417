package pyast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidAndInvalid(t *testing.T) {
	src, ok := Parse("x = 1\n")
	require.True(t, ok)
	src.Close()

	_, ok = Parse("def broken(:\n")
	assert.False(t, ok, "grammar errors must report not-ok")
}

func TestFunctions(t *testing.T) {
	src, ok := Parse(`def plain(a, b):
    return a + b

def typed(x: int, y: int = 0) -> int:
    return x + y

class Box:
    def method(self):
        pass
`)
	require.True(t, ok)
	defer src.Close()

	fns := src.Functions()
	require.Len(t, fns, 3)

	assert.Equal(t, "plain", fns[0].Name)
	assert.Equal(t, []string{"a", "b"}, fns[0].Args)
	assert.Equal(t, 1, fns[0].Line)

	assert.Equal(t, "typed", fns[1].Name)
	assert.Equal(t, []string{"x", "y"}, fns[1].Args)

	assert.Equal(t, "method", fns[2].Name)
	assert.Equal(t, []string{"self"}, fns[2].Args)
}

func TestAverageComplexity(t *testing.T) {
	src, ok := Parse(`def simple():
    return 1
`)
	require.True(t, ok)
	assert.Equal(t, 1, src.AverageComplexity())
	src.Close()

	src, ok = Parse(`def branchy(x):
    if x > 0:
        for i in range(x):
            while i:
                i -= 1
    return x
`)
	require.True(t, ok)
	// 1 + if + for + while.
	assert.Equal(t, 4, src.AverageComplexity())
	src.Close()

	// Total integer-divided across functions.
	src, ok = Parse(`def a(x):
    if x:
        pass
    if not x:
        pass

def b():
    return 0
`)
	require.True(t, ok)
	assert.Equal(t, 2, src.AverageComplexity())
	src.Close()
}

func TestAverageComplexity_NoFunctions(t *testing.T) {
	src, ok := Parse("x = 1\nif x:\n    x = 2\n")
	require.True(t, ok)
	defer src.Close()
	assert.Equal(t, 1, src.AverageComplexity())
}

func TestHasRecursion(t *testing.T) {
	src, ok := Parse(`def fact(n):
    if n <= 1:
        return 1
    return n * fact(n - 1)
`)
	require.True(t, ok)
	assert.True(t, src.HasRecursion())
	src.Close()

	src, ok = Parse(`def outer(n):
    return helper(n)

def helper(n):
    return n
`)
	require.True(t, ok)
	assert.False(t, src.HasRecursion(), "calling another function is not self-recursion")
	src.Close()
}
