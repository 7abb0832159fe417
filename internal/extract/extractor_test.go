package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantalab/qce/internal/types"
)

func TestForLanguage(t *testing.T) {
	for _, lang := range types.SupportedLanguages {
		e, ok := ForLanguage(lang)
		assert.True(t, ok, "%s must have an extractor", lang)
		assert.Equal(t, lang, e.Language())
	}

	_, ok := ForLanguage(types.LangUnknown)
	assert.False(t, ok)
}

func TestCountLines(t *testing.T) {
	code := "a = 1\n\n# comment\n  # indented comment\nb = 2\n"
	assert.Equal(t, 2, countLines(code, "#"))
	assert.Equal(t, 4, countLines(code, "//"))
	assert.Equal(t, 0, countLines("", "#"))
}

func TestCountKeywordLines_LeadingTokenOnly(t *testing.T) {
	code := `for i in items:
    forward = compute(i)
    iffy = 1
    if iffy:
        pass
FOR J IN K:
`
	// "forward" and "iffy" must not count; keyword match is on the
	// leading word token, case-insensitive.
	assert.Equal(t, 2, countKeywordLines(code, loopKeywords))
	assert.Equal(t, 1, countKeywordLines(code, conditionalKeywords))
}

func TestNestingDepth(t *testing.T) {
	assert.Equal(t, 0, nestingDepth("", 4))
	assert.Equal(t, 2, nestingDepth("f(g(x))", 0))
	// Unbalanced closers clamp at zero instead of going negative.
	assert.Equal(t, 1, nestingDepth(")))(", 0))
	// Indentation pass: 8 spaces at width 4 is depth 2.
	assert.Equal(t, 2, nestingDepth("if a:\n    if b:\n        pass\n", 4))
}

func TestParseIndexList(t *testing.T) {
	got, ok := parseIndexList("0")
	assert.True(t, ok)
	assert.Equal(t, []int{0}, got)

	got, ok = parseIndexList("[0, 1]")
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1}, got)

	got, ok = parseIndexList(" 2 , 5 ")
	assert.True(t, ok)
	assert.Equal(t, []int{2, 5}, got)

	for _, bad := range []string{"", "[]", "qr", "0, x"} {
		_, ok := parseIndexList(bad)
		assert.False(t, ok, "%q must not parse", bad)
	}
}

func TestSplitControls(t *testing.T) {
	targets, controls := splitControls(types.GateCX, []int{0, 1})
	assert.Equal(t, []int{1}, targets)
	assert.Equal(t, []int{0}, controls)

	targets, controls = splitControls(types.GateToffoli, []int{0, 1, 2})
	assert.Equal(t, []int{2}, targets)
	assert.Equal(t, []int{0, 1}, controls)

	// Single-qubit kinds keep everything as targets.
	targets, controls = splitControls(types.GateH, []int{3})
	assert.Equal(t, []int{3}, targets)
	assert.Nil(t, controls)

	// An entangling kind with one index has nothing to split.
	targets, controls = splitControls(types.GateCX, []int{1})
	assert.Equal(t, []int{1}, targets)
	assert.Nil(t, controls)
}
