package extract

import (
	"strings"

	"github.com/quantalab/qce/internal/types"
)

// PythonExtractor handles plain host-language submissions. There are no
// quantum constructs to find: registers, gates and measurements are
// always empty, and only imports, callable units and the shallow source
// metadata are extracted.
type PythonExtractor struct{}

// NewPythonExtractor creates a Python extractor.
func NewPythonExtractor() *PythonExtractor { return &PythonExtractor{} }

// Language implements Extractor.
func (e *PythonExtractor) Language() types.Language { return types.LangPython }

// Extract implements Extractor.
func (e *PythonExtractor) Extract(code string) *types.Extraction {
	return &types.Extraction{
		Imports:   e.extractImports(code),
		Functions: extractFunctions(code),
		Metadata:  sourceMetadata(code, "#"),
	}
}

func (e *PythonExtractor) extractImports(code string) []string {
	var imports []string
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from ") {
			imports = append(imports, trimmed)
		}
	}
	return imports
}
