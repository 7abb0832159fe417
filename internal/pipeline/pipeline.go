// Package pipeline sequences detection, extraction and analysis into
// the single analyze operation consumed by the service boundary. Each
// invocation is independent: no state survives between submissions, so
// one Pipeline may serve concurrent callers without coordination.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/quantalab/qce/internal/analysis"
	"github.com/quantalab/qce/internal/detect"
	qceerrors "github.com/quantalab/qce/internal/errors"
	"github.com/quantalab/qce/internal/extract"
	"github.com/quantalab/qce/internal/types"
)

// memory reported for classical submissions, which never simulate a state.
const classicalMemoryMB = 1.0

// problemKeywords maps lowercase source keywords to a problem type,
// evaluated in fixed priority order with first match winning.
var problemKeywords = []struct {
	keywords []string
	problem  types.ProblemType
}{
	{[]string{"grover", "oracle"}, types.ProblemSearch},
	{[]string{"vqe", "qaoa", "optimizer"}, types.ProblemOptimization},
	{[]string{"shor", "factor"}, types.ProblemFactorization},
	{[]string{"qnn", "machine"}, types.ProblemMachineLearning},
	{[]string{"qft", "fourier"}, types.ProblemSampling},
}

// Pipeline wires the detector, the per-notation extractors and both
// analyzers. All components are read-only after construction.
type Pipeline struct {
	detector  *detect.Detector
	classical *analysis.ClassicalAnalyzer
	quantum   *analysis.QuantumAnalyzer
}

// New creates a fully wired analysis pipeline.
func New() *Pipeline {
	return &Pipeline{
		detector:  detect.New(),
		classical: analysis.NewClassicalAnalyzer(),
		quantum:   analysis.NewQuantumAnalyzer(),
	}
}

// Detect classifies the notation of the submission.
func (p *Pipeline) Detect(code string) types.Detection {
	return p.detector.Detect(code)
}

// Analyze runs the full pipeline: detect, extract, analyze, classify,
// assemble. It fails with an UnsupportedInputError when the notation is
// unknown, and with an AnalysisError on any unexpected internal failure;
// there is no partial-result recovery.
func (p *Pipeline) Analyze(code string) (result *types.AnalysisResult, err error) {
	// Extraction and analysis are contractually non-failing; anything
	// that still escapes is surfaced as one opaque analysis failure.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = qceerrors.NewAnalysisError("analyze", fmt.Errorf("panic: %v", r))
		}
	}()

	detection := p.Detect(code)
	if !detection.Supported {
		return nil, qceerrors.NewUnsupportedInputError(detection.Language, detection.Details)
	}

	extractor, ok := extract.ForLanguage(detection.Language)
	if !ok {
		return nil, qceerrors.NewAnalysisError("extract",
			fmt.Errorf("no extractor registered for %q", detection.Language))
	}

	ext := extractor.Extract(code)
	circuit := types.NewCircuit(detection.Language, ext)

	var classicalMetrics *types.ClassicalMetrics
	var quantumMetrics *types.QuantumMetrics

	if detection.Language.IsQuantum() {
		qm := p.quantum.Analyze(circuit)
		quantumMetrics = &qm
		// Quantum notations embedded in a host language still carry
		// classical structure worth scoring.
		if ext.Metadata.LinesOfCode > 0 {
			cm := p.classical.Analyze(code, ext.Metadata, len(ext.Functions))
			classicalMetrics = &cm
		}
	} else {
		cm := p.classical.Analyze(code, ext.Metadata, len(ext.Functions))
		classicalMetrics = &cm
	}

	problemType := classifyProblemType(code, detection.Language.IsQuantum())

	return p.assemble(code, detection, ext, classicalMetrics, quantumMetrics, problemType), nil
}

// classifyProblemType searches the lowercase source for algorithm
// keywords in fixed priority order.
func classifyProblemType(code string, isQuantum bool) types.ProblemType {
	if !isQuantum {
		return types.ProblemClassical
	}

	lower := strings.ToLower(code)
	for _, entry := range problemKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.problem
			}
		}
	}
	return types.ProblemSimulation
}

// assemble merges the analyzer outputs into the terminal record,
// flattening the router-facing scalars.
func (p *Pipeline) assemble(
	code string,
	detection types.Detection,
	ext *types.Extraction,
	classicalMetrics *types.ClassicalMetrics,
	quantumMetrics *types.QuantumMetrics,
	problemType types.ProblemType,
) *types.AnalysisResult {
	result := &types.AnalysisResult{
		SubmissionID:       fmt.Sprintf("%016x", xxhash.Sum64String(code)),
		DetectedLanguage:   detection.Language,
		LanguageConfidence: detection.Confidence,
		ProblemType:        problemType,
		ClassicalMetrics:   classicalMetrics,
		QuantumMetrics:     quantumMetrics,
		ConfidenceScore:    detection.Confidence,
		AnalysisNotes: fmt.Sprintf("Analyzed %s code with %d LOC",
			detection.Language, ext.Metadata.LinesOfCode),
	}

	if quantumMetrics != nil {
		result.QubitsRequired = quantumMetrics.QubitsRequired
		result.CircuitDepth = quantumMetrics.CircuitDepth
		result.GateCount = quantumMetrics.GateCount
		result.CXGateRatio = quantumMetrics.CXGateRatio
		result.SuperpositionScore = quantumMetrics.SuperpositionScore
		result.EntanglementScore = quantumMetrics.EntanglementScore
		result.MemoryRequirementMB = p.quantum.EstimateMemoryMB(quantumMetrics.QubitsRequired)
		result.IsQuantumEligible = true
		result.ProblemSize = quantumMetrics.QubitsRequired

		if quantumMetrics.HasEntanglement {
			result.TimeComplexity = types.ComplexityQuantumAdvantage
		} else {
			result.TimeComplexity = types.ComplexityLinear
		}
		return result
	}

	result.MemoryRequirementMB = classicalMemoryMB
	result.ProblemSize = max(ext.Metadata.LinesOfCode, 1)
	if classicalMetrics != nil {
		result.TimeComplexity = classicalMetrics.TimeComplexity
	} else {
		result.TimeComplexity = types.ComplexityLinear
	}
	return result
}
