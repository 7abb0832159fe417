package types

// ProblemType is the coarse classification of a submission, consumed by
// the downstream routing decision.
type ProblemType string

const (
	ProblemSearch          ProblemType = "search"
	ProblemOptimization    ProblemType = "optimization"
	ProblemSimulation      ProblemType = "simulation"
	ProblemMachineLearning ProblemType = "machine_learning"
	ProblemFactorization   ProblemType = "factorization"
	ProblemSampling        ProblemType = "sampling"
	ProblemClassical       ProblemType = "classical"
	ProblemUnknown         ProblemType = "unknown"
)

// TimeComplexity is the estimated asymptotic time complexity class.
type TimeComplexity string

const (
	ComplexityConstant         TimeComplexity = "O(1)"
	ComplexityLogarithmic      TimeComplexity = "O(log n)"
	ComplexityLinear           TimeComplexity = "O(n)"
	ComplexityLinearithmic     TimeComplexity = "O(n log n)"
	ComplexityQuadratic        TimeComplexity = "O(n^2)"
	ComplexityCubic            TimeComplexity = "O(n^3)"
	ComplexityExponential      TimeComplexity = "O(2^n)"
	ComplexityFactorial        TimeComplexity = "O(n!)"
	ComplexityQuantumAdvantage TimeComplexity = "O(sqrt(n))"
	ComplexityUnknown          TimeComplexity = "unknown"
)

// Detection is the language detector verdict for a submission.
type Detection struct {
	Language   Language `json:"language"`
	Confidence float64  `json:"confidence"`
	Supported  bool     `json:"is_supported"`
	Details    string   `json:"details"`
}

// ClassicalMetrics holds control-flow and asymptotic complexity figures
// derived from the source text.
type ClassicalMetrics struct {
	CyclomaticComplexity int            `json:"cyclomatic_complexity"`
	TimeComplexity       TimeComplexity `json:"time_complexity"`
	SpaceComplexity      string         `json:"space_complexity"`
	LoopCount            int            `json:"loop_count"`
	ConditionalCount     int            `json:"conditional_count"`
	FunctionCount        int            `json:"function_count"`
	MaxNestingDepth      int            `json:"max_nesting_depth"`
	LinesOfCode          int            `json:"lines_of_code"`
}

// QuantumMetrics holds circuit-level metrics computed from the unified
// representation. Scores are clamped to [0,1] and rounded to 3 decimals.
type QuantumMetrics struct {
	QubitsRequired     int     `json:"qubits_required"`
	CircuitDepth       int     `json:"circuit_depth"`
	GateCount          int     `json:"gate_count"`
	SingleQubitGates   int     `json:"single_qubit_gates"`
	TwoQubitGates      int     `json:"two_qubit_gates"`
	CXGateCount        int     `json:"cx_gate_count"`
	CXGateRatio        float64 `json:"cx_gate_ratio"`
	MeasurementCount   int     `json:"measurement_count"`
	SuperpositionScore float64 `json:"superposition_score"`
	EntanglementScore  float64 `json:"entanglement_score"`
	HasSuperposition   bool    `json:"has_superposition"`
	HasEntanglement    bool    `json:"has_entanglement"`
	QuantumVolume      float64 `json:"quantum_volume"`
	EstimatedRuntimeMS float64 `json:"estimated_runtime_ms"`
}

// AnalysisResult is the terminal record handed to the routing decision.
// The scalar fields duplicate the per-analyzer records so the router
// never has to reach into the optional metric blocks.
type AnalysisResult struct {
	SubmissionID       string      `json:"submission_id"`
	DetectedLanguage   Language    `json:"detected_language"`
	LanguageConfidence float64     `json:"language_confidence"`
	ProblemType        ProblemType `json:"problem_type"`
	ProblemSize        int         `json:"problem_size"`

	ClassicalMetrics *ClassicalMetrics `json:"classical_metrics,omitempty"`
	QuantumMetrics   *QuantumMetrics   `json:"quantum_metrics,omitempty"`

	QubitsRequired      int            `json:"qubits_required"`
	CircuitDepth        int            `json:"circuit_depth"`
	GateCount           int            `json:"gate_count"`
	CXGateRatio         float64        `json:"cx_gate_ratio"`
	SuperpositionScore  float64        `json:"superposition_score"`
	EntanglementScore   float64        `json:"entanglement_score"`
	TimeComplexity      TimeComplexity `json:"time_complexity"`
	MemoryRequirementMB float64        `json:"memory_requirement_mb"`

	IsQuantumEligible bool    `json:"is_quantum_eligible"`
	ConfidenceScore   float64 `json:"confidence_score"`
	AnalysisNotes     string  `json:"analysis_notes"`
}
