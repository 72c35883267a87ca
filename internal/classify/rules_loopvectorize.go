package classify

func loopVectorizePatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassSubstr:    "loop-vectorize",
			MessageSubstr: "unsafe dependent memory operations",
			ShortReason:   "Loop vectorization blocked: memory dependency / aliasing",
			DetailedExplanation: "The vectorizer could not prove that loads and stores across loop " +
				"iterations in {FunctionName} are independent, so vectorizing could reorder " +
				"conflicting memory accesses.",
			RootCause:       "Two or more pointer parameters may alias, or the access pattern is not provably strided.",
			OptimizerIntent: "Never reorder memory operations that might actually conflict at runtime.",
			Severity:        Critical,
			EstimatedSpeedup: 4.0,
			Suggestions: []FixSuggestion{
				{
					Description:   "Mark the pointer parameters __restrict__ to assert they do not alias.",
					CodeExample:   "void {FunctionName}(int *__restrict__ a, const int *__restrict__ b, int n)",
					IsSourceLevel: true,
				},
				{
					Description:   "Add a runtime alias check before the loop and keep a scalar fallback for the aliasing case.",
					IsSourceLevel: true,
				},
				{
					Description: "Hoist the aliasing check into the caller if the pointers are known disjoint by construction.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:    "loop-vectorize",
			MessageSubstr: "small trip count",
			ShortReason:   "Loop vectorization blocked: trip count too small to amortize",
			DetailedExplanation: "The loop's estimated or known trip count in {FunctionName} is too " +
				"small for the vector width to pay for itself.",
			RootCause:       "Loop bound is small, possibly a compile-time constant below the vector width.",
			OptimizerIntent: "Avoid vectorization overhead (setup, remainder handling) exceeding its benefit.",
			Severity:        Low,
			EstimatedSpeedup: 1.0,
			Suggestions: []FixSuggestion{
				{
					Description: "If the trip count is runtime-variable but usually large, add a pragma hint (#pragma clang loop vectorize(enable)).",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:    "loop-vectorize",
			MessageSubstr: "not a vectorizable",
			ShortReason:   "Loop vectorization blocked: non-vectorizable control flow",
			DetailedExplanation: "{FunctionName}'s loop body contains control flow (early exit, " +
				"irreducible branch, call without a vector variant) the vectorizer cannot model.",
			RootCause:       "Unsupported statement kind inside the loop body.",
			OptimizerIntent: "Only vectorize loops whose body is a straight-line computation per iteration.",
			Severity:        High,
			EstimatedSpeedup: 2.0,
			Suggestions: []FixSuggestion{
				{
					Description: "Hoist the early-exit condition out of the loop, or split the loop into a vectorizable prefix and a scalar remainder.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:      "loop-vectorize",
			ShortReason:     "Loop vectorization blocked",
			DetailedExplanation: "{FunctionName}'s loop was not vectorized for a reason not covered by a more specific rule.",
			RootCause:       "See the attached message for the vectorizer's stated reason.",
			OptimizerIntent: "Only vectorize loops it can prove safe and profitable.",
			Severity:        Medium,
			EstimatedSpeedup: 1.5,
		},
	}
}
