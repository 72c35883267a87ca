package classify

func unrollPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassSubstr:    "unroll",
			MessageSubstr: "runtime trip count",
			ShortReason:   "Loop unrolling skipped: trip count not known at compile time",
			DetailedExplanation: "{FunctionName}'s loop bound is only known at runtime, so the unroller " +
				"could not fully unroll it and fell back to its runtime-unroll heuristics.",
			RootCause:       "Loop bound is a function parameter or load result, not a constant.",
			OptimizerIntent: "Only fully unroll loops whose iteration count is statically known.",
			Severity:        Low,
			EstimatedSpeedup: 1.1,
			Suggestions: []FixSuggestion{
				{
					Description: "Add #pragma unroll <n> or #pragma clang loop unroll_count(n) if a typical bound is known.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:    "unroll",
			MessageSubstr: "too large",
			ShortReason:   "Loop unrolling skipped: body exceeds size threshold",
			DetailedExplanation: "Unrolling the loop body in {FunctionName} by the configured factor would " +
				"exceed the unroller's code-size budget.",
			RootCause:       "Loop body contains many instructions, calls, or nested control flow.",
			OptimizerIntent: "Avoid unroll-induced code bloat and instruction-cache pressure.",
			Severity:        Low,
			EstimatedSpeedup: 1.05,
			Suggestions: []FixSuggestion{
				{
					Description: "Request a smaller explicit unroll factor with #pragma clang loop unroll_count(n).",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:  "unroll",
			ShortReason: "Loop unrolling skipped in {FunctionName}",
			DetailedExplanation: "The loop was left rolled.",
			RootCause:   "See the attached message for the unroller's stated reason.",
			Severity:    Low,
			EstimatedSpeedup: 1.0,
		},
	}
}
