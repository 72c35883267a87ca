package classify

func inlinePatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassSubstr:    "inline",
			MessageSubstr: "noinline",
			ShortReason:   "Inlining rejected: noinline attribute present on {FunctionName}",
			DetailedExplanation: "The callee carries an explicit noinline attribute, so the inliner " +
				"refuses to consider it regardless of cost.",
			RootCause:       "Source-level noinline annotation (attribute or pragma) on {FunctionName}.",
			OptimizerIntent: "Respect the author's explicit request to keep this call site out-of-line.",
			Severity:        High,
			EstimatedSpeedup: 1.25,
			Suggestions: []FixSuggestion{
				{
					Description:   "Remove the noinline attribute if it was left over from debugging.",
					CodeExample:   "__attribute__((noinline)) void {FunctionName}(...) // delete this line",
					IsSourceLevel: true,
				},
				{
					Description:   "If the attribute is intentional (binary size, debuggability), leave it and ignore this diagnostic.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:    "inline",
			MessageSubstr: "too costly",
			ShortReason:   "Inlining rejected: cost model threshold exceeded",
			DetailedExplanation: "The inliner estimated the cost of inlining {FunctionName} into its " +
				"caller above the configured threshold.",
			RootCause:       "Callee body is large or contains constructs the cost model penalizes (loops, calls, allocas).",
			OptimizerIntent: "Avoid code-size blowup from inlining bodies unlikely to pay for themselves.",
			Severity:        Medium,
			EstimatedSpeedup: 1.1,
			Suggestions: []FixSuggestion{
				{
					Description:   "Mark the call site inline (or __forceinline / always_inline) if profiling shows it matters.",
					CodeExample:   "__attribute__((always_inline)) inline void {FunctionName}(...)",
					IsSourceLevel: true,
				},
				{
					Description: "Split the hot fast-path out of {FunctionName} into a small helper so only that part inlines.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:    "inline",
			MessageSubstr: "recursive",
			ShortReason:   "Inlining rejected: recursive call",
			DetailedExplanation: "{FunctionName} calls itself (directly or through a cycle), and the " +
				"inliner does not unroll recursion.",
			RootCause:       "Direct or mutual recursion at the call site.",
			OptimizerIntent: "Avoid infinite or runaway expansion of a recursive call graph.",
			Severity:        Low,
			EstimatedSpeedup: 1.0,
			Suggestions: []FixSuggestion{
				{
					Description: "Convert the recursion to an explicit loop if the recursion depth is small and fixed.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:      "inline",
			RemarkSubstr:    "NotInlined",
			ShortReason:     "Inlining rejected at call site in {FunctionName}",
			DetailedExplanation: "The inliner declined this call site for a reason not covered by a more specific rule.",
			RootCause:       "See the attached message for the inliner's stated reason.",
			OptimizerIntent: "Keep code size and compile time bounded by not inlining unconditionally.",
			Severity:        Medium,
			EstimatedSpeedup: 1.05,
		},
	}
}
