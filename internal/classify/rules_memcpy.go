package classify

func memcpyPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassSubstr:    "memcpyopt",
			MessageSubstr: "non-constant size",
			ShortReason:   "Memcpy/memset formation skipped: copy size not a compile-time constant",
			DetailedExplanation: "The element-wise store sequence in {FunctionName} copies a runtime-" +
				"variable number of bytes, so it cannot be folded into a single memcpy intrinsic call.",
			RootCause:       "Loop bound or copy length depends on a function argument or computed value.",
			OptimizerIntent: "Only fold a store sequence into memcpy when its exact size is known statically.",
			Severity:        Low,
			EstimatedSpeedup: 1.1,
		},
		{
			PassSubstr:    "memcpyopt",
			MessageSubstr: "overlapping",
			ShortReason:   "Memcpy formation skipped: source and destination may overlap",
			DetailedExplanation: "{FunctionName}'s store sequence looks like a copy, but the source and " +
				"destination ranges cannot be proven disjoint, and memcpy has undefined behavior on overlap.",
			RootCause:       "Missing __restrict__ or provable disjointness between the two pointers.",
			OptimizerIntent: "Never introduce a memcpy where memmove semantics were actually required.",
			Severity:        Medium,
			EstimatedSpeedup: 1.4,
			Suggestions: []FixSuggestion{
				{
					Description:   "Mark the pointers __restrict__ if the caller guarantees disjoint ranges.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:  "memcpyopt",
			ShortReason: "Store sequence not folded into a memcpy/memset in {FunctionName}",
			DetailedExplanation: "A candidate store sequence was left as individual stores.",
			RootCause:   "See the attached message for the pass's stated reason.",
			Severity:    Low,
			EstimatedSpeedup: 1.1,
		},
	}
}
