package classify

func slpVectorizePatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassSubstr:    "slp-vectorize",
			MessageSubstr: "not beneficial",
			ShortReason:   "Straight-line vectorization skipped: not profitable",
			DetailedExplanation: "The SLP vectorizer found a group of isomorphic scalar operations in " +
				"{FunctionName} but estimated packing them into a vector would not be profitable.",
			RootCause:       "Packing/unpacking overhead (shuffles, extracts) outweighs the arithmetic saved.",
			OptimizerIntent: "Only vectorize scalar chains whose net cost is lower than the scalar form.",
			Severity:        Low,
			EstimatedSpeedup: 1.0,
			Suggestions: []FixSuggestion{
				{
					Description: "Group the related scalar loads/stores contiguously in memory so the pack is a single vector load.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:    "slp-vectorize",
			MessageSubstr: "unsupported",
			ShortReason:   "Straight-line vectorization skipped: unsupported operation mix",
			DetailedExplanation: "{FunctionName} contains an operation in the candidate chain the target's " +
				"vector ISA cannot express directly.",
			RootCause:       "Mixed-width types or an operation with no vector lowering on the target.",
			OptimizerIntent: "Never emit a vector instruction the target cannot execute.",
			Severity:        Medium,
			EstimatedSpeedup: 1.2,
		},
		{
			PassSubstr:   "slp-vectorize",
			ShortReason:  "Straight-line vectorization skipped",
			DetailedExplanation: "A group of scalar operations in {FunctionName} was not packed into a vector.",
			RootCause:    "See the attached message for the vectorizer's stated reason.",
			Severity:     Medium,
			EstimatedSpeedup: 1.15,
		},
	}
}
