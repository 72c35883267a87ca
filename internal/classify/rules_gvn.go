package classify

func gvnPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassSubstr:    "gvn",
			MessageSubstr: "may alias",
			ShortReason:   "Redundant load elimination blocked: possible aliasing store between loads",
			DetailedExplanation: "GVN found two loads in {FunctionName} that look equivalent but could not " +
				"prove no intervening store clobbers the value, so it kept both loads.",
			RootCause:       "An intervening call or store through an unrelated pointer may alias the loaded address.",
			OptimizerIntent: "Never reuse a stale value across a store that might have changed it.",
			Severity:        Medium,
			EstimatedSpeedup: 1.3,
			Suggestions: []FixSuggestion{
				{
					Description:   "Mark the pointer __restrict__, or cache the loaded value in a local explicitly if aliasing is impossible.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:    "gvn",
			MessageSubstr: "partial redundancy",
			ShortReason:   "Partial redundancy elimination skipped: not profitable on all paths",
			DetailedExplanation: "{FunctionName} computes the same value on some but not all paths into a " +
				"join point, and hoisting it to the join would add cost on the paths that didn't need it.",
			RootCause:       "Control-flow-dependent availability of the redundant computation.",
			OptimizerIntent: "Avoid adding computation to a path that never needed it.",
			Severity:        Low,
			EstimatedSpeedup: 1.05,
		},
		{
			PassSubstr:  "gvn",
			ShortReason: "Redundant computation not eliminated in {FunctionName}",
			DetailedExplanation: "GVN found a candidate redundancy it could not safely remove.",
			RootCause:   "See the attached message for GVN's stated reason.",
			Severity:    Medium,
			EstimatedSpeedup: 1.1,
		},
	}
}
