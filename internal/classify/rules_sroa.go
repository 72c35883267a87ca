package classify

func sroaPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassSubstr:    "sroa",
			MessageSubstr: "escapes",
			ShortReason:   "Scalar replacement blocked: aggregate escapes",
			DetailedExplanation: "A local aggregate in {FunctionName} is passed by address to a call or " +
				"stored somewhere SROA cannot track, so it cannot be split into independent scalars.",
			RootCause:       "The aggregate's address is taken and observed outside the function.",
			OptimizerIntent: "Only split an aggregate into registers when every use is provably local.",
			Severity:        Medium,
			EstimatedSpeedup: 1.3,
			Suggestions: []FixSuggestion{
				{
					Description:   "Pass the fields the callee actually needs individually instead of the whole struct's address.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:    "sroa",
			MessageSubstr: "dynamic index",
			ShortReason:   "Scalar replacement blocked: non-constant field/element index",
			DetailedExplanation: "An access into the aggregate in {FunctionName} uses a runtime-computed " +
				"index, so SROA cannot map it to a single split scalar.",
			RootCause:       "Array or union access with an index that is not a compile-time constant.",
			OptimizerIntent: "Never split storage in a way that could turn a valid dynamic access into undefined behavior.",
			Severity:        Low,
			EstimatedSpeedup: 1.0,
		},
		{
			PassSubstr:  "sroa",
			ShortReason: "Scalar replacement of aggregate blocked in {FunctionName}",
			DetailedExplanation: "An aggregate local was not split into independent scalars.",
			RootCause:   "See the attached message for SROA's stated reason.",
			Severity:    Medium,
			EstimatedSpeedup: 1.2,
		},
	}
}
