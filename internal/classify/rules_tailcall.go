package classify

func tailCallPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassSubstr:    "tailcallelim",
			MessageSubstr: "escapes",
			ShortReason:   "Tail call elimination blocked: address of a local escapes",
			DetailedExplanation: "{FunctionName} takes the address of a stack local and that address may " +
				"outlive the call, so the frame cannot be reused for the tail call.",
			RootCause:       "A local variable's address is passed to the recursive call or stored globally.",
			OptimizerIntent: "Never reuse a stack frame still reachable through an escaped pointer.",
			Severity:        Medium,
			EstimatedSpeedup: 1.2,
			Suggestions: []FixSuggestion{
				{
					Description: "Restructure the recursive call so no local's address crosses the tail call boundary.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:    "tailcallelim",
			MessageSubstr: "not in tail position",
			ShortReason:   "Tail call elimination blocked: call is not in tail position",
			DetailedExplanation: "The recursive or self call in {FunctionName} is followed by further work " +
				"(cleanup, a non-trivial return expression), so it is not a true tail call.",
			RootCause:       "Caller does work with the callee's result before returning.",
			OptimizerIntent: "Only eliminate a call whose result is returned immediately and unmodified.",
			Severity:        Low,
			EstimatedSpeedup: 1.0,
			Suggestions: []FixSuggestion{
				{
					Description: "Rewrite as an accumulator-passing tail-recursive form if the post-call work is an associative fold.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:  "tailcallelim",
			ShortReason: "Tail call elimination blocked in {FunctionName}",
			DetailedExplanation: "A self or mutual recursive call was not converted to a loop.",
			RootCause:   "See the attached message for the pass's stated reason.",
			Severity:    Low,
			EstimatedSpeedup: 1.0,
		},
	}
}
