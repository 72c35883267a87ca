package classify

// catchAllPatterns covers cross-cutting situations that are not specific
// to one pass: an optnone function, and backend resource-limit notices
// synthesized by the collector.
func catchAllPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			MessageSubstr: "optnone",
			ShortReason:   "Optimization skipped: function marked optnone",
			DetailedExplanation: "{FunctionName} carries the optnone attribute, so the entire pass " +
				"pipeline treats it as opaque and every pass declines to transform it.",
			RootCause:       "Source-level optnone annotation, usually paired with noinline for debug builds.",
			OptimizerIntent: "Honor an explicit request to compile this function unoptimized.",
			Severity:        Info,
			EstimatedSpeedup: 1.0,
			Suggestions: []FixSuggestion{
				{
					Description:   "Remove the optnone attribute (and its usual noinline pair) outside of debug builds.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:   "backend",
			RemarkSubstr: "register",
			ShortReason:   "Register allocation pressure in {FunctionName}",
			DetailedExplanation: "The backend reported a resource usage close to or over a target limit " +
				"while allocating registers for {FunctionName}.",
			RootCause:       "Too many simultaneously live values for the target's register file.",
			OptimizerIntent: "Surface spill pressure before it turns into a measurable slowdown.",
			Severity:        Medium,
			EstimatedSpeedup: 1.2,
			Suggestions: []FixSuggestion{
				{
					Description: "Reduce the number of live values across the hot region, e.g. by splitting it into smaller functions.",
					IsSourceLevel: true,
				},
			},
		},
		{
			PassSubstr:   "backend",
			ShortReason:  "Resource limit notice in {FunctionName}",
			DetailedExplanation: "The backend reported a resource count approaching or exceeding a configured limit.",
			RootCause:    "See the attached Size/Limit arguments for the specific resource.",
			Severity:     Low,
			EstimatedSpeedup: 1.0,
		},
	}
}
