package classify

func loopInterchangePatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassSubstr:    "loop-interchange",
			MessageSubstr: "dependence",
			ShortReason:   "Loop interchange blocked: carried dependence forbids reordering",
			DetailedExplanation: "Swapping the nest order in {FunctionName} would reverse a loop-carried " +
				"dependence between an outer and inner iteration, changing the program's result.",
			RootCause:       "The dependence direction vector disallows the proposed permutation.",
			OptimizerIntent: "Never reorder loops in a way that changes which iteration's value is read.",
			Severity:        Medium,
			EstimatedSpeedup: 1.5,
		},
		{
			PassSubstr:    "loop-interchange",
			MessageSubstr: "not profitable",
			ShortReason:   "Loop interchange skipped: cache-locality estimate did not favor the swap",
			DetailedExplanation: "Interchanging the loop nest in {FunctionName} was legal but the cost " +
				"model did not expect it to improve cache behavior enough to justify the transform.",
			RootCause:       "Stride analysis judged the current order already favorable or the arrays too small to matter.",
			OptimizerIntent: "Only interchange loops when it is expected to reduce cache misses.",
			Severity:        Low,
			EstimatedSpeedup: 1.2,
		},
		{
			PassSubstr:  "loop-interchange",
			ShortReason: "Loop interchange skipped in {FunctionName}",
			DetailedExplanation: "A candidate loop nest was left in its original order.",
			RootCause:   "See the attached message for the pass's stated reason.",
			Severity:    Medium,
			EstimatedSpeedup: 1.3,
		},
	}
}
