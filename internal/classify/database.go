package classify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"aion/internal/ir"
	"aion/internal/support"
)

// Classifier owns the rule database and turns remarks into
// DiagnosticResults.
type Classifier struct {
	patterns []OptimizationPattern
}

// NewClassifier builds a Classifier with every built-in pass-specific
// pattern registered, in the fixed order the matcher relies on for
// tie-breaking.
func NewClassifier() *Classifier {
	c := &Classifier{}
	c.patterns = append(c.patterns, inlinePatterns()...)
	c.patterns = append(c.patterns, loopVectorizePatterns()...)
	c.patterns = append(c.patterns, slpVectorizePatterns()...)
	c.patterns = append(c.patterns, sroaPatterns()...)
	c.patterns = append(c.patterns, unrollPatterns()...)
	c.patterns = append(c.patterns, tailCallPatterns()...)
	c.patterns = append(c.patterns, gvnPatterns()...)
	c.patterns = append(c.patterns, memcpyPatterns()...)
	c.patterns = append(c.patterns, loopInterchangePatterns()...)
	c.patterns = append(c.patterns, catchAllPatterns()...)
	return c
}

// tomlPatternFile is the on-disk shape LoadPatternsTOML accepts: a flat
// list of patterns under a top-level [[pattern]] array-of-tables.
type tomlPatternFile struct {
	Pattern []tomlPattern `toml:"pattern"`
}

type tomlPattern struct {
	PassSubstr          string             `toml:"pass_substr"`
	RemarkSubstr        string             `toml:"remark_substr"`
	MessageSubstr       string             `toml:"message_substr"`
	ShortReason         string             `toml:"short_reason"`
	DetailedExplanation string             `toml:"detailed_explanation"`
	RootCause           string             `toml:"root_cause"`
	OptimizerIntent     string             `toml:"optimizer_intent"`
	Severity            string             `toml:"severity"`
	EstimatedSpeedup    float64            `toml:"estimated_speedup"`
	Suggestions         []tomlFixSuggestion `toml:"suggestions"`
}

type tomlFixSuggestion struct {
	Description   string `toml:"description"`
	CodeExample   string `toml:"code_example"`
	IsSourceLevel bool   `toml:"is_source_level"`
	IsIrLevel     bool   `toml:"is_ir_level"`
}

// LoadPatternsTOML appends supplementary patterns from a TOML document to
// the database, so operators can extend the rule set without a rebuild.
// Patterns loaded this way are appended after the built-in registration
// routines, so a built-in rule still wins ties.
func (c *Classifier) LoadPatternsTOML(path string) error {
	var doc tomlPatternFile
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return support.NewIoError("failed to load pattern TOML", err)
	}
	for _, p := range doc.Pattern {
		suggestions := make([]FixSuggestion, len(p.Suggestions))
		for i, s := range p.Suggestions {
			suggestions[i] = FixSuggestion{
				Description:   s.Description,
				CodeExample:   s.CodeExample,
				IsSourceLevel: s.IsSourceLevel,
				IsIrLevel:     s.IsIrLevel,
			}
		}
		c.patterns = append(c.patterns, OptimizationPattern{
			PassSubstr:          p.PassSubstr,
			RemarkSubstr:        p.RemarkSubstr,
			MessageSubstr:       p.MessageSubstr,
			ShortReason:         p.ShortReason,
			DetailedExplanation: p.DetailedExplanation,
			RootCause:           p.RootCause,
			OptimizerIntent:     p.OptimizerIntent,
			Suggestions:         suggestions,
			Severity:            parseSeverity(p.Severity),
			EstimatedSpeedup:    p.EstimatedSpeedup,
		})
	}
	return nil
}

func parseSeverity(s string) SeverityLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return Critical
	case "high":
		return High
	case "low":
		return Low
	case "info":
		return Info
	default:
		return Medium
	}
}

// Classify converts every non-Applied remark into a DiagnosticResult,
// attaches the matching function's diff, and returns the list stably
// sorted by ascending severity.
func (c *Classifier) Classify(remarks []support.Remark, diff *ir.ModuleDiff) []DiagnosticResult {
	var diffByName map[string]*ir.FunctionDiff
	if diff != nil {
		diffByName = diff.FuncDiffByName()
	}

	results := make([]DiagnosticResult, 0, len(remarks))
	for _, r := range remarks {
		if r.Kind == support.Applied {
			continue
		}
		pattern, matched := c.bestMatch(r)
		if !matched {
			pattern = fallbackPattern(r)
		}
		result := buildResult(pattern, r)
		if fd, ok := diffByName[r.FunctionName]; ok {
			result.IrDiff = fd
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Severity < results[j].Severity
	})
	return results
}

// bestMatch scans the database in registration order and returns the
// pattern with the highest score; ties keep the first registered pattern
//.
func (c *Classifier) bestMatch(r support.Remark) (OptimizationPattern, bool) {
	bestScore := -1
	var best OptimizationPattern
	found := false
	for _, p := range c.patterns {
		score, ok := scorePattern(p, r)
		if !ok {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = p
			found = true
		}
	}
	return best, found
}

// scorePattern reports whether every non-empty selector of p matches r,
// and if so, the sum of the per-field weights for the selectors present
// (pass=2, remark=3, message=4).
func scorePattern(p OptimizationPattern, r support.Remark) (int, bool) {
	score := 0
	if p.PassSubstr != "" {
		if !containsFold(r.PassName, p.PassSubstr) {
			return 0, false
		}
		score += 2
	}
	if p.RemarkSubstr != "" {
		if !containsFold(r.RemarkName, p.RemarkSubstr) {
			return 0, false
		}
		score += 3
	}
	if p.MessageSubstr != "" {
		if !containsFold(r.Message, p.MessageSubstr) {
			return 0, false
		}
		score += 4
	}
	return score, true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func fallbackPattern(r support.Remark) OptimizationPattern {
	return OptimizationPattern{
		ShortReason: fmt.Sprintf("Optimization missed: %s", r.RemarkName),
		DetailedExplanation: fmt.Sprintf(
			"Pass %q reported a missed optimization (%s) in function {FunctionName}: %s",
			r.PassName, r.RemarkName, r.Message),
		RootCause:        "No rule in the classifier's database recognizes this pass/remark/message combination.",
		OptimizerIntent:  "Unknown; this pattern was not anticipated by the classifier's rule database.",
		Severity:         Medium,
		EstimatedSpeedup: 0,
	}
}

func buildResult(p OptimizationPattern, r support.Remark) DiagnosticResult {
	suggestions := make([]FixSuggestion, len(p.Suggestions))
	copy(suggestions, p.Suggestions)
	return DiagnosticResult{
		PassName:            r.PassName,
		FunctionName:        r.FunctionName,
		Location:            r.Loc,
		ShortReason:         interpolate(p.ShortReason, r),
		DetailedExplanation: interpolate(p.DetailedExplanation, r),
		RootCause:           interpolate(p.RootCause, r),
		OptimizerIntent:     interpolate(p.OptimizerIntent, r),
		Suggestions:         suggestions,
		Severity:            p.Severity,
		EstimatedSpeedup:    p.EstimatedSpeedup,
		IsMachine:           r.IsMachine,
	}
}

// interpolate replaces every "{ArgKey}" placeholder in template with the
// matching argument value from r.Args (first match wins on duplicate
// keys). The reserved "{FunctionName}" placeholder comes from r itself.
// A placeholder with no match is left literal.
func interpolate(template string, r support.Remark) string {
	if template == "" || !strings.Contains(template, "{") {
		return template
	}
	var out strings.Builder
	i := 0
	for i < len(template) {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			out.WriteString(template[i:])
			break
		}
		open += i
		out.WriteString(template[i:open])
		closeIdx := strings.IndexByte(template[open:], '}')
		if closeIdx < 0 {
			out.WriteString(template[open:])
			break
		}
		closeIdx += open
		key := template[open+1 : closeIdx]
		if key == "FunctionName" {
			out.WriteString(r.FunctionName)
		} else if v, ok := r.Arg(key); ok {
			out.WriteString(v)
		} else {
			out.WriteString(template[open : closeIdx+1])
		}
		i = closeIdx + 1
	}
	return out.String()
}
