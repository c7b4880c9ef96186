// Package safety implements the lexical gate that decides whether
// generated code may be forwarded to the Revit execution host.
//
// The gate is a best-effort denylist, not a sandbox: matching is
// token-level and a sufficiently obfuscated payload can evade it.
// Callers must treat a safe verdict as "nothing obviously dangerous",
// never as proof of safety.
package safety

import (
	"fmt"
	"regexp"
	"strings"
)

// code longer than this is rejected regardless of content, to bound
// execution-host load
const defaultMaxCodeLen = 8000

type Validator struct {
	rules      []compiledRule
	maxCodeLen int
}

// creates a validator with the default rule set
func New() *Validator {
	return NewWithRules(DefaultRules(), defaultMaxCodeLen)
}

// creates a validator with an explicit ordered rule set and length cap
func NewWithRules(rules []Rule, maxCodeLen int) *Validator {
	if maxCodeLen <= 0 {
		maxCodeLen = defaultMaxCodeLen
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		compiled = append(compiled, compileRule(rule))
	}

	return &Validator{
		rules:      compiled,
		maxCodeLen: maxCodeLen,
	}
}

// Validate renders an allow/deny verdict for the given code text. It
// is pure and deterministic for a fixed rule set, performs no I/O,
// and produces a verdict for any input, including non-code noise.
// An empty string is safe; deciding that empty code means "nothing to
// execute" is the orchestrator's job, not this gate's.
func (v *Validator) Validate(code string) Verdict {
	if code == "" {
		return Verdict{IsSafe: true}
	}

	if len(code) > v.maxCodeLen {
		return Verdict{
			IsSafe:      false,
			Reason:      fmt.Sprintf("code exceeds maximum length of %d characters", v.maxCodeLen),
			MatchedRule: "max-length",
		}
	}

	lowered := strings.ToLower(code)

	for _, cr := range v.rules {
		if cr.matches(lowered) {
			return Verdict{
				IsSafe:      false,
				Reason:      cr.rule.Message,
				MatchedRule: cr.rule.Name,
			}
		}
	}

	return Verdict{IsSafe: true}
}

func compileRule(rule Rule) compiledRule {
	cr := compiledRule{rule: rule}

	switch rule.Kind {
	case KindCall:
		// call-shaped: the name as its own token, directly followed by
		// an opening paren, so "evaluate(" does not trip "eval"
		cr.matcher = regexp.MustCompile(`(^|[^\w.])` + regexp.QuoteMeta(strings.ToLower(rule.Pattern)) + `\s*\(`)
	case KindImport:
		// either import form: "import x", "import a, x", "from x import ..."
		name := regexp.QuoteMeta(strings.ToLower(rule.Pattern))
		cr.matcher = regexp.MustCompile(`(^|[\n;])\s*(import\s+(\w+\s*,\s*)*` + name + `\b|from\s+` + name + `\b)`)
	default:
		cr.token = strings.ToLower(rule.Pattern)
	}

	return cr
}

// matches reports whether the rule fires against pre-lowered code
func (cr compiledRule) matches(lowered string) bool {
	if cr.matcher != nil {
		return cr.matcher.MatchString(lowered)
	}

	return strings.Contains(lowered, cr.token)
}
