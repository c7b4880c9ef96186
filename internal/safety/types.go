package safety

import "regexp"

// classifies how a rule's pattern is matched against code text
type RuleKind string

const (
	// case-insensitive substring match anywhere in the code
	KindToken RuleKind = "token"

	// pattern name immediately followed by a call opening paren
	KindCall RuleKind = "call"

	// import of the named module, in either import form
	KindImport RuleKind = "import"
)

// Rule is a named denylist pattern. Rules are evaluated in order and
// the first match wins.
type Rule struct {
	Name    string   // stable identifier reported in verdicts
	Kind    RuleKind // how Pattern is matched
	Pattern string   // token, callable name, or module name
	Message string   // human-readable reason shown to the caller
}

// Verdict is the result of validating one code string. Verdicts are
// built fresh per call and never mutated after construction.
type Verdict struct {
	IsSafe      bool   `json:"is_safe"`
	Reason      string `json:"reason,omitempty"`       // empty when safe
	MatchedRule string `json:"matched_rule,omitempty"` // empty when safe
}

// compiled form of a rule, built once at validator construction
type compiledRule struct {
	rule    Rule
	token   string         // lowered substring for KindToken
	matcher *regexp.Regexp // for KindCall and KindImport
}
