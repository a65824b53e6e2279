package config

// RawWhitespace is the whitespace document exactly as spec.md §6 describes
// it: a default token, the class that marks a token as whitespace, and
// whether runs of whitespace collapse.
type RawWhitespace struct {
	Default     string `yaml:"default"`
	TokenClass  string `yaml:"token_class"`
	Consolidate bool   `yaml:"consolidate"`
}

// RawMeter is one entry of meters_list. FeetPattern corresponds to the
// original fp7pattern field name; it is kept here under its YAML spelling
// since that is what a hand-edited meters_list document uses.
type RawMeter struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Pattern     string   `yaml:"regex_pattern"`
	FeetPattern string   `yaml:"fp7pattern"`
	Tags        []string `yaml:"tags"`
}

// RawConstraints is the constraints document: prev-type -> next-type ->
// prev-production -> list of forbidden next productions. Types are spelled
// as one-character strings ("=", "-", "_") in YAML and converted to runes
// during Build.
type RawConstraints map[string]map[string]map[string][]string

// Document is the top-level raw document: the union of the six document
// kinds of spec.md §6, as a user would lay them out in a single YAML file
// or across several files merged before decoding.
//
// Rules and OnMatchRules are YAML sequences of single-entry maps rather than
// a single mapping, so that order (which decides the cost-sort tie-break
// among same-cost rules, and the scan order of on-match rules) survives
// round-tripping through YAML, since map keys carry no ordering guarantee.
type Document struct {
	Tokens       map[string][]string `yaml:"tokens"`
	Rules        []map[string]string `yaml:"rules"`
	OnMatchRules []map[string]string `yaml:"onmatch_rules"`
	Whitespace   RawWhitespace        `yaml:"whitespace"`
}

// ScannerDocument is the full document set a Scanner is built from: one
// Document per parser role (spec.md §4.2's "transcription", "long-unit" and
// "short-unit" parsers are each a GraphParser built from their own
// tokens/rules/onmatch_rules/whitespace) plus the cross-parser constraints
// and meter list that only make sense once all three are known.
type ScannerDocument struct {
	Transcription Document       `yaml:"transcription"`
	Long          Document       `yaml:"long"`
	Short         Document       `yaml:"short"`
	Constraints   RawConstraints `yaml:"constraints"`
	MetersList    []RawMeter     `yaml:"meters_list"`
}
