package idcase

// Settings are the user-facing toggles a host application stores and turns
// into a Config before converting. The zero value disables all three.
type Settings struct {
	// UpperContinuous splits inside uppercase runs ("HTTPServer" -> HTTP, Server).
	UpperContinuous bool `yaml:"upper_continuous"`
	// SplitNumber splits where letters and digits meet.
	SplitNumber bool `yaml:"split_number"`
	// CamelUpper makes the camel style start with an upper case letter.
	CamelUpper bool `yaml:"camel_upper"`
}

// Config translates the settings into a tokenizer configuration.
func (s Settings) Config() *Config {
	return s.Builder().Build()
}

// Builder returns a builder primed from the settings, for callers that add
// delimiters or protected rules on top. Case splitting is always on.
func (s Settings) Builder() *Builder {
	rules := Rules(RuleCase)
	if s.SplitNumber {
		rules = DefaultRules
	}
	return NewBuilder().
		RuleSet(rules).
		SplitUpperContinuous(s.UpperContinuous)
}
