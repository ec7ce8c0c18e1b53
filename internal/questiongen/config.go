package questiongen

// DefaultTrades is the trade enumeration used when none is configured.
var DefaultTrades = []string{"Electrician", "Carpenter", "Plumber", "Mason", "Painter"}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for each generation call.
	MaxTokens int

	// Attempts is the total number of calls allowed per question,
	// including the first. Values below 1 are treated as 1.
	Attempts int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Trades is the enumeration offered to the model in the skill
	// determination phase.
	Trades []string

	// DefaultTrade is used for numeracy and literacy prompts when no skill
	// was determined.
	DefaultTrade string

	// Repair rewrites the prompt after a response fails the contract.
	// Nil means DefaultRepair.
	Repair RepairPolicy
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    300,
		Attempts:     2,
		Trades:       DefaultTrades,
		DefaultTrade: DefaultTrades[0],
		Repair:       DefaultRepair,
	}
}

func (c Config) attempts() int {
	if c.Attempts < 1 {
		return 1
	}
	return c.Attempts
}

func (c Config) repair() RepairPolicy {
	if c.Repair == nil {
		return DefaultRepair
	}
	return c.Repair
}

// tradeFor returns trade, or the configured fallback when trade is empty.
func (c Config) tradeFor(trade string) string {
	if trade != "" {
		return trade
	}
	if c.DefaultTrade != "" {
		return c.DefaultTrade
	}
	if len(c.Trades) > 0 {
		return c.Trades[0]
	}
	return DefaultTrades[0]
}
