package prep

// Config controls how the Generator talks to the model.
type Config struct {
	// DefaultCount is the number of questions asked for when a caller
	// passes a non-positive count.
	DefaultCount int

	// BatchCount is the per-topic count used by GenerateQuestionBatch.
	BatchCount int

	// MaxTokens caps each response. Zero leaves it to the provider.
	MaxTokens int

	// Temperature of zero keeps the provider default.
	Temperature float64

	// StrictValidation checks every decoded record (required fields,
	// difficulty values, roadmap days) and rejects the whole response when
	// one fails. When false, decoded records are returned as-is.
	StrictValidation bool
}

// DefaultConfig returns the standard settings: five questions per call and
// strict record checks.
func DefaultConfig() Config {
	return Config{
		DefaultCount:     5,
		BatchCount:       5,
		StrictValidation: true,
	}
}
