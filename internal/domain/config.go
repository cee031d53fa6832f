package domain

// Config holds the runtime settings consumed by the adapters. The Groq
// API key is the single credential that toggles AI enhancement: present
// means attempt it, absent means skip immediately.
type Config struct {
	GroqAPIKey   string
	GroqModel    string
	ListenAddr   string
	TempDir      string
	PylintRCFile string
	ESLintConfig string
	Weights      CategoryWeights
}
