package core

import "log/slog"

// Defaults for the IPPcode24 language.
const (
	DefaultHeader   = ".IPPcode24"
	DefaultLanguage = "IPPcode24"
)

// ParserBuilder can create parsers.
type ParserBuilder struct {
	header      string
	language    string
	logger      *slog.Logger
	suggestions bool
}

// NewParserBuilder returns a builder preset for IPPcode24.
func NewParserBuilder() ParserBuilder {
	return ParserBuilder{
		header:      DefaultHeader,
		language:    DefaultLanguage,
		suggestions: true,
	}
}

// WithHeader sets the identifier the first logical line must hold.
func (b ParserBuilder) WithHeader(header string) ParserBuilder {
	b.header = header
	return b
}

// WithLanguage sets the language name recorded on the program.
func (b ParserBuilder) WithLanguage(language string) ParserBuilder {
	b.language = language
	return b
}

// WithLogger sets the logger that receives trace records.
func (b ParserBuilder) WithLogger(logger *slog.Logger) ParserBuilder {
	b.logger = logger
	return b
}

// WithSuggestions turns the "did you mean" hint on unknown opcodes on or off.
func (b ParserBuilder) WithSuggestions(enabled bool) ParserBuilder {
	b.suggestions = enabled
	return b
}

// Build creates a parser.
func (b ParserBuilder) Build() *Parser {
	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Parser{
		header:      b.header,
		language:    b.language,
		logger:      logger,
		suggestions: b.suggestions,
	}
}
