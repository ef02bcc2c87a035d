package domain

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// CommandSpec describes a single build-tool invocation to construct.
// Flags are kept in the order given and are never deduplicated.
type CommandSpec struct {
	ToolPath  string
	Verb      string
	BaseFlags []string
	Target    Label
	Kind      Kind
	Mode      ExecutionMode
	ExtraArgs []string
}

// ArgumentVector is the ordered token list of a process invocation.
// The first token is the executable path.
type ArgumentVector struct {
	tokens []string
}

// NewArgumentVector wraps tokens in an ArgumentVector. The slice is copied.
func NewArgumentVector(tokens []string) ArgumentVector {
	return ArgumentVector{tokens: slices.Clone(tokens)}
}

// Tokens returns a copy of all tokens.
func (v ArgumentVector) Tokens() []string {
	return slices.Clone(v.tokens)
}

// Len returns the number of tokens.
func (v ArgumentVector) Len() int {
	return len(v.tokens)
}

// Executable returns the first token, or "" for an empty vector.
func (v ArgumentVector) Executable() string {
	if len(v.tokens) == 0 {
		return ""
	}
	return v.tokens[0]
}

// Args returns a copy of every token after the executable.
func (v ArgumentVector) Args() []string {
	if len(v.tokens) < 2 {
		return nil
	}
	return slices.Clone(v.tokens[1:])
}

// String joins the tokens with single spaces. It is meant for display only
// and does not quote.
func (v ArgumentVector) String() string {
	return strings.Join(v.tokens, " ")
}

// Fingerprint returns a stable digest of the tokens. Two vectors have the
// same fingerprint exactly when they hold the same tokens in the same order.
func (v ArgumentVector) Fingerprint() string {
	d := xxhash.New()
	for _, t := range v.tokens {
		// Length prefix keeps ["a b"] and ["a", "b"] apart.
		_, _ = d.WriteString(strconv.Itoa(len(t)))
		_, _ = d.WriteString(":")
		_, _ = d.WriteString(t)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
