// Package command assembles build-tool argument vectors for running or
// debugging a single target.
package command

import (
	"maps"

	"go.trai.ch/blazerun/internal/core/domain"
)

// Builder turns a CommandSpec into an ArgumentVector.
// Its tables are read-only after construction, so a Builder is safe for
// concurrent use.
type Builder struct {
	kinds      map[domain.Kind]domain.KindClass
	injections map[injectionKey]injection
}

// Option configures a Builder.
type Option func(*Builder)

// WithKind registers kind with the given class, replacing any existing entry.
// Registering ClassNone removes debug handling for the kind.
func WithKind(kind domain.Kind, class domain.KindClass) Option {
	return func(b *Builder) {
		b.kinds[kind] = class
	}
}

// WithKinds registers every entry of kinds.
func WithKinds(kinds map[domain.Kind]domain.KindClass) Option {
	return func(b *Builder) {
		maps.Copy(b.kinds, kinds)
	}
}

// NewBuilder creates a Builder with the default kind table.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		kinds:      DefaultKinds(),
		injections: defaultInjections(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// With returns a copy of b with additional options applied. b is not modified.
func (b *Builder) With(opts ...Option) *Builder {
	c := &Builder{
		kinds:      maps.Clone(b.kinds),
		injections: b.injections,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClassOf returns the launch class of kind. Unregistered kinds are ClassNone.
func (b *Builder) ClassOf(kind domain.Kind) domain.KindClass {
	return b.kinds[kind]
}

// SupportsDebug reports whether debugging kind injects any flags.
func (b *Builder) SupportsDebug(kind domain.Kind) bool {
	_, ok := b.injections[injectionKey{b.ClassOf(kind), domain.ModeDebug}]
	return ok
}

// DefaultVerb returns the command verb used when the caller names none:
// "test" for test-like kinds and "run" for everything else.
func (b *Builder) DefaultVerb(kind domain.Kind) string {
	if b.ClassOf(kind) == domain.ClassTest {
		return "test"
	}
	return "run"
}

// Build assembles the argument vector for spec:
//
//	tool verb tool-tag base-flags [test debug flags] -- target [binary debug flag] extra-args
//
// It fails only when the tool path or the verb is empty.
func (b *Builder) Build(spec domain.CommandSpec) (domain.ArgumentVector, error) {
	if spec.ToolPath == "" {
		return domain.ArgumentVector{}, domain.ErrEmptyToolPath
	}
	if spec.Verb == "" {
		return domain.ArgumentVector{}, domain.ErrEmptyCommandVerb
	}

	inj := b.injections[injectionKey{b.ClassOf(spec.Kind), spec.Mode}]

	// tool, verb, tag, separator, target
	const fixed = 5
	tokens := make([]string, 0, fixed+len(spec.BaseFlags)+len(inj.tokens)+len(spec.ExtraArgs))

	tokens = append(tokens, spec.ToolPath, spec.Verb, domain.ToolTagFlag)
	tokens = append(tokens, spec.BaseFlags...)
	if inj.position == BeforeSeparator {
		tokens = append(tokens, inj.tokens...)
	}

	// The target label is always target-scoped, so the separator is always emitted.
	tokens = append(tokens, domain.Separator, spec.Target.String())
	if inj.position == AfterTarget {
		tokens = append(tokens, inj.tokens...)
	}
	tokens = append(tokens, spec.ExtraArgs...)

	return domain.NewArgumentVector(tokens), nil
}
