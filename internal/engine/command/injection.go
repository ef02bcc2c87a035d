package command

import "go.trai.ch/blazerun/internal/core/domain"

// Position is where injected tokens are placed in the argument vector.
type Position int

const (
	// BeforeSeparator places tokens after the base flags and before "--".
	BeforeSeparator Position = iota
	// AfterTarget places tokens right after the target label.
	AfterTarget
)

// injection is the set of tokens added for one (class, mode) pair.
type injection struct {
	tokens   []string
	position Position
}

type injectionKey struct {
	class domain.KindClass
	mode  domain.ExecutionMode
}

// defaultInjections is the full (class × mode) dispatch table. Pairs that are
// absent inject nothing; ModeRun never appears here.
func defaultInjections() map[injectionKey]injection {
	port := domain.DebugPortSpec()
	return map[injectionKey]injection{
		{domain.ClassTest, domain.ModeDebug}: {
			tokens: []string{
				domain.JavaDebugFlag,
				domain.TestArgFlagPrefix + port,
			},
			position: BeforeSeparator,
		},
		{domain.ClassBinary, domain.ModeDebug}: {
			tokens: []string{
				domain.WrapperScriptFlagPrefix + port,
			},
			position: AfterTarget,
		},
	}
}

// DefaultKinds returns the built-in kind to class table.
func DefaultKinds() map[domain.Kind]domain.KindClass {
	return map[domain.Kind]domain.KindClass{
		domain.KindJavaTest:       domain.ClassTest,
		domain.KindScalaTest:      domain.ClassTest,
		domain.KindScalaJunitTest: domain.ClassTest,
		domain.KindKotlinTest:     domain.ClassTest,
		domain.KindJavaBinary:     domain.ClassBinary,
		domain.KindScalaBinary:    domain.ClassBinary,
		domain.KindKotlinBinary:   domain.ClassBinary,
	}
}
