package domain

import "strings"

// Kind is the declared rule kind of a target (e.g. "java_test").
// The set is open: any rule name is a valid Kind.
type Kind string

// Well-known kinds.
const (
	// KindUnknown is returned by resolvers that could not classify a target.
	KindUnknown Kind = ""

	KindJavaTest       Kind = "java_test"
	KindJavaBinary     Kind = "java_binary"
	KindScalaTest      Kind = "scala_test"
	KindScalaJunitTest Kind = "scala_junit_test"
	KindScalaBinary    Kind = "scala_binary"
	KindKotlinTest     Kind = "kt_jvm_test"
	KindKotlinBinary   Kind = "kt_jvm_binary"
)

// String returns the rule name, or "unknown" for KindUnknown.
func (k Kind) String() string {
	if k == KindUnknown {
		return "unknown"
	}
	return string(k)
}

// KindClass describes how targets of a kind are launched, which decides
// where debug flags are injected.
type KindClass int

const (
	// ClassNone means the kind gets no special debug handling.
	ClassNone KindClass = iota
	// ClassTest kinds are run by a test runner that takes debug settings as
	// tool-level flags.
	ClassTest
	// ClassBinary kinds are launched through a wrapper script that takes
	// debug settings as its own arguments.
	ClassBinary
)

// String returns the lowercase name of the class.
func (c KindClass) String() string {
	switch c {
	case ClassTest:
		return "test"
	case ClassBinary:
		return "binary"
	default:
		return "none"
	}
}

// ParseKindClass converts "test", "binary" or "none" (any case) to a KindClass.
func ParseKindClass(s string) (KindClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "test":
		return ClassTest, nil
	case "binary":
		return ClassBinary, nil
	case "none", "":
		return ClassNone, nil
	default:
		return ClassNone, ErrInvalidKindClass
	}
}
