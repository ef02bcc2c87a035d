package domain

import "strconv"

// Separator divides tool-scoped flags from target-scoped arguments.
const Separator = "--"

// ToolTagFlag identifies blazerun to the build tool in every invocation.
const ToolTagFlag = "--tool_tag=blazerun"

// DebugPort is the port a debugged JVM listens on.
const DebugPort = 5005

// Debug flag building blocks.
const (
	// JavaDebugFlag enables remote debugging for test runners.
	JavaDebugFlag = "--java_debug"
	// TestArgFlagPrefix forwards its value to the test runner.
	TestArgFlagPrefix = "--test_arg="
	// WrapperScriptFlagPrefix forwards its value to a binary's launcher script.
	WrapperScriptFlagPrefix = "--wrapper_script_flag="
)

// DebugPortSpec returns the debug-port specification understood by both the
// test runner and the binary wrapper script, e.g. "--debug=5005".
func DebugPortSpec() string {
	return "--debug=" + strconv.Itoa(DebugPort)
}
