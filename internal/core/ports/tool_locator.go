package ports

// ToolLocator supplies the build tool's executable path.
//
//go:generate go run go.uber.org/mock/mockgen -source=tool_locator.go -destination=mocks/mock_tool_locator.go -package=mocks
type ToolLocator interface {
	// ToolPath returns the executable path, or domain.ErrToolNotFound when the
	// build system is not configured.
	ToolPath() (string, error)
}
