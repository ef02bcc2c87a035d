package logger

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/blazerun/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// FormatVar selects the log format. "json" switches to slog's JSON handler.
const FormatVar = "BLAZERUN_LOG_FORMAT"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			lg := &Logger{}
			lg.SetJSON(strings.EqualFold(os.Getenv(FormatVar), "json"))
			return lg, nil
		},
	})
}
