package command

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the command builder Graft node.
const NodeID graft.ID = "engine.command_builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (*Builder, error) {
			return NewBuilder(), nil
		},
	})
}
