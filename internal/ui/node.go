package ui

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID identifies the printer Graft node.
const NodeID graft.ID = "ui.printer"

func init() {
	graft.Register(graft.Node[*Printer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Printer, error) {
			return NewPrinter(os.Stdout), nil
		},
	})
}
