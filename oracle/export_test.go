package oracle

import (
	"context"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
)

// AssembleForTest builds an oracle over explicitly chosen landmark and
// center index sets, bypassing sampling. Tests use it to pin the sets
// the way a fixed seed cannot.
func AssembleForTest(g *core.Graph, landmarks, centers []int32) (*Oracle, error) {
	return assemble(context.Background(), g, landmarks, centers, 1)
}
