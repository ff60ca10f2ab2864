// Package analysis walks the game tree of the rules engine.
package analysis

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
)

// Perft counts the leaf nodes of the legal game tree depth plies below
// g. Root actions are searched concurrently.
func Perft(ctx context.Context, g *engine.Game, depth int) (uint64, error) {
	counts, err := Divide(ctx, g, depth)
	if err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	var total uint64
	for _, c := range counts {
		total += c.Nodes
	}
	return total, nil
}

// ActionCount is the subtree size below one root action.
type ActionCount struct {
	Action engine.Action
	Nodes  uint64
}

// Divide returns the perft count below each root action, sorted by the
// action's coordinate notation.
func Divide(ctx context.Context, g *engine.Game, depth int) ([]ActionCount, error) {
	if depth <= 0 {
		return nil, nil
	}
	actions := g.LegalActions()
	counts := make([]ActionCount, len(actions))

	eg, ctx := errgroup.WithContext(ctx)
	for i, a := range actions {
		eg.Go(func() error {
			nodes, err := count(ctx, g.Apply(a), depth-1)
			if err != nil {
				return err
			}
			counts[i] = ActionCount{Action: a, Nodes: nodes}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Action.String() < counts[j].Action.String()
	})
	return counts, nil
}

func count(ctx context.Context, g *engine.Game, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	actions := g.LegalActions()
	if depth == 1 {
		return uint64(len(actions)), nil
	}
	var total uint64
	for _, a := range actions {
		n, err := count(ctx, g.Apply(a), depth-1)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
