// Command perft counts the legal action tree of a position, for checking
// the rules engine against published totals.
//
//	perft -depth 4
//	perft -depth 3 -divide -turn black r...k..r ........ ... R...K..R
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/analysis"
	"github.com/benbeisheim/chessrules-backend/internal/engine"
)

type Config struct {
	Depth  int
	Divide bool
	Turn   string
}

var config Config

func main() {
	log.SetFlags(0)
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.IntVar(&config.Depth, "depth", 3, "search depth in plies")
	flag.BoolVar(&config.Divide, "divide", false, "print the count below each root action")
	flag.StringVar(&config.Turn, "turn", "white", "side to move for a custom position")
	flag.Parse()

	g, err := startingGame(flag.Args())
	if err != nil {
		return err
	}
	log.Printf("%v\n%s to move, castling %s", g.Board(), g.Turn(), g.Castling())

	ctx := context.Background()
	start := time.Now()
	if config.Divide {
		counts, err := analysis.Divide(ctx, g, config.Depth)
		if err != nil {
			return err
		}
		var total uint64
		for _, c := range counts {
			log.Printf("%v: %d", c.Action, c.Nodes)
			total += c.Nodes
		}
		log.Printf("actions: %d nodes: %d time: %v", len(counts), total, time.Since(start))
		return nil
	}

	nodes, err := analysis.Perft(ctx, g, config.Depth)
	if err != nil {
		return err
	}
	log.Printf("depth: %d nodes: %d time: %v", config.Depth, nodes, time.Since(start))
	return nil
}

// startingGame reads a diagram, rank 8 first, from rows. No rows means
// the standard setup.
func startingGame(rows []string) (*engine.Game, error) {
	if len(rows) == 0 {
		return engine.NewGame(), nil
	}
	board, err := engine.ParseDiagram(rows...)
	if err != nil {
		return nil, err
	}
	turn := engine.White
	if config.Turn == engine.Black.String() {
		turn = engine.Black
	}
	return engine.NewGameFromBoard(board, turn)
}
