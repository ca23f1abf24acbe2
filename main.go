// Groupmove solves an offline group-move maze routing problem: given a
// 30x30 grid, a set of agents each with a source and destination cell,
// and an initial wall layout, it searches for a short group-move script
// plus wall additions that bring as many agents as close to their
// destinations as possible, then emits the final wall grid and the
// movement program.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/niceyeti/groupmove/anneal"
	"github.com/niceyeti/groupmove/cleanup"
	"github.com/niceyeti/groupmove/config"
	"github.com/niceyeti/groupmove/emit"
	"github.com/niceyeti/groupmove/grid"
	"github.com/niceyeti/groupmove/ioformat"
	"github.com/niceyeti/groupmove/optimizer"
	"github.com/niceyeti/groupmove/prune"
	"github.com/niceyeti/groupmove/report"
)

var (
	configPath *string
	seed       *uint
	timeScale  *float64
	reportPath *string
)

func init() {
	configPath = flag.String("config", "", "path to a YAML tuning file (seed, timeScale, bfsStepCap)")
	seed = flag.Uint("seed", 0, "override the annealer's RNG seed (0 means use config/default)")
	timeScale = flag.Float64("time-scale", 0, "override the annealer's wall-clock budget scale (0 means use config/default)")
	reportPath = flag.String("report", "", "optional path to write a static HTML run report")
	flag.Parse()
}

func runApp() (err error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = uint32(*seed)
	}
	if *timeScale != 0 {
		cfg.TimeScale = *timeScale
	}

	parsed, err := ioformat.Parse(os.Stdin)
	if err != nil {
		return err
	}

	var before *grid.Store
	if *reportPath != "" {
		before = snapshot(parsed.Grid)
	}

	o := optimizer.New(parsed.Agents, parsed.Grid)

	anneal.Run(o, anneal.Params{Seed: cfg.Seed, TimeScale: cfg.TimeScale})
	prune.Run(o)

	script := emit.GroupScript(o)
	moves := cleanup.Run(o, cfg.BFSStepCap)

	ops := make([]emit.Operation, 0, len(moves))
	for _, mv := range moves {
		ops = append(ops, emit.Operation{Kind: emit.IndividualKind, ID: mv.AgentID, Dir: mv.Dir})
	}

	if err := emit.WriteSolution(os.Stdout, o.Grid, len(o.Agents), script, ops); err != nil {
		return err
	}

	if *reportPath != "" {
		f, err := os.Create(*reportPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := report.WriteReport(f, before, o.Grid, o.Best); err != nil {
			return err
		}
	}

	return nil
}

// snapshot copies a wall Store's contents, needed only for the before/
// after report since the optimizer mutates its Store in place.
func snapshot(s *grid.Store) *grid.Store {
	cp := *s
	return &cp
}

func main() {
	if err := runApp(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
