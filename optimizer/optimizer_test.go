package optimizer

import (
	"testing"

	"github.com/niceyeti/groupmove/grid"
	"github.com/niceyeti/groupmove/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScriptParamsTrivialAgent(t *testing.T) {
	Convey("Given a single agent with src == dst (spec scenario 1)", t, func() {
		agents := []model.Agent{{Src: model.Pos{Y: 0, X: 0}, Dst: model.Pos{Y: 0, X: 0}}}

		Convey("All four script parameters clamp to zero", func() {
			maxU, maxD, maxL, maxR := scriptParams(agents)
			So(maxU, ShouldEqual, 0)
			So(maxD, ShouldEqual, 0)
			So(maxL, ShouldEqual, 0)
			So(maxR, ShouldEqual, 0)
		})
	})
}

func TestScriptParamsDelta(t *testing.T) {
	Convey("Given K below the 33-agent threshold", t, func() {
		agents := make([]model.Agent, 10)
		for i := range agents {
			agents[i] = model.Agent{Src: model.Pos{Y: 0, X: 0}, Dst: model.Pos{Y: 5, X: 0}}
		}

		Convey("Delta is -2", func() {
			maxU, _, _, _ := scriptParams(agents)
			So(maxU, ShouldEqual, 3)
		})
	})

	Convey("Given K at or above the 33-agent threshold", t, func() {
		agents := make([]model.Agent, 40)
		for i := range agents {
			agents[i] = model.Agent{Src: model.Pos{Y: 0, X: 0}, Dst: model.Pos{Y: 5, X: 0}}
		}

		Convey("Delta is -1", func() {
			maxU, _, _, _ := scriptParams(agents)
			So(maxU, ShouldEqual, 4)
		})
	})
}

func TestNewAndReset(t *testing.T) {
	Convey("Given an Optimizer built from two agents", t, func() {
		agents := []model.Agent{
			{Src: model.Pos{Y: 0, X: 0}, Dst: model.Pos{Y: 0, X: 5}},
			{Src: model.Pos{Y: 0, X: 1}, Dst: model.Pos{Y: 0, X: 6}},
		}
		store := grid.NewStore()
		o := New(agents, store)

		Convey("Every agent starts at its source and Cell reflects it", func() {
			So(o.Pos[0], ShouldResemble, agents[0].Src)
			So(o.Pos[1], ShouldResemble, agents[1].Src)
			So(o.Cell[0][0], ShouldBeTrue)
			So(o.Cell[0][1], ShouldBeTrue)
		})

		Convey("FastReset restores positions without touching Cell", func() {
			o.Pos[0] = model.Pos{Y: 10, X: 10}
			o.Cell[0][0] = false
			o.FastReset()
			So(o.Pos[0], ShouldResemble, agents[0].Src)
			So(o.Cell[0][0], ShouldBeFalse)
		})

		Convey("Reset rebuilds Cell from scratch", func() {
			o.Pos[0] = model.Pos{Y: 10, X: 10}
			o.Cell[10][10] = true
			o.Reset()
			So(o.Cell[10][10], ShouldBeFalse)
			So(o.Cell[0][0], ShouldBeTrue)
		})
	})
}

func TestRunScriptTwoAgentsShiftRight(t *testing.T) {
	Convey("Given two agents that need to shift right together (spec scenario 2)", t, func() {
		agents := []model.Agent{
			{Src: model.Pos{Y: 0, X: 0}, Dst: model.Pos{Y: 0, X: 5}},
			{Src: model.Pos{Y: 0, X: 1}, Dst: model.Pos{Y: 0, X: 6}},
		}
		store := grid.NewStore()
		o := New(agents, store)

		Convey("The seven-phase script drives the residual to zero without collision", func() {
			o.FastReset()
			residual := o.RunScript()
			So(residual, ShouldEqual, 0)
		})
	})
}

func TestRunScriptSwapCannotResolve(t *testing.T) {
	Convey("Given two agents whose destinations are swapped (spec scenario 3)", t, func() {
		agents := []model.Agent{
			{Src: model.Pos{Y: 0, X: 0}, Dst: model.Pos{Y: 1, X: 0}},
			{Src: model.Pos{Y: 1, X: 0}, Dst: model.Pos{Y: 0, X: 0}},
		}
		store := grid.NewStore()
		o := New(agents, store)

		Convey("The group script alone cannot resolve the swap", func() {
			o.FastReset()
			residual := o.RunScript()
			So(residual, ShouldBeGreaterThan, 0)
		})
	})
}

func TestScriptStepCountsMatchesRunScript(t *testing.T) {
	Convey("Given an Optimizer with nonzero script parameters", t, func() {
		agents := []model.Agent{
			{Src: model.Pos{Y: 10, X: 10}, Dst: model.Pos{Y: 0, X: 0}},
		}
		store := grid.NewStore()
		o := New(agents, store)

		Convey("ScriptStepCounts sums to the same total steps RunScript takes", func() {
			total := 0
			for _, phase := range o.ScriptStepCounts() {
				total += phase.Steps
			}
			So(total, ShouldEqual, o.MaxU+o.MaxD+o.MaxL+o.MaxR)
		})
	})
}

func TestReplayMarkWallConsistency(t *testing.T) {
	Convey("Given an Optimizer after ReplayMarkWall", t, func() {
		agents := []model.Agent{
			{Src: model.Pos{Y: 5, X: 5}, Dst: model.Pos{Y: 0, X: 0}},
			{Src: model.Pos{Y: 6, X: 6}, Dst: model.Pos{Y: 20, X: 20}},
		}
		store := grid.NewStore()
		o := New(agents, store)
		o.ReplayMarkWall()

		Convey("Cell has exactly K occupied cells matching Pos", func() {
			count := 0
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					if o.Cell[y][x] {
						count++
					}
				}
			}
			So(count, ShouldEqual, len(agents))
			for _, p := range o.Pos {
				So(o.Cell[p.Y][p.X], ShouldBeTrue)
			}
		})
	})
}
