package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/niceyeti/groupmove/grid"
	"github.com/niceyeti/groupmove/model"
	"github.com/niceyeti/groupmove/optimizer"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWallLinesShape(t *testing.T) {
	Convey("Given a fresh Store with only boundary walls", t, func() {
		s := grid.NewStore()

		Convey("WallLines produces N rows of N-1 chars and N-1 rows of N chars", func() {
			vLines, hLines := WallLines(s)
			So(len(vLines), ShouldEqual, model.N)
			So(len(hLines), ShouldEqual, model.N-1)
			for _, l := range vLines {
				So(len(l), ShouldEqual, model.N-1)
			}
			for _, l := range hLines {
				So(len(l), ShouldEqual, model.N)
			}
		})

		Convey("An interior wall renders as '1', everything else as '0'", func() {
			s.ToggleWallV(3, 7)
			vLines, _ := WallLines(s)
			So(vLines[3][6], ShouldEqual, byte('1'))
			So(vLines[3][5], ShouldEqual, byte('0'))
		})
	})
}

func TestGroups(t *testing.T) {
	Convey("Given K agents", t, func() {
		Convey("Groups returns a K-length all-zero vector", func() {
			g := Groups(7)
			So(len(g), ShouldEqual, 7)
			for _, v := range g {
				So(v, ShouldEqual, 0)
			}
		})
	})
}

func TestGroupScriptLength(t *testing.T) {
	Convey("Given an Optimizer with nonzero script parameters", t, func() {
		agents := []model.Agent{
			{Src: model.Pos{Y: 20, X: 20}, Dst: model.Pos{Y: 0, X: 0}},
		}
		o := optimizer.New(agents, grid.NewStore())

		Convey("GroupScript emits exactly MaxU+MaxD+MaxL+MaxR operations, all group kind", func() {
			ops := GroupScript(o)
			So(len(ops), ShouldEqual, o.MaxU+o.MaxD+o.MaxL+o.MaxR)
			for _, op := range ops {
				So(op.Kind, ShouldEqual, GroupKind)
				So(op.ID, ShouldEqual, 0)
			}
		})
	})
}

func TestWriteSolutionFormat(t *testing.T) {
	Convey("Given a trivial solution", t, func() {
		s := grid.NewStore()
		script := []Operation{{Kind: GroupKind, ID: 0, Dir: model.Up}}
		cleanup := []Operation{{Kind: IndividualKind, ID: 2, Dir: model.Right}}

		var buf bytes.Buffer
		err := WriteSolution(&buf, s, 3, script, cleanup)

		Convey("It writes without error and contains the expected line shapes", func() {
			So(err, ShouldBeNil)
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			// N vertical + (N-1) horizontal + 1 groups line + 1 script + 1 cleanup
			So(len(lines), ShouldEqual, model.N+(model.N-1)+1+1+1)
			So(lines[model.N+(model.N-1)], ShouldEqual, "0 0 0")
			So(lines[model.N+(model.N-1)+1], ShouldEqual, "g 0 U")
			So(lines[model.N+(model.N-1)+2], ShouldEqual, "i 2 R")
		})
	})
}
