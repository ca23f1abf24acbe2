package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/niceyeti/groupmove/grid"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConvertShape(t *testing.T) {
	Convey("Given a fresh Store", t, func() {
		s := grid.NewStore()

		Convey("Convert returns an NxN grid of cell view-models", func() {
			cells := Convert(s)
			So(len(cells), ShouldEqual, 30)
			for _, row := range cells {
				So(len(row), ShouldEqual, 30)
			}
		})

		Convey("Boundary cells report their boundary edges as original walls", func() {
			cells := Convert(s)
			So(cells[0][0].WallUp, ShouldBeTrue)
			So(cells[0][0].OrigUp, ShouldBeTrue)
			So(cells[0][0].WallLeft, ShouldBeTrue)
		})
	})
}

func TestWriteReport(t *testing.T) {
	Convey("Given a before and after Store", t, func() {
		before := grid.NewStore()
		after := grid.NewStore()
		after.ToggleWallV(5, 10)

		var buf bytes.Buffer
		err := WriteReport(&buf, before, after, 42)

		Convey("It renders an HTML document containing the score", func() {
			So(err, ShouldBeNil)
			So(strings.Contains(buf.String(), "score: 42"), ShouldBeTrue)
			So(strings.Contains(buf.String(), "<html>"), ShouldBeTrue)
		})
	})
}
