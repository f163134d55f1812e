package ui

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notice model", t, func() {
		var m Model

		Convey("Without a notice the content is unchanged", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("A notice is appended to the last line", func() {
			So(m.Update(Notify("refreshed")()), ShouldNotBeNil)
			So(m.View("a\nb"), ShouldContainSubstring, "refreshed")
			So(m.Current().Error, ShouldBeFalse)
		})

		Convey("A stale clear does not remove a newer notice", func() {
			m.Update(NotifyError(errors.New("stream unavailable"))())
			first := m.notifiedAt

			m.Update(Notice{Text: "newer"})
			m.Update(clearNoticeMsg{at: first.Add(-1)})
			So(m.Current().Text, ShouldEqual, "newer")

			m.Update(clearNoticeMsg{at: m.notifiedAt})
			So(m.Current().Text, ShouldBeEmpty)
		})
	})
}
