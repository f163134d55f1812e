package util

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "channel", "channels"), ShouldEqual, "1 channel")
		So(Quantify(0, "channel", "channels"), ShouldEqual, "0 channels")
		So(Quantify(4, "channel", "channels"), ShouldEqual, "4 channels")
	})
}

func TestClock(t *testing.T) {
	Convey("Clock", t, func() {
		So(Clock(time.Time{}), ShouldEqual, "--:--")

		at := time.Date(2024, 3, 1, 18, 5, 0, 0, time.Local)
		So(Clock(at), ShouldEqual, "18:05")
	})
}

func TestEllipsize(t *testing.T) {
	Convey("Ellipsize", t, func() {
		So(Ellipsize("Eränkävijät", 20), ShouldEqual, "Eränkävijät")
		So(Ellipsize("Eränkävijät", 5), ShouldEqual, "Erän…")
		So(Ellipsize("abc", 1), ShouldEqual, "…")
		So(Ellipsize("  padded  ", 0), ShouldEqual, "padded")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("channels")
		s.Push("personal")
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "personal")
		So(s.Pop(), ShouldEqual, "personal")
		So(s.Pop(), ShouldEqual, "channels")
		So(s.Pop(), ShouldEqual, "")

		s.Push("x")
		s.Clear()
		So(s.Len(), ShouldEqual, 0)
	})
}
