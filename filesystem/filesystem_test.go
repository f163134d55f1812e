package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Given the in-memory backend", t, func() {
		SetMemMapFs()
		defer SetOsFs()

		Convey("When a file is written", func() {
			So(API().WriteFile("/config/yleguide.toml", []byte("[api]\n"), 0o644), ShouldBeNil)

			Convey("Then it can be read back", func() {
				data, err := API().ReadFile("/config/yleguide.toml")
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "[api]\n")
			})

			Convey("And switching backends starts from an empty filesystem", func() {
				SetMemMapFs()
				exists, err := API().Exists("/config/yleguide.toml")
				So(err, ShouldBeNil)
				So(exists, ShouldBeFalse)
			})
		})

		Convey("Then the backend reports its kind", func() {
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}
