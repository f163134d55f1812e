package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/yleguide/yleguide/constant"
)

func TestCommand(t *testing.T) {
	Convey("Given a url", t, func() {
		url := WebPage("1-4553279")

		Convey("Then it points at the program page", func() {
			So(url, ShouldEqual, "https://areena.yle.fi/1-4553279")
		})

		Convey("When building the linux command", func() {
			cmd, err := command(constant.Linux, url)

			Convey("Then xdg-open receives the url", func() {
				So(err, ShouldBeNil)
				So(cmd.Args, ShouldResemble, []string{"xdg-open", url})
			})
		})

		Convey("When building the darwin command", func() {
			cmd, err := command(constant.Darwin, url)

			Convey("Then open receives the url", func() {
				So(err, ShouldBeNil)
				So(cmd.Args, ShouldResemble, []string{"open", url})
			})
		})

		Convey("When the platform is unknown", func() {
			_, err := command("plan9", url)

			Convey("Then an error is returned", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
