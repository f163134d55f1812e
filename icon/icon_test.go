package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/key"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		defer viper.Set(key.IconsVariant, nil)

		Convey("It renders for every variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(Channel), ShouldNotBeEmpty)
				So(Get(Play), ShouldNotBeEmpty)
			}
		})

		Convey("The plain variant is ASCII", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Arrow), ShouldEqual, "->")
		})

		Convey("It renders nothing for an unknown variant", func() {
			viper.Set(key.IconsVariant, "kaomoji")
			So(Get(Success), ShouldBeEmpty)
		})
	})

	Convey("Given an unregistered icon", t, func() {
		viper.Set(key.IconsVariant, "emoji")
		defer viper.Set(key.IconsVariant, nil)
		So(Get(Icon(999)), ShouldBeEmpty)
	})
}
