package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/filesystem"
	"github.com/yleguide/yleguide/key"
	"github.com/yleguide/yleguide/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		defer viper.Set(key.LogsWrite, nil)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer func() {
			viper.Set(key.LogsWrite, nil)
			viper.Set(key.LogsLevel, nil)
		}()

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("Messages should land in today's file", func() {
			Debugf("fetched %d services", 3)
			With(Fields{"route": "personal"}).Info("navigate")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			contents := string(lo.Must(filesystem.API().ReadFile(path)))
			So(contents, ShouldContainSubstring, "fetched 3 services")
			So(strings.Contains(contents, "route=personal"), ShouldBeTrue)
		})
	})
}
