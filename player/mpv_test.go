package player

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitize(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		target, err := sanitizeMediaTarget("  https://cdn.example/master.m3u8?x=1 ")
		So(err, ShouldBeNil)
		So(target, ShouldEqual, "https://cdn.example/master.m3u8?x=1")

		for _, bad := range []string{"", "--script=evil.lua", "file:///etc/passwd", "https://a\nb"} {
			_, err := sanitizeMediaTarget(bad)
			So(err, ShouldNotBeNil)
		}
	})

	Convey("sanitizeTitle", t, func() {
		So(sanitizeTitle(" Uutiset\n18.00\t"), ShouldEqual, "Uutiset 18.00")
	})
}

func TestMpvArgs(t *testing.T) {
	Convey("mpvArgs ends with the target and names the socket", t, func() {
		args := mpvArgs("/tmp/x.sock", "Yle TV1: Uutiset", "https://cdn.example/a.m3u8")
		So(args, ShouldContain, "--input-ipc-server=/tmp/x.sock")
		So(args, ShouldContain, "--force-media-title=Yle TV1: Uutiset")
		So(args[len(args)-1], ShouldEqual, "https://cdn.example/a.m3u8")
	})
}

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		p, err := New("mpv")
		So(err, ShouldBeNil)
		_, ok := p.(*MPV)
		So(ok, ShouldBeTrue)

		_, err = New("definitely-not-a-player-binary")
		So(err, ShouldNotBeNil)
	})
}

func TestIPC(t *testing.T) {
	Convey("Given a fake mpv socket", t, func() {
		dir, err := os.MkdirTemp("", "ipc")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		socket := filepath.Join(dir, "mpv.sock")
		listener, err := net.Listen("unix", socket)
		So(err, ShouldBeNil)
		defer listener.Close()

		go func() {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			defer conn.Close()

			var cmd ipcCommand
			_ = json.NewDecoder(conn).Decode(&cmd)
			_, _ = conn.Write([]byte(`{"event":"property-change"}` + "\n"))
			_, _ = conn.Write([]byte(`{"data":42.5,"error":"success"}` + "\n"))
		}()

		Convey("Replies are read past interleaved events", func() {
			data, err := doSendCommand(socket, []any{"get_property", "time-pos"})
			So(err, ShouldBeNil)
			So(data, ShouldEqual, 42.5)
		})
	})
}
