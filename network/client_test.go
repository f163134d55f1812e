package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a plain client", t, func() {
		client := New(5*time.Second, false)

		So(client.Timeout, ShouldEqual, 5*time.Second)
		_, ok := client.Transport.(*http.Transport)
		So(ok, ShouldBeTrue)

		Convey("It should reach a local server", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "ok")
			}))
			defer server.Close()

			resp, err := client.Get(server.URL)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			So(string(body), ShouldEqual, "ok")
		})
	})

	Convey("Given a fingerprinted client", t, func() {
		client := New(time.Second, true)
		_, ok := client.Transport.(*FingerprintTransport)
		So(ok, ShouldBeTrue)

		Convey("Plain http requests use the HTTP/1.1 transport", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))
			defer server.Close()

			resp, err := client.Get(server.URL)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
		})
	})
}
