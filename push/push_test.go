package push

import (
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecodeApplicationServerKey(t *testing.T) {
	Convey("Given a generated VAPID key pair", t, func() {
		private, err := ecdh.P256().GenerateKey(rand.Reader)
		So(err, ShouldBeNil)
		public := private.PublicKey().Bytes()

		Convey("The unpadded URL-safe form decodes", func() {
			raw, err := DecodeApplicationServerKey(EncodeApplicationServerKey(public))
			So(err, ShouldBeNil)
			So(raw, ShouldResemble, public)
		})

		Convey("The padded form decodes too", func() {
			raw, err := DecodeApplicationServerKey(base64.URLEncoding.EncodeToString(public))
			So(err, ShouldBeNil)
			So(raw, ShouldResemble, public)
		})

		Convey("A truncated key is rejected", func() {
			_, err := DecodeApplicationServerKey(EncodeApplicationServerKey(public[:33]))
			So(err, ShouldNotBeNil)
		})

		Convey("A point off the curve is rejected", func() {
			bad := make([]byte, KeySize)
			bad[0] = 0x04
			bad[64] = 1
			_, err := DecodeApplicationServerKey(EncodeApplicationServerKey(bad))
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given invalid input", t, func() {
		_, err := DecodeApplicationServerKey("  ")
		So(errors.Is(err, ErrEmptyKey), ShouldBeTrue)

		_, err = DecodeApplicationServerKey("not*base64")
		So(err, ShouldNotBeNil)
	})
}
