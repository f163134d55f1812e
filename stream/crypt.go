package stream

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// DecryptError describes a token that could not be turned into a URL.
type DecryptError struct {
	Reason string
	Err    error
}

func (e *DecryptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decrypt stream url: %s: %v", e.Reason, e.Err)
	}
	return "decrypt stream url: " + e.Reason
}

func (e *DecryptError) Unwrap() error {
	return e.Err
}

func decodeToken(token string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(token); rawErr == nil {
		return raw, nil
	}
	return nil, err
}

// Decrypt recovers a stream URL from an upstream playout token.
// The token is base64 of IV (16 bytes) followed by AES-CBC ciphertext with
// PKCS#7 padding, keyed by the UTF-8 bytes of secret.
func Decrypt(token, secret string) (string, error) {
	data, err := decodeToken(token)
	if err != nil {
		return "", &DecryptError{Reason: "token is not base64", Err: err}
	}

	block, err := aes.NewCipher([]byte(secret))
	if err != nil {
		return "", &DecryptError{Reason: "secret must be 16, 24 or 32 bytes", Err: err}
	}

	if len(data) < 2*aes.BlockSize {
		return "", &DecryptError{Reason: fmt.Sprintf("token too short (%d bytes)", len(data))}
	}

	iv, ciphertext := data[:aes.BlockSize], data[aes.BlockSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return "", &DecryptError{Reason: fmt.Sprintf("ciphertext length %d is not a multiple of %d", len(ciphertext), aes.BlockSize)}
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	plain, err = unpad(plain)
	if err != nil {
		return "", &DecryptError{Reason: "bad padding", Err: err}
	}

	if !utf8.Valid(plain) {
		return "", &DecryptError{Reason: "result is not UTF-8"}
	}

	return string(plain), nil
}

// Encrypt is the inverse of Decrypt. A nil iv is drawn from crypto/rand.
func Encrypt(url, secret string, iv []byte) (string, error) {
	block, err := aes.NewCipher([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("encrypt stream url: %w", err)
	}

	if iv == nil {
		iv = make([]byte, aes.BlockSize)
		if _, err := rand.Read(iv); err != nil {
			return "", fmt.Errorf("encrypt stream url: %w", err)
		}
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("encrypt stream url: iv must be %d bytes", aes.BlockSize)
	}

	plain := pad([]byte(url))
	out := make([]byte, aes.BlockSize+len(plain))
	copy(out, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], plain)

	return base64.StdEncoding.EncodeToString(out), nil
}

func pad(data []byte) []byte {
	n := aes.BlockSize - len(data)%aes.BlockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty data")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, fmt.Errorf("invalid padding value %d", n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}
	return data[:len(data)-n], nil
}
