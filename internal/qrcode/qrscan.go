// Package qrcode extracts provisioning material from otpauth QR images.
package qrcode

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/pquerna/otp"
)

// KeyInfo is the provisioning data carried by an otpauth QR code.
type KeyInfo struct {
	Secret  string // base32, as authenticator apps expect
	Issuer  string
	Account string
}

// ScanFile decodes the QR code in an image file and returns the otpauth
// payload it carries. PNG and JPEG are supported.
func ScanFile(path string) (KeyInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return KeyInfo{}, fmt.Errorf("opening QR image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return KeyInfo{}, fmt.Errorf("decoding QR image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return KeyInfo{}, fmt.Errorf("preparing image for QR reading: %w", err)
	}

	reader := qrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		return KeyInfo{}, fmt.Errorf("reading QR code: %w\nmake sure the code fills the image and is in focus", err)
	}

	return ExtractKeyInfo(result.GetText())
}

// ExtractKeyInfo parses an otpauth URL into its provisioning parts.
func ExtractKeyInfo(otpauthURL string) (KeyInfo, error) {
	if !strings.HasPrefix(otpauthURL, "otpauth://") {
		return KeyInfo{}, fmt.Errorf("not an otpauth URL: %q", otpauthURL)
	}

	key, err := otp.NewKeyFromURL(otpauthURL)
	if err != nil {
		return KeyInfo{}, fmt.Errorf("parsing otpauth URL: %w", err)
	}

	if key.Secret() == "" {
		return KeyInfo{}, fmt.Errorf("otpauth URL carries no secret")
	}

	return KeyInfo{
		Secret:  key.Secret(),
		Issuer:  key.Issuer(),
		Account: key.AccountName(),
	}, nil
}
