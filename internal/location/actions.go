// Package location builds the outbound links behind the "Get Directions" and
// "Call Now" buttons.
package location

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DirectionsBaseURL is the maps provider endpoint for turn-by-turn directions.
const DirectionsBaseURL = "https://www.google.com/maps/dir/?api=1&destination="

// Link targets, matching the HTML target attribute.
const (
	TargetBlank = "_blank"
	TargetSelf  = "_self"
)

// Action is an outbound deep link and the browsing context to open it in.
type Action struct {
	URL    string
	Target string
}

// DirectionsURL returns the maps deep link for address.
func DirectionsURL(address string) string {
	return DirectionsBaseURL + encodeComponent(address)
}

// CallURL returns a tel: link with every non-digit stripped from phone.
func CallURL(phone string) string {
	return "tel:" + digits(phone)
}

// GetDirections opens directions in a new viewing context.
func GetDirections(address string) Action {
	return Action{URL: DirectionsURL(address), Target: TargetBlank}
}

// CallNow dials in the current viewing context.
func CallNow(phone string) Action {
	return Action{URL: CallURL(phone), Target: TargetSelf}
}

// DefaultQRSize is the edge length in pixels of the QR code shown on the page.
const DefaultQRSize = 256

// DirectionsQR renders the directions link as a PNG QR code.
func DirectionsQR(address string, size int) ([]byte, error) {
	png, err := qrcode.Encode(DirectionsURL(address), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode directions QR code: %w", err)
	}
	return png, nil
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeComponent percent-encodes s like a browser's encodeURIComponent:
// spaces become %20 and only A-Z a-z 0-9 - _ . ! ~ * ' ( ) pass through.
func encodeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
