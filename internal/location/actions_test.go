package location_test

import (
	"bytes"
	"testing"

	"github.com/madhatterpub/site/internal/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionsURL(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{
			address: "123 Custom St",
			want:    "https://www.google.com/maps/dir/?api=1&destination=123%20Custom%20St",
		},
		{
			address: "1240 Crescent St, Montreal, QC H3G 2A9",
			want:    "https://www.google.com/maps/dir/?api=1&destination=1240%20Crescent%20St%2C%20Montreal%2C%20QC%20H3G%202A9",
		},
		{
			address: "Rue Saint-Denis & Sherbrooke",
			want:    "https://www.google.com/maps/dir/?api=1&destination=Rue%20Saint-Denis%20%26%20Sherbrooke",
		},
		{
			address: "Café (2nd floor)",
			want:    "https://www.google.com/maps/dir/?api=1&destination=Caf%C3%A9%20(2nd%20floor)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			assert.Equal(t, tt.want, location.DirectionsURL(tt.address))
		})
	}
}

func TestGetDirections(t *testing.T) {
	a := location.GetDirections("123 Custom St")
	assert.Contains(t, a.URL, "google.com/maps/dir")
	assert.Contains(t, a.URL, "123%20Custom%20St")
	assert.Equal(t, location.TargetBlank, a.Target)
}

func TestCallNow(t *testing.T) {
	tests := map[string]string{
		"(555) 123-4567":  "tel:5551234567",
		"(514) 393-1240":  "tel:5143931240",
		"+1 514.393.1240": "tel:15143931240",
		"":                "tel:",
	}
	for in, want := range tests {
		a := location.CallNow(in)
		assert.Equal(t, want, a.URL, in)
		assert.Equal(t, location.TargetSelf, a.Target)
	}
}

func TestDirectionsQR(t *testing.T) {
	png, err := location.DirectionsQR("123 Custom St", 128)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "expected PNG signature")
}
