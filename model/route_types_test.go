package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTxcModeToGtfsRouteType(t *testing.T) {
	cases := []struct {
		mode string
		want RouteType
	}{
		{"tram", Tram},
		{"metro", Subway},
		{"underground", Subway},
		{"rail", Rail},
		{"train", Rail},
		{"ferry", Ferry},
		{"trolleybus", Trolleybus},
		{"coach", Bus},
		{"bus", Bus},
		{"", Bus},
		{"spaceship", Bus},
	}
	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			assert.Equal(t, tc.want, MapTxcModeToGtfsRouteType(tc.mode))
		})
	}
}

func TestRouteTypeStringAndValue(t *testing.T) {
	assert.Equal(t, "Bus", Bus.String())
	assert.Equal(t, "Unknown", RouteType(99999).String())
	assert.Equal(t, 3, Bus.Value())
}
