package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlexSec-DEV/BlackKeyv2/models"
)

func TestDailyReturn(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		want      float64
	}{
		{"silver minimum", 5, 7, 0.011667},
		{"silver hundred", 100, 7, 0.233333},
		{"gold", 250, 10, 0.833333},
		{"platinum", 600, 16, 3.2},
		{"diamond", 2000, 25, 16.666667},
		{"master", 6000, 34, 68},
		{"elite top", 20000, 40, 266.666667},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, DailyReturn(tc.principal, tc.rate), 1e-9)
		})
	}
}

func TestTotalReturnRoundTrip(t *testing.T) {
	// the settlement credit must reproduce principal * (1 + rate/100)
	// within a cent despite the per-day rounding
	cases := []struct {
		principal float64
		rate      float64
		want      float64
	}{
		{100, 7, 107.00},
		{5, 7, 5.35},
		{500, 16, 580.00},
		{1234.56, 25, 1543.20},
		{10000, 40, 14000.00},
	}
	for _, tc := range cases {
		daily := DailyReturn(tc.principal, tc.rate)
		got := TotalReturn(tc.principal, daily)
		assert.InDelta(t, tc.want, got, 0.01, "principal=%v rate=%v", tc.principal, tc.rate)
	}
}

func TestResolveLevel(t *testing.T) {
	cases := []struct {
		name      string
		level     uint
		xp        uint
		wantLevel uint
		wantXP    uint
	}{
		{"no level up", 1, 18, 1, 18},
		{"exact threshold", 1, 100, 2, 0},
		{"carry over", 1, 118, 2, 18},
		{"multiple levels", 3, 250, 5, 50},
		{"zero xp", 7, 0, 7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			level, xp := ResolveLevel(tc.level, tc.xp)
			assert.Equal(t, tc.wantLevel, level)
			assert.Equal(t, tc.wantXP, xp)
		})
	}
}

func TestResolveLevelAccumulation(t *testing.T) {
	// six investments in a row: 6*18 = 108 XP lands the user on level 2 with 8 XP
	level, xp := uint(1), uint(0)
	for i := 0; i < 6; i++ {
		level, xp = ResolveLevel(level, xp+XPPerInvestment)
	}
	assert.Equal(t, uint(2), level)
	assert.Equal(t, uint(8), xp)
}

func TestDefaultCatalogBoundaries(t *testing.T) {
	// the seeded tiers tile the 5..20000 range without gaps
	defs := models.DefaultPackageSettings()
	assert.Len(t, defs, 6)
	for i := 1; i < len(defs); i++ {
		assert.Equal(t, defs[i-1].MaxAmount, defs[i].MinAmount, "tier %s should start where %s ends", defs[i].Type, defs[i-1].Type)
	}
	assert.Equal(t, 5.0, defs[0].MinAmount)
	assert.Equal(t, 20000.0, defs[len(defs)-1].MaxAmount)
}
