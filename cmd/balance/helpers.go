// ABOUTME: Shared CLI helpers for date parsing and NET formatting.
// ABOUTME: Backdated entries land at noon local time so the derived date is stable.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/models"
)

// timestampForDate maps an ISO date onto a timestamp at noon local
// time. Noon keeps the denormalized date stable even if records move
// across machines in nearby timezones.
func timestampForDate(date string) (int64, error) {
	t, err := time.ParseInLocation(models.DateLayout, date, time.Local)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date)
	}
	return t.Add(12 * time.Hour).UnixMilli(), nil
}

// formatNet renders NET calories with its sign convention colored:
// red surplus, green deficit.
func formatNet(net float64) string {
	switch {
	case net > 0:
		return color.RedString("+%.0f", net)
	case net < 0:
		return color.GreenString("%.0f", net)
	default:
		return "0"
	}
}
