// Package humantime formats timestamps the way the app displays them:
// relative within the last hour, progressively more absolute after that.
package humantime

import (
	"fmt"
	"time"
)

// Format renders ts relative to now.
//
// Under a minute the result is "刚刚", within the same day a minutes or
// hours ago string, yesterday a "昨天 HH:MM" string, within the same year
// a month/day string without the year, and anything older a full date.
func Format(ts, now time.Time) string {
	if ts.IsZero() {
		return ""
	}

	ts = ts.In(now.Location())

	d := now.Sub(ts)
	if d < time.Minute {
		return "刚刚"
	}

	if sameDay(ts, now) {
		if d < time.Hour {
			return fmt.Sprintf("%d分钟前", int(d.Minutes()))
		}

		return fmt.Sprintf("%d小时前", int(d.Hours()))
	}

	if sameDay(ts, now.AddDate(0, 0, -1)) {
		return "昨天 " + ts.Format("15:04")
	}

	if ts.Year() == now.Year() {
		return ts.Format("01月02日 15:04")
	}

	return ts.Format("2006年01月02日")
}

// FormatNow renders ts relative to the current time.
func FormatNow(ts time.Time) string {
	return Format(ts, time.Now())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
