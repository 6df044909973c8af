// Package timeutil converts times to the epoch-based numbers the frontend
// expects.
package timeutil

import "time"

// ToMillis returns t as milliseconds since the Unix epoch.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// NowMillis returns the current time in milliseconds since the Unix epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// EpochSeconds returns the current time in whole seconds since the Unix
// epoch.
func EpochSeconds() int64 {
	return time.Now().Unix()
}
