// Package device maps raw user-agent strings to a coarse human-readable
// "OS - Browser" label. Classification is best-effort and never fails.
package device

import (
	"github.com/mileusna/useragent"
)

// Describe returns an "OS - Browser" label for a raw user-agent string.
func Describe(rawUA string) string {
	ua := useragent.Parse(rawUA)

	osName := ua.OS
	if osName == "" {
		osName = "Unknown OS"
	}
	browser := ua.Name
	if browser == "" {
		browser = "Browser"
	}

	return osName + " - " + browser
}
