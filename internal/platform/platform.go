// Package platform performs coarse device-family detection from the host
// navigator's platform string and touch-point count.
package platform

import "regexp"

var iosPlatform = regexp.MustCompile(`iP(ad|hone|od)`)

// Navigator carries the host properties used for detection.
type Navigator struct {
	Platform       string
	MaxTouchPoints int
}

// IsIOSDevice reports whether nav describes an iPhone, iPad or iPod. iPadOS
// reports itself as MacIntel, so a Mac platform with multi-touch counts too.
func IsIOSDevice(nav *Navigator) bool {
	if nav == nil || nav.Platform == "" {
		return false
	}
	if iosPlatform.MatchString(nav.Platform) {
		return true
	}
	return nav.Platform == "MacIntel" && nav.MaxTouchPoints > 1
}
