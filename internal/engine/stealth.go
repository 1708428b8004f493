package engine

import stealth "github.com/anatolykoptev/go-stealth"

// RandomUserAgent re-exports the go-stealth desktop browser UA rotation.
func RandomUserAgent() string { return stealth.RandomUserAgent() }
