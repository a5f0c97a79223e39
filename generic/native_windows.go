//go:build windows

package generic

// Native is the convention of the platform the binary was built for.
const Native = ConventionWindows
