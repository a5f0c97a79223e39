//go:build unix || windows

package local

var unsupportedTests []string
