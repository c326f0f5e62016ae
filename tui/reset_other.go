//go:build !unix

package tui

func resetTerminalMode() {}
