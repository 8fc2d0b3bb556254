//go:build windows

package fileops

const defaultOpener = "explorer"
