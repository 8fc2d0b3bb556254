//go:build darwin

package fileops

const defaultOpener = "open"
