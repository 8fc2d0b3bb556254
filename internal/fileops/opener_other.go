//go:build !windows && !darwin

package fileops

const defaultOpener = "xdg-open"
