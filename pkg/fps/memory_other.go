//go:build !linux

package fps

func availableMemoryMB() uint64 { return 0 }
