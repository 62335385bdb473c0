//go:build linux

package fps

import (
	"log"
	"syscall"
)

// availableMemoryMB counts free and buffer memory, which Linux can reclaim.
func availableMemoryMB() uint64 {
	var info syscall.Sysinfo_t
	if err := syscall.Sysinfo(&info); err != nil {
		log.Printf("Warning: FPS: sysinfo failed: %v", err)
		return 0
	}
	unit := uint64(info.Unit)
	return (uint64(info.Freeram) + uint64(info.Bufferram)) * unit >> 20
}
