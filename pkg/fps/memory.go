package fps

import (
	"fmt"
	"runtime"
)

// MemoryStats is the memory state sampled with each report.
type MemoryStats struct {
	HeapMB uint64
	SysMB  uint64
	NumGC  uint32

	// AvailableMB is the memory the system can still hand out, 0 when the
	// platform does not report it.
	AvailableMB uint64
}

// Pressure classifies how close the system is to running out of memory.
type Pressure int

const (
	PressureUnknown Pressure = iota
	PressureNone
	PressureLow
	PressureHigh
	PressureCritical
)

func (p Pressure) String() string {
	switch p {
	case PressureNone:
		return "None"
	case PressureLow:
		return "Low"
	case PressureHigh:
		return "High"
	case PressureCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Pressure derives the pressure level from AvailableMB.
func (m MemoryStats) Pressure() Pressure {
	switch {
	case m.AvailableMB == 0:
		return PressureUnknown
	case m.AvailableMB < 100:
		return PressureCritical
	case m.AvailableMB < 200:
		return PressureHigh
	case m.AvailableMB < 400:
		return PressureLow
	default:
		return PressureNone
	}
}

func (m MemoryStats) String() string {
	s := fmt.Sprintf("heap %dMB sys %dMB gc %d", m.HeapMB, m.SysMB, m.NumGC)
	if m.AvailableMB > 0 {
		s += fmt.Sprintf(" avail %dMB", m.AvailableMB)
	}
	return s
}

// ReadMemory samples the Go runtime and, where supported, the system.
func ReadMemory() MemoryStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return MemoryStats{
		HeapMB:      ms.Alloc >> 20,
		SysMB:       ms.Sys >> 20,
		NumGC:       ms.NumGC,
		AvailableMB: availableMemoryMB(),
	}
}
