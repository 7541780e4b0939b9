package imagegen

import "fmt"

// DeviceClass is the compute hardware category the diffusion backends run
// on. It is decided once at startup and determines precision and the maximum
// generation size.
type DeviceClass string

const (
	// DeviceCUDA is a dedicated accelerator with its own VRAM.
	DeviceCUDA DeviceClass = "cuda"
	// DeviceMPS is a unified-memory accelerator.
	DeviceMPS DeviceClass = "mps"
	// DeviceCPU is general compute with no accelerator.
	DeviceCPU DeviceClass = "cpu"
)

// ParseDeviceClass validates a configured device class string.
func ParseDeviceClass(s string) (DeviceClass, error) {
	switch DeviceClass(s) {
	case DeviceCUDA, DeviceMPS, DeviceCPU:
		return DeviceClass(s), nil
	default:
		return "", fmt.Errorf("unknown device class %q", s)
	}
}

// HalfPrecision reports whether inference should run in reduced precision on
// this device class.
func (c DeviceClass) HalfPrecision() bool {
	return c == DeviceCUDA || c == DeviceMPS
}

// Device is the process-wide compute selection: the hardware class plus, for
// dedicated accelerators, the available VRAM in gigabytes.
type Device struct {
	Class  DeviceClass
	VRAMGB float64
}

// sizeCeiling is the largest generation size a device configuration can
// handle.
type sizeCeiling struct {
	width  int
	height int
}

// ceilingRule maps a device predicate to a size ceiling, evaluated in order
// with first match winning. A CUDA device with 12GB or more of VRAM matches
// no rule and generates at the requested size.
type ceilingRule struct {
	matches func(Device) bool
	ceiling sizeCeiling
}

var ceilingRules = []ceilingRule{
	{
		matches: func(d Device) bool { return d.Class == DeviceCUDA && d.VRAMGB > 0 && d.VRAMGB < 8 },
		ceiling: sizeCeiling{width: 1536, height: 896},
	},
	{
		matches: func(d Device) bool { return d.Class == DeviceCUDA && d.VRAMGB > 0 && d.VRAMGB < 12 },
		ceiling: sizeCeiling{width: 1792, height: 1024},
	},
	{
		matches: func(d Device) bool { return d.Class == DeviceMPS || d.Class == DeviceCPU },
		ceiling: sizeCeiling{width: 1024, height: 1024},
	},
}

// ClampSize clamps the requested size against the device's ceiling. Each axis
// is clamped independently and never scaled up.
func (d Device) ClampSize(width, height int) (int, int) {
	for _, rule := range ceilingRules {
		if !rule.matches(d) {
			continue
		}
		if width > rule.ceiling.width {
			width = rule.ceiling.width
		}
		if height > rule.ceiling.height {
			height = rule.ceiling.height
		}
		break
	}
	return width, height
}
