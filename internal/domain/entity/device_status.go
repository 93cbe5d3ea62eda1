package entity

// DeviceStatus is the lifecycle state of a device.
type DeviceStatus string

const (
	// DeviceStatusInactive is the initial state of a registered device.
	DeviceStatusInactive DeviceStatus = "inactive"
	// DeviceStatusActivated means the activation code was accepted.
	DeviceStatusActivated DeviceStatus = "activated"
	// DeviceStatusLinked means a profile is attached. It is terminal.
	DeviceStatusLinked DeviceStatus = "linked"
)

// AllDeviceStatuses lists every status in lifecycle order.
func AllDeviceStatuses() []DeviceStatus {
	return []DeviceStatus{DeviceStatusInactive, DeviceStatusActivated, DeviceStatusLinked}
}

// String returns the string representation of the DeviceStatus.
func (s DeviceStatus) String() string {
	return string(s)
}

// IsValid checks if the DeviceStatus is a known value.
func (s DeviceStatus) IsValid() bool {
	switch s {
	case DeviceStatusInactive, DeviceStatusActivated, DeviceStatusLinked:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is the single allowed forward step from s.
func (s DeviceStatus) CanTransitionTo(next DeviceStatus) bool {
	switch s {
	case DeviceStatusInactive:
		return next == DeviceStatusActivated
	case DeviceStatusActivated:
		return next == DeviceStatusLinked
	default:
		return false
	}
}
