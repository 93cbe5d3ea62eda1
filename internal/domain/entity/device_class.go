// Package entity contains the core business objects of the project.
package entity

// DeviceClass is the physical form factor of a tag. It only affects labels and icons.
type DeviceClass string

const (
	// DeviceClassPin is a clip-on pin.
	DeviceClassPin DeviceClass = "pin"
	// DeviceClassCard is a wallet card.
	DeviceClassCard DeviceClass = "card"
	// DeviceClassBracelet is a wristband.
	DeviceClassBracelet DeviceClass = "bracelet"
	// DeviceClassKeychain is a key fob.
	DeviceClassKeychain DeviceClass = "keychain"
)

// AllDeviceClasses lists every known device class.
func AllDeviceClasses() []DeviceClass {
	return []DeviceClass{DeviceClassPin, DeviceClassCard, DeviceClassBracelet, DeviceClassKeychain}
}

// String returns the string representation of the DeviceClass.
func (c DeviceClass) String() string {
	return string(c)
}

// IsValid checks if the DeviceClass is a known value.
func (c DeviceClass) IsValid() bool {
	switch c {
	case DeviceClassPin, DeviceClassCard, DeviceClassBracelet, DeviceClassKeychain:
		return true
	default:
		return false
	}
}

// DefaultName is the display name used when the owner has not named the device.
func (c DeviceClass) DefaultName() string {
	switch c {
	case DeviceClassPin:
		return "Pin Jelpi"
	case DeviceClassCard:
		return "Tarjeta Jelpi"
	case DeviceClassBracelet:
		return "Pulsera Jelpi"
	case DeviceClassKeychain:
		return "Llavero Jelpi"
	default:
		return "Dispositivo Jelpi"
	}
}
