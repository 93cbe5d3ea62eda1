// Package display maps device and profile enumerations to localized labels,
// style classes and icons. Every lookup is total: unknown input yields an
// explicit fallback instead of a panic.
package display

import "jelpi/internal/domain/entity"

// Style classes shared with the web client.
const (
	StyleGray   = "gray"
	StyleYellow = "yellow"
	StyleGreen  = "green"
	StylePurple = "purple"
	StyleRed    = "red"
	StyleBlue   = "blue"
)

// UnknownLabel is shown for values outside the known enumerations.
const UnknownLabel = "Desconocido"

// Badge is a label with its style class.
type Badge struct {
	Label string `json:"label"`
	Style string `json:"style"`
}

// Icon is a label with its icon name.
type Icon struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Status returns the badge for a device status.
func Status(status entity.DeviceStatus) Badge {
	switch status {
	case entity.DeviceStatusInactive:
		return Badge{Label: "Inactivo", Style: StyleYellow}
	case entity.DeviceStatusActivated:
		return Badge{Label: "Activado", Style: StyleGreen}
	case entity.DeviceStatusLinked:
		return Badge{Label: "Vinculado", Style: StylePurple}
	default:
		return Badge{Label: UnknownLabel, Style: StyleGray}
	}
}

// Class returns the label and icon for a device class.
func Class(class entity.DeviceClass) Icon {
	switch class {
	case entity.DeviceClassPin:
		return Icon{Label: "Pin", Icon: "tag"}
	case entity.DeviceClassCard:
		return Icon{Label: "Tarjeta", Icon: "credit-card"}
	case entity.DeviceClassBracelet:
		return Icon{Label: "Pulsera", Icon: "scan"}
	case entity.DeviceClassKeychain:
		return Icon{Label: "Llavero", Icon: "key"}
	default:
		return Icon{Label: UnknownLabel, Icon: "help-circle"}
	}
}

// ProfileType returns the badge for a profile discriminator.
func ProfileType(kind entity.ProfileKind) Badge {
	switch kind {
	case entity.ProfileKindNone:
		return Badge{Label: "Sin definir", Style: StyleGray}
	case entity.ProfileKindMedical:
		return Badge{Label: "Médico", Style: StyleRed}
	case entity.ProfileKindPet:
		return Badge{Label: "Mascota", Style: StyleBlue}
	case entity.ProfileKindContact:
		return Badge{Label: "Contacto", Style: StyleGreen}
	case entity.ProfileKindVendor:
		return Badge{Label: "Vendedor", Style: StylePurple}
	default:
		return Badge{Label: "Sin definir", Style: StyleGray}
	}
}

// DeviceLabels bundles the labels shown next to a device.
type DeviceLabels struct {
	DisplayName string `json:"display_name"`
	Status      Badge  `json:"status"`
	Class       Icon   `json:"class"`
	ProfileType Badge  `json:"profile_type"`
}

// ForDevice computes every label of a device at once.
func ForDevice(d *entity.Device) DeviceLabels {
	return DeviceLabels{
		DisplayName: d.DisplayName(),
		Status:      Status(d.Status),
		Class:       Class(d.Class),
		ProfileType: ProfileType(d.ProfileType),
	}
}
