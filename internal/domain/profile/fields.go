package profile

import (
	"strings"

	"jelpi/internal/domain/entity"
)

// FieldType decides how a field is rendered and which action it gets.
type FieldType int

const (
	// FieldText is plain text.
	FieldText FieldType = iota
	// FieldPhone renders a call action.
	FieldPhone
	// FieldEmail renders a mail action.
	FieldEmail
	// FieldLink renders an open action.
	FieldLink
	// FieldBadge is short text shown highlighted.
	FieldBadge
	// FieldList renders its items as chips in a section of its own.
	FieldList
)

// Social networks a link field can point to. An empty network is a plain website.
const (
	NetworkLinkedIn  = "linkedin"
	NetworkTwitter   = "twitter"
	NetworkInstagram = "instagram"
)

// FieldDescriptor describes one field of a profile kind.
type FieldDescriptor struct {
	Key      string    // Wire name of the field.
	Label    string    // Localized row label or section heading for lists.
	Section  string    // Heading of the section the row belongs to. Unused for lists.
	Type     FieldType // Rendering type.
	Optional bool      // Hide the row when the value is blank.
	Network  string    // Social network for link fields.

	value func(entity.ProfilePayload) []string
}

// Values returns the trimmed, non-blank values of the field in p.
func (f FieldDescriptor) Values(p entity.ProfilePayload) []string {
	if f.value == nil || p == nil {
		return nil
	}

	return f.value(p)
}

type layout struct {
	fields   []FieldDescriptor
	subtitle func(entity.ProfilePayload) string
}

func text[P entity.ProfilePayload](get func(P) string) func(entity.ProfilePayload) []string {
	return func(payload entity.ProfilePayload) []string {
		typed, ok := payload.(P)
		if !ok {
			return nil
		}
		if v := strings.TrimSpace(get(typed)); v != "" {
			return []string{v}
		}

		return nil
	}
}

func list[P entity.ProfilePayload](get func(P) []string) func(entity.ProfilePayload) []string {
	return func(payload entity.ProfilePayload) []string {
		typed, ok := payload.(P)
		if !ok {
			return nil
		}

		items := make([]string, 0, len(get(typed)))
		for _, item := range get(typed) {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}

		return items
	}
}

func joined[P entity.ProfilePayload](sep string, parts ...func(P) string) func(entity.ProfilePayload) string {
	return func(payload entity.ProfilePayload) string {
		typed, ok := payload.(P)
		if !ok {
			return ""
		}

		values := make([]string, 0, len(parts))
		for _, part := range parts {
			if v := strings.TrimSpace(part(typed)); v != "" {
				values = append(values, v)
			}
		}

		return strings.Join(values, sep)
	}
}

const (
	sectionInfo      = "Información"
	sectionMedical   = "Información médica"
	sectionOwner     = "Propietario"
	sectionVet       = "Veterinario"
	sectionEmergency = "Contacto de emergencia"
	sectionContact   = "Contacto"
	sectionSocial    = "Redes sociales"
	sectionDetails   = "Detalles"
	sectionAddress   = "Dirección"
)

//nolint:gochecknoglobals // read-only descriptor tables
var (
	petLayout = layout{
		subtitle: joined(" • ",
			func(p entity.PetProfile) string { return p.Species },
			func(p entity.PetProfile) string { return p.Breed },
		),
		fields: []FieldDescriptor{
			{Key: "especie", Label: "Especie", Section: sectionInfo, Type: FieldText, value: text(func(p entity.PetProfile) string { return p.Species })},
			{Key: "raza", Label: "Raza", Section: sectionInfo, Type: FieldText, value: text(func(p entity.PetProfile) string { return p.Breed })},
			{Key: "edad", Label: "Edad", Section: sectionInfo, Type: FieldText, value: text(func(p entity.PetProfile) string { return p.Age })},
			{Key: "propietario", Label: "Nombre", Section: sectionOwner, Type: FieldText, value: text(func(p entity.PetProfile) string { return p.OwnerName })},
			{Key: "telefono", Label: "Teléfono", Section: sectionOwner, Type: FieldPhone, value: text(func(p entity.PetProfile) string { return p.OwnerPhone })},
			{Key: "veterinario", Label: "Veterinario", Section: sectionVet, Type: FieldText, Optional: true, value: text(func(p entity.PetProfile) string { return p.VetName })},
			{Key: "telefonoVeterinario", Label: "Teléfono del veterinario", Section: sectionVet, Type: FieldPhone, Optional: true, value: text(func(p entity.PetProfile) string { return p.VetPhone })},
			{Key: "condicionesMedicas", Label: "Condiciones médicas", Type: FieldList, value: list(func(p entity.PetProfile) []string { return p.Conditions })},
			{Key: "direccion", Label: "Dirección", Section: sectionAddress, Type: FieldText, Optional: true, value: text(func(p entity.PetProfile) string { return p.Address })},
		},
	}

	medicalLayout = layout{
		subtitle: joined("", func(p entity.MedicalProfile) string { return p.Age }),
		fields: []FieldDescriptor{
			{Key: "grupoSanguineo", Label: "Grupo sanguíneo", Section: sectionMedical, Type: FieldBadge, value: text(func(p entity.MedicalProfile) string { return p.BloodType })},
			{Key: "edad", Label: "Edad", Section: sectionMedical, Type: FieldText, value: text(func(p entity.MedicalProfile) string { return p.Age })},
			{Key: "contactoEmergencia", Label: "Nombre", Section: sectionEmergency, Type: FieldText, value: text(func(p entity.MedicalProfile) string { return p.EmergencyContact })},
			{Key: "telefonoEmergencia", Label: "Teléfono", Section: sectionEmergency, Type: FieldPhone, value: text(func(p entity.MedicalProfile) string { return p.EmergencyPhone })},
			{Key: "condicionesMedicas", Label: "Condiciones médicas", Type: FieldList, value: list(func(p entity.MedicalProfile) []string { return p.Conditions })},
			{Key: "medicamentos", Label: "Medicamentos", Type: FieldList, value: list(func(p entity.MedicalProfile) []string { return p.Medications })},
			{Key: "alergias", Label: "Alergias", Type: FieldList, value: list(func(p entity.MedicalProfile) []string { return p.Allergies })},
			{Key: "direccion", Label: "Dirección", Section: sectionAddress, Type: FieldText, Optional: true, value: text(func(p entity.MedicalProfile) string { return p.Address })},
		},
	}

	contactLayout = layout{
		subtitle: joined(" • ",
			func(p entity.ContactProfile) string { return p.JobTitle },
			func(p entity.ContactProfile) string { return p.Company },
		),
		fields: []FieldDescriptor{
			{Key: "telefono", Label: "Teléfono", Section: sectionContact, Type: FieldPhone, value: text(func(p entity.ContactProfile) string { return p.Phone })},
			{Key: "email", Label: "Email", Section: sectionContact, Type: FieldEmail, value: text(func(p entity.ContactProfile) string { return p.Email })},
			{Key: "sitioWeb", Label: "Sitio web", Section: sectionContact, Type: FieldLink, Optional: true, value: text(func(p entity.ContactProfile) string { return p.Website })},
			{Key: "redes.linkedin", Label: "LinkedIn", Section: sectionSocial, Type: FieldLink, Optional: true, Network: NetworkLinkedIn, value: text(func(p entity.ContactProfile) string { return p.Socials.LinkedIn })},
			{Key: "redes.twitter", Label: "Twitter", Section: sectionSocial, Type: FieldLink, Optional: true, Network: NetworkTwitter, value: text(func(p entity.ContactProfile) string { return p.Socials.Twitter })},
			{Key: "redes.instagram", Label: "Instagram", Section: sectionSocial, Type: FieldLink, Optional: true, Network: NetworkInstagram, value: text(func(p entity.ContactProfile) string { return p.Socials.Instagram })},
		},
	}

	vendorLayout = layout{
		subtitle: joined(" • ",
			func(p entity.VendorProfile) string { return p.Category },
			func(p entity.VendorProfile) string { return p.Company },
		),
		fields: []FieldDescriptor{
			{Key: "telefono", Label: "Teléfono", Section: sectionContact, Type: FieldPhone, value: text(func(p entity.VendorProfile) string { return p.Phone })},
			{Key: "email", Label: "Email", Section: sectionContact, Type: FieldEmail, value: text(func(p entity.VendorProfile) string { return p.Email })},
			{Key: "tipoVendedor", Label: "Tipo de vendedor", Section: sectionDetails, Type: FieldText, value: text(func(p entity.VendorProfile) string { return p.Category })},
			{Key: "zona", Label: "Zona de servicio", Section: sectionDetails, Type: FieldText, value: text(func(p entity.VendorProfile) string { return p.ServiceArea })},
			{Key: "productos", Label: "Productos y servicios", Type: FieldList, value: list(func(p entity.VendorProfile) []string { return p.Products })},
		},
	}
)

func layoutFor(kind entity.ProfileKind) (layout, bool) {
	switch kind {
	case entity.ProfileKindMedical:
		return medicalLayout, true
	case entity.ProfileKindPet:
		return petLayout, true
	case entity.ProfileKindContact:
		return contactLayout, true
	case entity.ProfileKindVendor:
		return vendorLayout, true
	case entity.ProfileKindNone:
		return layout{}, false
	default:
		return layout{}, false
	}
}

// Fields returns the descriptor table of a kind. Unknown kinds have no fields.
func Fields(kind entity.ProfileKind) []FieldDescriptor {
	l, ok := layoutFor(kind)
	if !ok {
		return nil
	}

	return l.fields
}
