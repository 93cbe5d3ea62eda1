package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	domainerrors "jelpi/internal/domain/errors"

	"github.com/google/uuid"
)

// ProfileKind is the discriminator that selects one of the profile shapes.
type ProfileKind int

const (
	// ProfileKindNone means the owner has not chosen a profile type yet.
	ProfileKindNone ProfileKind = 0
	// ProfileKindMedical is an emergency medical profile.
	ProfileKindMedical ProfileKind = 1
	// ProfileKindPet is a pet identification profile.
	ProfileKindPet ProfileKind = 2
	// ProfileKindContact is a business card profile.
	ProfileKindContact ProfileKind = 3
	// ProfileKindVendor is a seller profile.
	ProfileKindVendor ProfileKind = 4
)

// AllProfileKinds lists the discriminator values including ProfileKindNone.
func AllProfileKinds() []ProfileKind {
	return []ProfileKind{ProfileKindNone, ProfileKindMedical, ProfileKindPet, ProfileKindContact, ProfileKindVendor}
}

// String returns a stable name for logs and error details.
func (k ProfileKind) String() string {
	switch k {
	case ProfileKindNone:
		return "none"
	case ProfileKindMedical:
		return "medical"
	case ProfileKindPet:
		return "pet"
	case ProfileKindContact:
		return "contact"
	case ProfileKindVendor:
		return "vendor"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// IsValid reports whether k selects a concrete profile shape.
func (k ProfileKind) IsValid() bool {
	switch k {
	case ProfileKindMedical, ProfileKindPet, ProfileKindContact, ProfileKindVendor:
		return true
	default:
		return false
	}
}

// InRange reports whether k is a known discriminator, ProfileKindNone included.
func (k ProfileKind) InRange() bool {
	return k == ProfileKindNone || k.IsValid()
}

// ProfilePayload is the closed set of profile shapes. Only this package can add members.
type ProfilePayload interface {
	// Kind returns the discriminator of the shape.
	Kind() ProfileKind
	// Normalize returns a copy with surrounding whitespace and blank list items removed.
	Normalize() ProfilePayload

	isProfilePayload()
}

// PetProfile identifies a pet and how to reach its owner.
type PetProfile struct {
	Name       string   `json:"nombre" validate:"required"`
	Species    string   `json:"especie" validate:"required"`
	Breed      string   `json:"raza" validate:"required"`
	Age        string   `json:"edad" validate:"required"`
	OwnerName  string   `json:"propietario" validate:"required"`
	OwnerPhone string   `json:"telefono" validate:"required,phone"`
	VetName    string   `json:"veterinario"`
	VetPhone   string   `json:"telefonoVeterinario" validate:"omitempty,phone"`
	Conditions []string `json:"condicionesMedicas"`
	Address    string   `json:"direccion"`
}

// MedicalProfile carries what a first responder needs.
type MedicalProfile struct {
	Name             string   `json:"nombre" validate:"required"`
	Age              string   `json:"edad" validate:"required"`
	EmergencyContact string   `json:"contactoEmergencia" validate:"required"`
	EmergencyPhone   string   `json:"telefonoEmergencia" validate:"required,phone"`
	BloodType        string   `json:"grupoSanguineo" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Conditions       []string `json:"condicionesMedicas"`
	Medications      []string `json:"medicamentos"`
	Allergies        []string `json:"alergias"`
	Address          string   `json:"direccion"`
}

// SocialHandles are optional social network accounts.
type SocialHandles struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// ContactProfile is a digital business card.
type ContactProfile struct {
	Name     string        `json:"nombre" validate:"required"`
	Company  string        `json:"empresa" validate:"required"`
	Phone    string        `json:"telefono" validate:"required,phone"`
	Email    string        `json:"email" validate:"required,email"`
	JobTitle string        `json:"cargo" validate:"required"`
	Website  string        `json:"sitioWeb"`
	Socials  SocialHandles `json:"redes"`
}

// VendorProfile describes a seller and the goods or services offered.
type VendorProfile struct {
	Name        string   `json:"nombre" validate:"required"`
	Company     string   `json:"empresa" validate:"required"`
	Phone       string   `json:"telefono" validate:"required,phone"`
	Email       string   `json:"email" validate:"required,email"`
	Products    []string `json:"productos"`
	Category    string   `json:"tipoVendedor" validate:"required"`
	ServiceArea string   `json:"zona" validate:"required"`
}

// Kind implements ProfilePayload.
func (PetProfile) Kind() ProfileKind { return ProfileKindPet }

// Kind implements ProfilePayload.
func (MedicalProfile) Kind() ProfileKind { return ProfileKindMedical }

// Kind implements ProfilePayload.
func (ContactProfile) Kind() ProfileKind { return ProfileKindContact }

// Kind implements ProfilePayload.
func (VendorProfile) Kind() ProfileKind { return ProfileKindVendor }

func (PetProfile) isProfilePayload()     {}
func (MedicalProfile) isProfilePayload() {}
func (ContactProfile) isProfilePayload() {}
func (VendorProfile) isProfilePayload()  {}

// Normalize implements ProfilePayload.
func (p PetProfile) Normalize() ProfilePayload {
	return PetProfile{
		Name:       strings.TrimSpace(p.Name),
		Species:    strings.TrimSpace(p.Species),
		Breed:      strings.TrimSpace(p.Breed),
		Age:        strings.TrimSpace(p.Age),
		OwnerName:  strings.TrimSpace(p.OwnerName),
		OwnerPhone: strings.TrimSpace(p.OwnerPhone),
		VetName:    strings.TrimSpace(p.VetName),
		VetPhone:   strings.TrimSpace(p.VetPhone),
		Conditions: compactList(p.Conditions),
		Address:    strings.TrimSpace(p.Address),
	}
}

// Normalize implements ProfilePayload.
func (p MedicalProfile) Normalize() ProfilePayload {
	return MedicalProfile{
		Name:             strings.TrimSpace(p.Name),
		Age:              strings.TrimSpace(p.Age),
		EmergencyContact: strings.TrimSpace(p.EmergencyContact),
		EmergencyPhone:   strings.TrimSpace(p.EmergencyPhone),
		BloodType:        strings.ToUpper(strings.TrimSpace(p.BloodType)),
		Conditions:       compactList(p.Conditions),
		Medications:      compactList(p.Medications),
		Allergies:        compactList(p.Allergies),
		Address:          strings.TrimSpace(p.Address),
	}
}

// Normalize implements ProfilePayload.
func (p ContactProfile) Normalize() ProfilePayload {
	return ContactProfile{
		Name:     strings.TrimSpace(p.Name),
		Company:  strings.TrimSpace(p.Company),
		Phone:    strings.TrimSpace(p.Phone),
		Email:    strings.TrimSpace(p.Email),
		JobTitle: strings.TrimSpace(p.JobTitle),
		Website:  strings.TrimSpace(p.Website),
		Socials: SocialHandles{
			LinkedIn:  strings.TrimSpace(p.Socials.LinkedIn),
			Twitter:   strings.TrimSpace(p.Socials.Twitter),
			Instagram: strings.TrimSpace(p.Socials.Instagram),
		},
	}
}

// Normalize implements ProfilePayload.
func (p VendorProfile) Normalize() ProfilePayload {
	return VendorProfile{
		Name:        strings.TrimSpace(p.Name),
		Company:     strings.TrimSpace(p.Company),
		Phone:       strings.TrimSpace(p.Phone),
		Email:       strings.TrimSpace(p.Email),
		Products:    compactList(p.Products),
		Category:    strings.TrimSpace(p.Category),
		ServiceArea: strings.TrimSpace(p.ServiceArea),
	}
}

// compactList trims every item and drops the blank ones. It never returns nil.
func compactList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// DecodeProfilePayload parses raw JSON into the shape selected by kind.
func DecodeProfilePayload(kind ProfileKind, raw []byte) (ProfilePayload, error) {
	switch kind {
	case ProfileKindPet:
		var p PetProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, domainerrors.ErrMalformedPayload.WithDetails(err.Error())
		}

		return p, nil
	case ProfileKindMedical:
		var p MedicalProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, domainerrors.ErrMalformedPayload.WithDetails(err.Error())
		}

		return p, nil
	case ProfileKindContact:
		var p ContactProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, domainerrors.ErrMalformedPayload.WithDetails(err.Error())
		}

		return p, nil
	case ProfileKindVendor:
		var p VendorProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, domainerrors.ErrMalformedPayload.WithDetails(err.Error())
		}

		return p, nil
	default:
		return nil, domainerrors.ErrInvariantViolation.WithDetails(
			fmt.Sprintf("no profile shape for discriminator %s", kind))
	}
}

// ProfileVariant is the profile attached to a device. Its kind is fixed by the
// payload it was created with.
type ProfileVariant struct {
	ID        uuid.UUID
	DeviceID  string
	CreatedAt time.Time
	UpdatedAt time.Time

	payload ProfilePayload
}

// NewProfileVariant creates a variant around a payload.
func NewProfileVariant(id uuid.UUID, deviceID string, payload ProfilePayload, now time.Time) (*ProfileVariant, error) {
	if payload == nil {
		return nil, domainerrors.ErrInvariantViolation.WithDetails("profile variant requires a payload")
	}

	return &ProfileVariant{
		ID:        id,
		DeviceID:  deviceID,
		CreatedAt: now,
		UpdatedAt: now,
		payload:   payload,
	}, nil
}

// Kind returns the discriminator of the stored payload.
func (v *ProfileVariant) Kind() ProfileKind {
	if v == nil || v.payload == nil {
		return ProfileKindNone
	}

	return v.payload.Kind()
}

// Payload returns the stored shape.
func (v *ProfileVariant) Payload() ProfilePayload {
	return v.payload
}

// ReplacePayload edits the variant in place. The new payload must have the same kind.
func (v *ProfileVariant) ReplacePayload(payload ProfilePayload, now time.Time) error {
	if payload == nil || payload.Kind() != v.Kind() {
		next := ProfileKindNone
		if payload != nil {
			next = payload.Kind()
		}

		return domainerrors.ErrInvariantViolation.WithDetails(
			fmt.Sprintf("profile %s is %s and cannot become %s", v.ID, v.Kind(), next))
	}

	v.payload = payload
	v.UpdatedAt = now

	return nil
}

type profileVariantJSON struct {
	ID        uuid.UUID      `json:"id"`
	DeviceID  string         `json:"device_id"`
	Kind      ProfileKind    `json:"kind"`
	Data      ProfilePayload `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// MarshalJSON exposes the variant with its kind next to the payload.
func (v *ProfileVariant) MarshalJSON() ([]byte, error) {
	return json.Marshal(profileVariantJSON{
		ID:        v.ID,
		DeviceID:  v.DeviceID,
		Kind:      v.Kind(),
		Data:      v.payload,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	})
}
