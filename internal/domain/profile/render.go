package profile

import (
	"strings"

	"jelpi/internal/domain/display"
	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
)

// MissingValue is shown for a required field that is blank.
const MissingValue = "—"

// ActionKind is what the client does when a row is tapped.
type ActionKind string

const (
	// ActionCall dials the row's phone number through a tel: href.
	ActionCall ActionKind = "call"
	// ActionMail composes an email through a mailto: href.
	ActionMail ActionKind = "mail"
	// ActionOpen opens a website or social profile.
	ActionOpen ActionKind = "open"
)

// Action is a tap target on a row.
type Action struct {
	Kind ActionKind `json:"kind"`
	Href string     `json:"href"`
}

// Row is one labelled value on the card.
type Row struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Badge  bool    `json:"badge,omitempty"`
	Action *Action `json:"action,omitempty"`
	// Copy is what the client puts on the clipboard. Empty when the row has no action.
	Copy string `json:"copy,omitempty"`
}

// Section groups rows or, for list fields, chips under a heading.
type Section struct {
	Title string   `json:"title"`
	Rows  []Row    `json:"rows,omitempty"`
	Chips []string `json:"chips,omitempty"`
}

// Card is the rendered public view of a profile.
type Card struct {
	Kind      entity.ProfileKind `json:"kind"`
	KindLabel string             `json:"kind_label"`
	Style     string             `json:"style"`
	Title     string             `json:"title"`
	Subtitle  string             `json:"subtitle,omitempty"`
	Sections  []Section          `json:"sections"`
}

// Section returns the section with the given title, or nil.
func (c *Card) Section(title string) *Section {
	for i := range c.Sections {
		if c.Sections[i].Title == title {
			return &c.Sections[i]
		}
	}

	return nil
}

// Row returns the row with the given key from any section, or nil.
func (c *Card) Row(key string) *Row {
	for i := range c.Sections {
		for j := range c.Sections[i].Rows {
			if c.Sections[i].Rows[j].Key == key {
				return &c.Sections[i].Rows[j]
			}
		}
	}

	return nil
}

// Render builds the card of a stored variant.
func Render(v *entity.ProfileVariant) (Card, error) {
	if v == nil {
		return RenderPayload(nil)
	}

	return RenderPayload(v.Payload())
}

// RenderPayload walks the descriptor table of the payload's kind and builds the card.
// Empty list fields and blank optional fields are left out, and a section with
// nothing left in it is dropped.
func RenderPayload(p entity.ProfilePayload) (Card, error) {
	if p == nil {
		return Card{}, errNoPayload()
	}

	l, ok := layoutFor(p.Kind())
	if !ok {
		return Card{}, errNoPayload()
	}

	badge := display.ProfileType(p.Kind())
	card := Card{
		Kind:      p.Kind(),
		KindLabel: badge.Label,
		Style:     badge.Style,
		Title:     title(p),
		Sections:  make([]Section, 0, len(l.fields)),
	}
	if l.subtitle != nil {
		card.Subtitle = l.subtitle(p)
	}

	index := make(map[string]int)
	for _, f := range l.fields {
		values := f.Values(p)

		if f.Type == FieldList {
			if len(values) == 0 {
				continue
			}
			card.Sections = append(card.Sections, Section{Title: f.Label, Chips: values})

			continue
		}

		if len(values) == 0 && f.Optional {
			continue
		}

		row := buildRow(f, values)

		pos, seen := index[f.Section]
		if !seen {
			card.Sections = append(card.Sections, Section{Title: f.Section})
			pos = len(card.Sections) - 1
			index[f.Section] = pos
		}
		card.Sections[pos].Rows = append(card.Sections[pos].Rows, row)
	}

	return card, nil
}

func buildRow(f FieldDescriptor, values []string) Row {
	row := Row{
		Key:   f.Key,
		Label: f.Label,
		Value: MissingValue,
		Badge: f.Type == FieldBadge,
	}
	if len(values) == 0 {
		return row
	}

	row.Value = values[0]
	if action := actionFor(f, row.Value); action != nil {
		row.Action = action
		row.Copy = row.Value
	}

	return row
}

func actionFor(f FieldDescriptor, value string) *Action {
	switch f.Type {
	case FieldPhone:
		return &Action{Kind: ActionCall, Href: "tel:" + dialable(value)}
	case FieldEmail:
		return &Action{Kind: ActionMail, Href: "mailto:" + value}
	case FieldLink:
		return &Action{Kind: ActionOpen, Href: linkHref(f.Network, value)}
	case FieldText, FieldBadge, FieldList:
		return nil
	default:
		return nil
	}
}

// dialable keeps the digits and a leading plus sign.
func dialable(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func linkHref(network, value string) string {
	if hasScheme(value) {
		return value
	}

	handle := strings.TrimPrefix(value, "@")
	switch network {
	case NetworkLinkedIn:
		return "https://www.linkedin.com/in/" + handle
	case NetworkTwitter:
		return "https://twitter.com/" + handle
	case NetworkInstagram:
		return "https://www.instagram.com/" + handle
	default:
		return "https://" + value
	}
}

func hasScheme(value string) bool {
	lower := strings.ToLower(value)

	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func title(p entity.ProfilePayload) string {
	var name string
	switch typed := p.(type) {
	case entity.PetProfile:
		name = typed.Name
	case entity.MedicalProfile:
		name = typed.Name
	case entity.ContactProfile:
		name = typed.Name
	case entity.VendorProfile:
		name = typed.Name
	}

	if name = strings.TrimSpace(name); name == "" {
		return MissingValue
	}

	return name
}

func errNoPayload() error {
	return domainerrors.ErrInvariantViolation.WithDetails("no profile payload to render")
}
