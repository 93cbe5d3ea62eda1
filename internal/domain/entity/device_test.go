package entity

import (
	"strings"
	"testing"
	"time"

	domainerrors "jelpi/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newInactiveDevice() *Device {
	return &Device{
		ID:        "ACT-123456",
		Class:     DeviceClassPin,
		Status:    DeviceStatusInactive,
		OwnerID:   uuid.New(),
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func TestDeviceStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from DeviceStatus
		to   DeviceStatus
		want bool
	}{
		{DeviceStatusInactive, DeviceStatusActivated, true},
		{DeviceStatusActivated, DeviceStatusLinked, true},
		{DeviceStatusInactive, DeviceStatusLinked, false},
		{DeviceStatusActivated, DeviceStatusInactive, false},
		{DeviceStatusLinked, DeviceStatusActivated, false},
		{DeviceStatusLinked, DeviceStatusInactive, false},
		{DeviceStatusLinked, DeviceStatusLinked, false},
		{DeviceStatusInactive, DeviceStatus("lost"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDevice_Activate(t *testing.T) {
	d := newInactiveDevice()

	err := d.Activate(testNow, "https://jelpi.com.mx/p/ACT-123456")
	require.NoError(t, err)
	assert.Equal(t, DeviceStatusActivated, d.Status)
	require.NotNil(t, d.ActivatedAt)
	assert.Equal(t, testNow, *d.ActivatedAt)
	assert.Equal(t, "https://jelpi.com.mx/p/ACT-123456", d.PublicURL)
	assert.NoError(t, d.CheckInvariants())

	err = d.Activate(testNow.Add(time.Hour), "other")
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Equal(t, testNow, *d.ActivatedAt)
}

func TestDevice_SelectProfileType(t *testing.T) {
	t.Run("inactive device", func(t *testing.T) {
		d := newInactiveDevice()
		err := d.SelectProfileType(ProfileKindPet, testNow)
		require.ErrorIs(t, err, domainerrors.ErrDeviceNotActivated)
		assert.Equal(t, ProfileKindNone, d.ProfileType)
	})

	t.Run("first choice and idempotent repeat", func(t *testing.T) {
		d := newInactiveDevice()
		require.NoError(t, d.Activate(testNow, "url"))

		require.NoError(t, d.SelectProfileType(ProfileKindPet, testNow))
		require.NoError(t, d.SelectProfileType(ProfileKindPet, testNow))
		assert.Equal(t, ProfileKindPet, d.ProfileType)
	})

	t.Run("switching kind is rejected", func(t *testing.T) {
		d := newInactiveDevice()
		require.NoError(t, d.Activate(testNow, "url"))
		require.NoError(t, d.SelectProfileType(ProfileKindPet, testNow))

		err := d.SelectProfileType(ProfileKindMedical, testNow)
		require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
		assert.Equal(t, ProfileKindPet, d.ProfileType)
	})

	t.Run("unsetting is rejected", func(t *testing.T) {
		d := newInactiveDevice()
		require.NoError(t, d.Activate(testNow, "url"))
		require.NoError(t, d.SelectProfileType(ProfileKindVendor, testNow))

		err := d.SelectProfileType(ProfileKindNone, testNow)
		require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
		assert.Equal(t, ProfileKindVendor, d.ProfileType)
	})

	t.Run("out of range kind", func(t *testing.T) {
		d := newInactiveDevice()
		require.NoError(t, d.Activate(testNow, "url"))
		require.ErrorIs(t, d.SelectProfileType(ProfileKind(9), testNow), domainerrors.ErrInvalidTransition)
	})
}

func TestDevice_Link(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := newInactiveDevice()
		require.NoError(t, d.Activate(testNow, "url"))
		require.NoError(t, d.SelectProfileType(ProfileKindPet, testNow))

		profileID := uuid.New()
		require.NoError(t, d.Link(profileID, ProfileKindPet, testNow))
		assert.Equal(t, DeviceStatusLinked, d.Status)
		require.NotNil(t, d.ProfileID)
		assert.Equal(t, profileID, *d.ProfileID)
		assert.NoError(t, d.CheckInvariants())
	})

	t.Run("inactive device cannot link", func(t *testing.T) {
		d := newInactiveDevice()
		err := d.Link(uuid.New(), ProfileKindPet, testNow)
		require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
		assert.Equal(t, DeviceStatusInactive, d.Status)
	})

	t.Run("kind mismatch", func(t *testing.T) {
		d := newInactiveDevice()
		require.NoError(t, d.Activate(testNow, "url"))
		require.NoError(t, d.SelectProfileType(ProfileKindPet, testNow))

		err := d.Link(uuid.New(), ProfileKindMedical, testNow)
		require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
		assert.Equal(t, DeviceStatusActivated, d.Status)
		assert.Nil(t, d.ProfileID)
	})
}

func TestDevice_Rename(t *testing.T) {
	d := newInactiveDevice()
	assert.Equal(t, "Pin Jelpi", d.DisplayName())

	require.NoError(t, d.Rename("  Collar de Max  ", testNow))
	assert.Equal(t, "Collar de Max", d.DisplayName())

	require.NoError(t, d.Rename("", testNow))
	assert.Equal(t, "Pin Jelpi", d.DisplayName())

	err := d.Rename(strings.Repeat("ñ", MaxDeviceNameLength+1), testNow)
	require.Error(t, err)

	verr, ok := err.(*domainerrors.ValidationError)
	require.True(t, ok)
	assert.True(t, verr.HasField("name"))

	require.NoError(t, d.Rename(strings.Repeat("ñ", MaxDeviceNameLength), testNow))
}

func TestDevice_CheckInvariants(t *testing.T) {
	activated := newInactiveDevice()
	activated.Status = DeviceStatusActivated
	require.ErrorIs(t, activated.CheckInvariants(), domainerrors.ErrInvariantViolation)

	linked := newInactiveDevice()
	linked.Status = DeviceStatusLinked
	linked.ActivatedAt = &testNow
	linked.ProfileType = ProfileKindPet
	require.ErrorIs(t, linked.CheckInvariants(), domainerrors.ErrInvariantViolation)

	dangling := newInactiveDevice()
	id := uuid.New()
	dangling.ProfileID = &id
	require.ErrorIs(t, dangling.CheckInvariants(), domainerrors.ErrInvariantViolation)

	assert.NoError(t, newInactiveDevice().CheckInvariants())
}

func TestDeviceClass_DefaultName(t *testing.T) {
	for _, class := range AllDeviceClasses() {
		assert.True(t, class.IsValid())
		assert.NotEqual(t, "Dispositivo Jelpi", class.DefaultName(), class)
	}

	assert.False(t, DeviceClass("watch").IsValid())
	assert.Equal(t, "Dispositivo Jelpi", DeviceClass("watch").DefaultName())
}
