package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"jelpi/config"
	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/profile"
	"jelpi/internal/domain/repository"
	"jelpi/internal/domain/service"
	"jelpi/internal/errors"
	mockRepo "jelpi/internal/mocks/repository"
	mockSvc "jelpi/internal/mocks/service"
	"jelpi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service     usecase.DeviceUsecase
	txManager   *mockRepo.MockTransactionManager
	deviceRepo  *mockRepo.MockDeviceRepository
	profileRepo *mockRepo.MockProfileRepository
	guard       *mockSvc.MockInFlightGuard
	hasher      *mockSvc.MockSecretHasher
	qrCode      *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	fx := deviceServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		guard:       mockSvc.NewMockInFlightGuard(t),
		hasher:      mockSvc.NewMockSecretHasher(t),
		qrCode:      mockSvc.NewMockQRCodeService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	svc := NewDeviceService(DeviceServiceParams{
		TxManager:     fx.txManager,
		Guard:         fx.guard,
		Hasher:        fx.hasher,
		QRCodeService: fx.qrCode,
		Publisher:     fx.publisher,
		Config: &config.Config{
			PublicProfile: &config.PublicProfileConfig{BaseURL: "https://jelpi.com.mx/p/"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	svc.(*deviceService).now = func() time.Time { return testNow }
	fx.service = svc

	return fx
}

// expectTx runs the transaction callback against the fixture repositories and
// returns whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, deviceRepo repository.DeviceRepository, profileRepo repository.ProfileRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().DeviceRepo().Return(deviceRepo).Maybe()
			factory.EXPECT().ProfileRepo().Return(profileRepo).Maybe()

			return fn(factory)
		}).
		Once()
}

func (fx deviceServiceFixtures) expectTx(t *testing.T) {
	t.Helper()
	expectTx(t, fx.txManager, fx.deviceRepo, fx.profileRepo)
}

func (fx deviceServiceFixtures) expectGuard(key string) {
	fx.guard.EXPECT().Acquire(mock.Anything, key).Return(func() {}, nil).Once()
}

func inactiveDevice(ownerID uuid.UUID) *entity.Device {
	return &entity.Device{
		ID:                 "ACT-123456",
		Class:              entity.DeviceClassPin,
		Status:             entity.DeviceStatusInactive,
		OwnerID:            ownerID,
		ActivationCodeHash: "hashed-code",
		CreatedAt:          testNow.Add(-time.Hour),
		UpdatedAt:          testNow.Add(-time.Hour),
	}
}

func activatedDevice(ownerID uuid.UUID, kind entity.ProfileKind) *entity.Device {
	d := inactiveDevice(ownerID)
	activatedAt := testNow.Add(-30 * time.Minute)
	d.Status = entity.DeviceStatusActivated
	d.ActivatedAt = &activatedAt
	d.PublicURL = "https://jelpi.com.mx/p/ACT-123456"
	d.ProfileType = kind

	return d
}

func linkedPetDevice(t *testing.T, ownerID uuid.UUID) (*entity.Device, *entity.ProfileVariant) {
	t.Helper()

	d := activatedDevice(ownerID, entity.ProfileKindPet)
	variant, err := entity.NewProfileVariant(uuid.New(), d.ID, maxThePet(), testNow.Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, d.Link(variant.ID, entity.ProfileKindPet, testNow.Add(-time.Minute)))

	return d, variant
}

func maxThePet() entity.PetProfile {
	return entity.PetProfile{
		Name:       "Max",
		Species:    "Perro",
		Breed:      "Golden Retriever",
		Age:        "5 años",
		OwnerName:  "Juan Pérez",
		OwnerPhone: "555-123-4567",
		Conditions: []string{},
	}
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	return raw
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.hasher.EXPECT().Hash("4821").Return("hashed-code", nil)
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().
		CreateDevice(mock.Anything, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, d *entity.Device) {
			assert.Equal(t, "JLP001", d.ID)
			assert.Equal(t, entity.DeviceStatusInactive, d.Status)
			assert.Equal(t, entity.ProfileKindNone, d.ProfileType)
			assert.Equal(t, "hashed-code", d.ActivationCodeHash)
			assert.Nil(t, d.ActivatedAt)
		}).
		Return(nil)

	view, err := fx.service.RegisterDevice(ctx, ownerID, &usecase.RegisterDeviceInput{
		ID:             " jlp001 ",
		Class:          entity.DeviceClassBracelet,
		ActivationCode: "4821",
	})

	require.NoError(t, err)
	assert.Equal(t, "Pulsera Jelpi", view.Labels.DisplayName)
	assert.Equal(t, "Inactivo", view.Labels.Status.Label)
	assert.Equal(t, profile.StateSelectionRequired, view.Resolution.State)
	assert.Nil(t, view.Card)
}

func TestDeviceService_RegisterDevice_Duplicate(t *testing.T) {
	fx := createTestDeviceService(t)

	fx.hasher.EXPECT().Hash("4821").Return("hashed-code", nil)
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().
		CreateDevice(mock.Anything, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.RegisterDeviceInput{
		ID:             "JLP001",
		Class:          entity.DeviceClassPin,
		ActivationCode: "4821",
	})

	require.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyExists)
}

func TestDeviceService_RegisterDevice_InvalidClass(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.RegisterDeviceInput{
		ID:             "JLP001",
		Class:          entity.DeviceClass("watch"),
		ActivationCode: "4821",
	})

	verr, ok := errors.AsTarget[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.True(t, verr.HasField("class"))
}

func TestDeviceService_RegisterDevice_RejectsUnusableID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "blank", id: "   "},
		{name: "path separator", id: "JLP/001"},
		{name: "inner space", id: "JLP 001"},
		{name: "too long", id: strings.Repeat("A", 33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.RegisterDeviceInput{
				ID:             tt.id,
				Class:          entity.DeviceClassPin,
				ActivationCode: "4821",
			})

			verr, ok := errors.AsTarget[*domainerrors.ValidationError](err)
			require.True(t, ok)
			assert.True(t, verr.HasField("id"))
			fx.deviceRepo.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything)
		})
	}
}

func TestDeviceService_ActivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	device := inactiveDevice(ownerID)

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
	fx.hasher.EXPECT().Check("4821", "hashed-code").Return(true)
	fx.deviceRepo.EXPECT().
		UpdateDevice(mock.Anything, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, d *entity.Device) {
			assert.Equal(t, entity.DeviceStatusActivated, d.Status)
			require.NotNil(t, d.ActivatedAt)
			assert.Equal(t, testNow, *d.ActivatedAt)
			assert.Equal(t, "https://jelpi.com.mx/p/ACT-123456", d.PublicURL)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishDeviceEvent(mock.Anything, mock.MatchedBy(func(e *service.DeviceEvent) bool {
			return e.Type == service.DeviceEventActivated && e.DeviceID == "ACT-123456" && e.OwnerID == ownerID.String()
		})).
		Return(nil)

	view, err := fx.service.ActivateDevice(ctx, ownerID, "act-123456", "4821")

	require.NoError(t, err)
	assert.Equal(t, "Activado", view.Labels.Status.Label)
	assert.Equal(t, profile.StateSelectionRequired, view.Resolution.State)
}

func TestDeviceService_ActivateDevice_PublishFailureIsNotSurfaced(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(inactiveDevice(ownerID), nil)
	fx.hasher.EXPECT().Check("4821", "hashed-code").Return(true)
	fx.deviceRepo.EXPECT().UpdateDevice(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishDeviceEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.ActivateDevice(context.Background(), ownerID, "ACT-123456", "4821")
	require.NoError(t, err)
}

func TestDeviceService_ActivateDevice_Errors(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx deviceServiceFixtures)
		ownerID uuid.UUID
		wantErr error
	}{
		{
			name: "unknown device",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(nil, repository.ErrDeviceNotFound)
			},
			ownerID: ownerID,
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "another owner",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(inactiveDevice(uuid.New()), nil)
			},
			ownerID: ownerID,
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "wrong code",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(inactiveDevice(ownerID), nil)
				fx.hasher.EXPECT().Check("4821", "hashed-code").Return(false)
			},
			ownerID: ownerID,
			wantErr: domainerrors.ErrInvalidActivationCode,
		},
		{
			name: "already activated",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(activatedDevice(ownerID, entity.ProfileKindNone), nil)
				fx.hasher.EXPECT().Check("4821", "hashed-code").Return(true)
			},
			ownerID: ownerID,
			wantErr: domainerrors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			fx.expectGuard("ACT-123456")
			fx.expectTx(t)
			tt.setup(fx)

			_, err := fx.service.ActivateDevice(context.Background(), tt.ownerID, "ACT-123456", "4821")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeviceService_ActivateDevice_InFlight(t *testing.T) {
	fx := createTestDeviceService(t)

	fx.guard.EXPECT().
		Acquire(mock.Anything, "ACT-123456").
		Return(nil, domainerrors.ErrOperationInFlight)

	_, err := fx.service.ActivateDevice(context.Background(), uuid.New(), "ACT-123456", "4821")
	require.ErrorIs(t, err, domainerrors.ErrOperationInFlight)
}

func TestDeviceService_OperationReleasesGuard(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()

	released := false
	fx.guard.EXPECT().
		Acquire(mock.Anything, "ACT-123456").
		Return(func() { released = true }, nil)
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(inactiveDevice(ownerID), nil)
	fx.hasher.EXPECT().Check("0000", "hashed-code").Return(false)

	_, err := fx.service.ActivateDevice(context.Background(), ownerID, "ACT-123456", "0000")
	require.Error(t, err)
	assert.True(t, released)
}

func TestDeviceService_SelectProfileType(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()
	device := activatedDevice(ownerID, entity.ProfileKindNone)

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
	fx.deviceRepo.EXPECT().
		UpdateDevice(mock.Anything, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, d *entity.Device) {
			assert.Equal(t, entity.ProfileKindPet, d.ProfileType)
		}).
		Return(nil)

	view, err := fx.service.SelectProfileType(context.Background(), ownerID, "ACT-123456", entity.ProfileKindPet)

	require.NoError(t, err)
	assert.Equal(t, profile.StateCreationRequired, view.Resolution.State)
	assert.Equal(t, entity.ProfileKindPet, view.Resolution.Kind)
	assert.Equal(t, "Mascota", view.Labels.ProfileType.Label)
}

func TestDeviceService_SelectProfileType_SameKindIsNoop(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(activatedDevice(ownerID, entity.ProfileKindPet), nil)

	view, err := fx.service.SelectProfileType(context.Background(), ownerID, "ACT-123456", entity.ProfileKindPet)

	require.NoError(t, err)
	assert.Equal(t, profile.StateCreationRequired, view.Resolution.State)
}

func TestDeviceService_SelectProfileType_SwitchRejected(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(activatedDevice(ownerID, entity.ProfileKindPet), nil)

	_, err := fx.service.SelectProfileType(context.Background(), ownerID, "ACT-123456", entity.ProfileKindMedical)
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestDeviceService_SaveProfile_PetCreatesAndLinks(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	device := activatedDevice(ownerID, entity.ProfileKindPet)

	var created *entity.ProfileVariant

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
	fx.profileRepo.EXPECT().
		CreateProfile(mock.Anything, mock.AnythingOfType("*entity.ProfileVariant")).
		Run(func(_ context.Context, v *entity.ProfileVariant) { created = v }).
		Return(nil)
	fx.deviceRepo.EXPECT().
		UpdateDevice(mock.Anything, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, d *entity.Device) {
			assert.Equal(t, entity.DeviceStatusLinked, d.Status)
			require.NotNil(t, d.ProfileID)
			assert.Equal(t, created.ID, *d.ProfileID)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishDeviceEvent(mock.Anything, mock.MatchedBy(func(e *service.DeviceEvent) bool {
			return e.Type == service.DeviceEventLinked && e.ProfileKind == entity.ProfileKindPet
		})).
		Return(nil)

	view, err := fx.service.SaveProfile(ctx, ownerID, "ACT-123456", &usecase.ProfileSubmission{
		Data: mustJSON(t, maxThePet()),
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.ProfileKindPet, created.Kind())
	assert.Equal(t, "ACT-123456", created.DeviceID)

	assert.Equal(t, "Vinculado", view.Labels.Status.Label)
	assert.Equal(t, profile.StateDisplay, view.Resolution.State)
	require.NotNil(t, view.Card)
	assert.Nil(t, view.Card.Section("Veterinario"))
	assert.Nil(t, view.Card.Section("Condiciones médicas"))
	assert.Equal(t, "tel:5551234567", view.Card.Row("telefono").Action.Href)
}

func TestDeviceService_SaveProfile_MedicalMissingBloodType(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()
	device := activatedDevice(ownerID, entity.ProfileKindMedical)

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)

	_, err := fx.service.SaveProfile(context.Background(), ownerID, "ACT-123456", &usecase.ProfileSubmission{
		Kind: entity.ProfileKindMedical,
		Data: json.RawMessage(`{
			"nombre": "Ana López",
			"edad": "34 años",
			"contactoEmergencia": "Luis López",
			"telefonoEmergencia": "+52 55 1234 5678",
			"condicionesMedicas": [],
			"medicamentos": [],
			"alergias": []
		}`),
	})

	verr, ok := errors.AsTarget[*domainerrors.ValidationError](err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.True(t, verr.HasField("grupoSanguineo"))

	// No profile was written and the device is still activated.
	assert.Equal(t, entity.DeviceStatusActivated, device.Status)
	assert.Nil(t, device.ProfileID)
	fx.profileRepo.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
	fx.deviceRepo.AssertNotCalled(t, "UpdateDevice", mock.Anything, mock.Anything)
}

func TestDeviceService_SaveProfile_EditsInPlace(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()
	device, variant := linkedPetDevice(t, ownerID)

	edited := maxThePet()
	edited.VetName = "Dra. Gómez"
	edited.VetPhone = "55 8765 4321"

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
	fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, variant.ID).Return(variant, nil)
	fx.profileRepo.EXPECT().
		UpdateProfile(mock.Anything, variant).
		Run(func(_ context.Context, v *entity.ProfileVariant) {
			assert.Equal(t, "Dra. Gómez", v.Payload().(entity.PetProfile).VetName)
			assert.Equal(t, testNow, v.UpdatedAt)
		}).
		Return(nil)

	view, err := fx.service.SaveProfile(context.Background(), ownerID, "ACT-123456", &usecase.ProfileSubmission{
		Kind: entity.ProfileKindPet,
		Data: mustJSON(t, edited),
	})

	require.NoError(t, err)
	require.NotNil(t, view.Card)
	vet := view.Card.Section("Veterinario")
	require.NotNil(t, vet)
	assert.Len(t, vet.Rows, 2)
}

func TestDeviceService_SaveProfile_Rejections(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name       string
		device     *entity.Device
		submission *usecase.ProfileSubmission
		wantErr    error
	}{
		{
			name:       "inactive device",
			device:     inactiveDevice(ownerID),
			submission: &usecase.ProfileSubmission{Data: json.RawMessage(`{}`)},
			wantErr:    domainerrors.ErrDeviceNotActivated,
		},
		{
			name:       "no discriminator selected",
			device:     activatedDevice(ownerID, entity.ProfileKindNone),
			submission: &usecase.ProfileSubmission{Data: json.RawMessage(`{}`)},
			wantErr:    domainerrors.ErrInvalidTransition,
		},
		{
			name:       "kind differs from discriminator",
			device:     activatedDevice(ownerID, entity.ProfileKindPet),
			submission: &usecase.ProfileSubmission{Kind: entity.ProfileKindVendor, Data: json.RawMessage(`{}`)},
			wantErr:    domainerrors.ErrInvariantViolation,
		},
		{
			name:       "malformed json",
			device:     activatedDevice(ownerID, entity.ProfileKindPet),
			submission: &usecase.ProfileSubmission{Data: json.RawMessage(`{"nombre": 5}`)},
			wantErr:    domainerrors.ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			fx.expectGuard("ACT-123456")
			fx.expectTx(t)
			fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(tt.device, nil)

			_, err := fx.service.SaveProfile(context.Background(), ownerID, "ACT-123456", tt.submission)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeviceService_SaveProfile_DanglingProfileReference(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()
	device, variant := linkedPetDevice(t, ownerID)

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
	fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, variant.ID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.SaveProfile(context.Background(), ownerID, "ACT-123456", &usecase.ProfileSubmission{
		Data: mustJSON(t, maxThePet()),
	})
	require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}

func TestDeviceService_RenameDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(activatedDevice(ownerID, entity.ProfileKindNone), nil)
	fx.deviceRepo.EXPECT().
		UpdateDevice(mock.Anything, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, d *entity.Device) {
			assert.Equal(t, "Collar de Max", d.Name)
		}).
		Return(nil)

	view, err := fx.service.RenameDevice(context.Background(), ownerID, "ACT-123456", "  Collar de Max ")

	require.NoError(t, err)
	assert.Equal(t, "Collar de Max", view.Labels.DisplayName)
}

func TestDeviceService_RenameDevice_TooLong(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()

	fx.expectGuard("ACT-123456")
	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(activatedDevice(ownerID, entity.ProfileKindNone), nil)

	long := make([]rune, entity.MaxDeviceNameLength+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := fx.service.RenameDevice(context.Background(), ownerID, "ACT-123456", string(long))

	verr, ok := errors.AsTarget[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.True(t, verr.HasField("name"))
}

func TestDeviceService_SetDeviceStatus(t *testing.T) {
	ownerID := uuid.New()

	t.Run("activation needs the code", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.expectGuard("ACT-123456")
		fx.expectTx(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(inactiveDevice(ownerID), nil)

		_, err := fx.service.SetDeviceStatus(context.Background(), ownerID, "ACT-123456", entity.DeviceStatusActivated)
		require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("skipping a step", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.expectGuard("ACT-123456")
		fx.expectTx(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(inactiveDevice(ownerID), nil)

		_, err := fx.service.SetDeviceStatus(context.Background(), ownerID, "ACT-123456", entity.DeviceStatusLinked)
		require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("moving backwards", func(t *testing.T) {
		fx := createTestDeviceService(t)
		device, _ := linkedPetDevice(t, ownerID)
		fx.expectGuard("ACT-123456")
		fx.expectTx(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)

		_, err := fx.service.SetDeviceStatus(context.Background(), ownerID, "ACT-123456", entity.DeviceStatusInactive)
		require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("linking without a stored profile", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.expectGuard("ACT-123456")
		fx.expectTx(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(activatedDevice(ownerID, entity.ProfileKindPet), nil)

		_, err := fx.service.SetDeviceStatus(context.Background(), ownerID, "ACT-123456", entity.DeviceStatusLinked)
		require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("linking with a stored profile", func(t *testing.T) {
		fx := createTestDeviceService(t)
		device := activatedDevice(ownerID, entity.ProfileKindPet)
		variant, err := entity.NewProfileVariant(uuid.New(), device.ID, maxThePet(), testNow)
		require.NoError(t, err)
		device.ProfileID = &variant.ID

		fx.expectGuard("ACT-123456")
		fx.expectTx(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
		fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, variant.ID).Return(variant, nil)
		fx.deviceRepo.EXPECT().UpdateDevice(mock.Anything, device).Return(nil)

		view, err := fx.service.SetDeviceStatus(context.Background(), ownerID, "ACT-123456", entity.DeviceStatusLinked)
		require.NoError(t, err)
		assert.Equal(t, entity.DeviceStatusLinked, view.Device.Status)
		assert.Equal(t, profile.StateDisplay, view.Resolution.State)
	})
}

func TestDeviceService_GetDevice_Linked(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()
	device, variant := linkedPetDevice(t, ownerID)

	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
	fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, variant.ID).Return(variant, nil)

	view, err := fx.service.GetDevice(context.Background(), ownerID, "ACT-123456")

	require.NoError(t, err)
	assert.Equal(t, profile.StateDisplay, view.Resolution.State)
	require.NotNil(t, view.Card)
	assert.Equal(t, "Max", view.Card.Title)
}

func TestDeviceService_GetDevice_CorruptDiscriminator(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()
	device := activatedDevice(ownerID, entity.ProfileKind(7))

	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)

	_, err := fx.service.GetDevice(context.Background(), ownerID, "ACT-123456")
	require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ownerID := uuid.New()
	linked, variant := linkedPetDevice(t, ownerID)
	fresh := inactiveDevice(ownerID)
	fresh.ID = "JLP002"

	fx.expectTx(t)
	fx.deviceRepo.EXPECT().FindDevicesByOwner(mock.Anything, ownerID).Return([]*entity.Device{fresh, linked}, nil)
	fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, variant.ID).Return(variant, nil)

	views, err := fx.service.ListDevices(context.Background(), ownerID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, profile.StateSelectionRequired, views[0].Resolution.State)
	assert.Equal(t, profile.StateDisplay, views[1].Resolution.State)
}

func TestDeviceService_GetDeviceQR(t *testing.T) {
	ownerID := uuid.New()

	t.Run("activated device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.expectTx(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(activatedDevice(ownerID, entity.ProfileKindNone), nil)
		fx.qrCode.EXPECT().GenerateURLQR("https://jelpi.com.mx/p/ACT-123456").Return([]byte("png"), nil)

		png, err := fx.service.GetDeviceQR(context.Background(), ownerID, "ACT-123456")
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("inactive device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.expectTx(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(inactiveDevice(ownerID), nil)

		_, err := fx.service.GetDeviceQR(context.Background(), ownerID, "ACT-123456")
		require.ErrorIs(t, err, domainerrors.ErrDeviceNotActivated)
	})
}

func TestDeviceService_GetProfile(t *testing.T) {
	ownerID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		device, variant := linkedPetDevice(t, ownerID)
		fx.expectTx(t)
		fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, variant.ID).Return(variant, nil)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)

		found, err := fx.service.GetProfile(context.Background(), ownerID, variant.ID)
		require.NoError(t, err)
		assert.Same(t, variant, found)
	})

	t.Run("another owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		device, variant := linkedPetDevice(t, uuid.New())
		fx.expectTx(t)
		fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, variant.ID).Return(variant, nil)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)

		_, err := fx.service.GetProfile(context.Background(), ownerID, variant.ID)
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestDeviceService(t)
		id := uuid.New()
		fx.expectTx(t)
		fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, id).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.GetProfile(context.Background(), ownerID, id)
		require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})
}
