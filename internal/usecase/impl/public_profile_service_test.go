package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/repository"
	"jelpi/internal/domain/service"
	mockRepo "jelpi/internal/mocks/repository"
	mockSvc "jelpi/internal/mocks/service"
	"jelpi/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type publicProfileFixtures struct {
	service     usecase.PublicProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	deviceRepo  *mockRepo.MockDeviceRepository
	profileRepo *mockRepo.MockProfileRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestPublicProfileService(t *testing.T) publicProfileFixtures {
	fx := publicProfileFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	svc := NewPublicProfileService(PublicProfileServiceParams{
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	svc.(*publicProfileService).now = func() time.Time { return testNow }
	fx.service = svc

	return fx
}

func TestPublicProfileService_ViewProfile_Pet(t *testing.T) {
	fx := createTestPublicProfileService(t)
	ownerID := uuid.New()
	device, variant := linkedPetDevice(t, ownerID)
	location := orb.Point{-99.1332, 19.4326}

	expectTx(t, fx.txManager, fx.deviceRepo, fx.profileRepo)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
	fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, variant.ID).Return(variant, nil)
	fx.publisher.EXPECT().
		PublishDeviceEvent(mock.Anything, mock.MatchedBy(func(e *service.DeviceEvent) bool {
			return e.Type == service.DeviceEventScanned &&
				e.DeviceID == "ACT-123456" &&
				e.OwnerID == ownerID.String() &&
				e.Location != nil && *e.Location == location &&
				e.OccurredAt.Equal(testNow)
		})).
		Return(nil)

	view, err := fx.service.ViewProfile(context.Background(), "act-123456", &location)

	require.NoError(t, err)
	assert.Equal(t, "ACT-123456", view.Device.ID)
	assert.Equal(t, "Pin Jelpi", view.Device.DisplayName)
	assert.Equal(t, "Pin", view.Device.Class.Label)
	assert.Equal(t, "Mascota", view.KindLabel)

	assert.Equal(t, "Max", view.Card.Title)
	assert.Nil(t, view.Card.Row("veterinario"))
	assert.Nil(t, view.Card.Section("Veterinario"))
	assert.Nil(t, view.Card.Section("Condiciones médicas"))

	phone := view.Card.Row("telefono")
	require.NotNil(t, phone)
	assert.Equal(t, "tel:5551234567", phone.Action.Href)
	assert.Equal(t, "555-123-4567", phone.Copy)
}

func TestPublicProfileService_ViewProfile_DropsInvalidLocation(t *testing.T) {
	fx := createTestPublicProfileService(t)
	device, variant := linkedPetDevice(t, uuid.New())
	location := orb.Point{200, 95}

	expectTx(t, fx.txManager, fx.deviceRepo, fx.profileRepo)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
	fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, variant.ID).Return(variant, nil)
	fx.publisher.EXPECT().
		PublishDeviceEvent(mock.Anything, mock.MatchedBy(func(e *service.DeviceEvent) bool {
			return e.Location == nil
		})).
		Return(nil)

	_, err := fx.service.ViewProfile(context.Background(), "ACT-123456", &location)
	require.NoError(t, err)
}

func TestPublicProfileService_ViewProfile_PublishFailureStillRenders(t *testing.T) {
	fx := createTestPublicProfileService(t)
	device, variant := linkedPetDevice(t, uuid.New())

	expectTx(t, fx.txManager, fx.deviceRepo, fx.profileRepo)
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
	fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, variant.ID).Return(variant, nil)
	fx.publisher.EXPECT().PublishDeviceEvent(mock.Anything, mock.Anything).Return(assert.AnError)

	view, err := fx.service.ViewProfile(context.Background(), "ACT-123456", nil)
	require.NoError(t, err)
	assert.Equal(t, "Max", view.Card.Title)
}

func TestPublicProfileService_ViewProfile_NotVisible(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx publicProfileFixtures)
		wantErr error
	}{
		{
			name: "unknown device",
			setup: func(fx publicProfileFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "inactive device",
			setup: func(fx publicProfileFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(inactiveDevice(uuid.New()), nil)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "activated without profile",
			setup: func(fx publicProfileFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(activatedDevice(uuid.New(), entity.ProfileKindPet), nil)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "linked to a missing profile",
			setup: func(fx publicProfileFixtures) {
				device := activatedDevice(uuid.New(), entity.ProfileKindPet)
				require.NoError(t, device.Link(uuid.New(), entity.ProfileKindPet, testNow))
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "ACT-123456").Return(device, nil)
				fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, *device.ProfileID).Return(nil, repository.ErrProfileNotFound)
			},
			wantErr: domainerrors.ErrInvariantViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPublicProfileService(t)
			expectTx(t, fx.txManager, fx.deviceRepo, fx.profileRepo)
			tt.setup(fx)

			_, err := fx.service.ViewProfile(context.Background(), "ACT-123456", nil)
			require.ErrorIs(t, err, tt.wantErr)
			fx.publisher.AssertNotCalled(t, "PublishDeviceEvent", mock.Anything, mock.Anything)
		})
	}
}
