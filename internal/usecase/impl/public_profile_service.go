package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "jelpi/internal/delivery/context"
	"jelpi/internal/domain/display"
	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/profile"
	"jelpi/internal/domain/repository"
	"jelpi/internal/domain/service"
	"jelpi/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publicProfileService implements the PublicProfileUsecase interface.
type publicProfileService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// PublicProfileServiceParams holds dependencies for PublicProfileService, injected by Fx.
type PublicProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPublicProfileService is the constructor for publicProfileService.
func NewPublicProfileService(params PublicProfileServiceParams) usecase.PublicProfileUsecase {
	return &publicProfileService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *publicProfileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ViewProfile renders the card of a linked device and records the scan.
// Devices that are unknown or not linked yet look the same to the visitor.
func (srv *publicProfileService) ViewProfile(ctx context.Context, deviceID string, location *orb.Point) (*usecase.PublicProfile, error) {
	deviceID = normalizeDeviceID(deviceID)

	var (
		device *entity.Device
		card   profile.Card
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findDevice(ctx, repoFactory.DeviceRepo(), deviceID)
		if err != nil {
			return err
		}

		if found.Status != entity.DeviceStatusLinked {
			return domainerrors.ErrDeviceNotFound.WithDetails("device " + deviceID + " is " + found.Status.String())
		}

		variant, err := findAttachedProfile(ctx, repoFactory.ProfileRepo(), found)
		if err != nil {
			return err
		}

		resolution, err := profile.Resolve(found.ProfileType, variant)
		if err != nil {
			return err
		}

		if resolution.State != profile.StateDisplay {
			return domainerrors.ErrInvariantViolation.WithDetails(
				"linked device " + deviceID + " resolved to " + resolution.State.String())
		}

		card, err = profile.Render(resolution.Variant)
		if err != nil {
			return err
		}
		device = found

		return nil
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "view_public_profile", deviceID, err)

		return nil, errors.Wrap(err, "failed to load public profile")
	}

	if location != nil && !entity.ValidLocation(*location) {
		srv.log(ctx).Debug("Ignoring out of range scan location",
			slog.String("deviceID", deviceID),
			slog.Float64("lon", location.Lon()),
			slog.Float64("lat", location.Lat()),
		)
		location = nil
	}

	event := newDeviceEvent(ctx, service.DeviceEventScanned, device, srv.now())
	event.Location = location
	publishQuietly(ctx, srv.publisher, srv.log(ctx), event)

	return &usecase.PublicProfile{
		Device: usecase.PublicDevice{
			ID:          device.ID,
			DisplayName: device.DisplayName(),
			Class:       display.Class(device.Class),
		},
		KindLabel: card.KindLabel,
		Card:      card,
	}, nil
}
