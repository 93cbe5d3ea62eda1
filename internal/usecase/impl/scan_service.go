package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "jelpi/internal/delivery/context"
	"jelpi/internal/domain/display"
	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/repository"
	"jelpi/internal/domain/service"
	"jelpi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ownerTopicPrefix prefixes the FCM topic every owner's app subscribes to.
const ownerTopicPrefix = "owner-"

// scanService implements the ScanUsecase interface.
type scanService struct {
	txManager       repository.TransactionManager
	notificationSvc service.NotificationService
	now             func() time.Time
	logger          *slog.Logger
}

// ScanServiceParams holds dependencies for ScanService, injected by Fx.
type ScanServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewScanService is the constructor for scanService.
func NewScanService(params ScanServiceParams) usecase.ScanUsecase {
	return &scanService{
		txManager:       params.TxManager,
		notificationSvc: params.NotificationSvc,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *scanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordScan moves the device's last scan time forward and alerts its owner.
func (srv *scanService) RecordScan(ctx context.Context, event *service.DeviceEvent) error {
	if event.Type != service.DeviceEventScanned {
		srv.log(ctx).Debug("[Worker] Ignoring non-scan event",
			slog.String("type", string(event.Type)),
			slog.String("event_id", event.EventID),
		)

		return nil
	}

	if event.DeviceID == "" {
		return domainerrors.ErrMalformedPayload.WithDetails("scan event " + event.EventID + " has no device id")
	}

	scannedAt := event.OccurredAt
	if scannedAt.IsZero() {
		scannedAt = srv.now()
	}

	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		found, err := findDevice(ctx, deviceRepo, normalizeDeviceID(event.DeviceID))
		if err != nil {
			return err
		}

		if err := deviceRepo.TouchLastScanned(ctx, found.ID, scannedAt); err != nil {
			return errors.Wrap(err, "failed to touch last scanned")
		}
		device = found

		return nil
	})
	if errors.Is(err, domainerrors.ErrDeviceNotFound) {
		srv.log(ctx).Warn("[Worker] Scan for unknown device dropped", slog.String("device_id", event.DeviceID))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to record scan")
	}

	title, body, data := scanAlertContent(device, event)
	if err := srv.notificationSvc.SendToTopic(ctx, ownerTopicPrefix+device.OwnerID.String(), title, body, data); err != nil {
		return errors.Wrap(err, "failed to send scan alert")
	}

	srv.log(ctx).Info("[Worker] Scan recorded",
		slog.String("device_id", device.ID),
		slog.Time("scanned_at", scannedAt),
		slog.Bool("has_location", event.Location != nil),
	)

	return nil
}

// scanAlertContent creates the notification title, body, and data of a scan alert.
func scanAlertContent(device *entity.Device, event *service.DeviceEvent) (title, body string, data map[string]string) {
	title = "Tu Jelpi fue escaneado"
	body = fmt.Sprintf("Alguien abrió el perfil de %s", device.DisplayName())

	data = map[string]string{
		"event_id":     event.EventID,
		"device_id":    device.ID,
		"profile_type": display.ProfileType(device.ProfileType).Label,
	}
	if event.Location != nil {
		data["latitude"] = strconv.FormatFloat(event.Location.Lat(), 'f', 6, 64)
		data["longitude"] = strconv.FormatFloat(event.Location.Lon(), 'f', 6, 64)
		body += " y compartió su ubicación"
	}

	return title, body, data
}
