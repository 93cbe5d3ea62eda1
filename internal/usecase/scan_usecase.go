package usecase

import (
	"context"

	"jelpi/internal/domain/service"
)

// ScanUsecase defines the interface for processing device events delivered to the worker
type ScanUsecase interface {
	// RecordScan updates the scan time of the device and alerts its owner.
	// Events other than scans are acknowledged without side effects.
	RecordScan(ctx context.Context, event *service.DeviceEvent) error
}
