// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/repository"
	"jelpi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a newly registered device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// Convert database errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvariantViolation.WrapMessage("missing required device information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its tag identifier.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByOwner retrieves every device of an owner, newest first.
func (repo *deviceRepository) FindDevicesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Order("id").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by owner")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateDevice writes the mutable fields of a device.
// Owner, class and activation code hash are fixed at registration and never written here.
func (repo *deviceRepository) UpdateDevice(ctx context.Context, device *entity.Device) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"status":       string(device.Status),
			"profile_id":   device.ProfileID,
			"profile_type": int(device.ProfileType),
			"public_url":   device.PublicURL,
			"name":         device.Name,
			"activated_at": device.ActivatedAt,
			"updated_at":   device.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// TouchLastScanned moves last_scanned_at forward to at. Older timestamps are ignored.
func (repo *deviceRepository) TouchLastScanned(ctx context.Context, id string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Where("last_scanned_at IS NULL OR last_scanned_at < ?", at).
		UpdateColumn("last_scanned_at", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch last scanned")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing changed: either the device is unknown or a newer scan is already stored.
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check device existence")
	}

	if count == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:                 data.ID,
		Class:              entity.DeviceClass(data.Class),
		Status:             entity.DeviceStatus(data.Status),
		OwnerID:            data.OwnerID,
		ProfileID:          data.ProfileID,
		ProfileType:        entity.ProfileKind(data.ProfileType),
		PublicURL:          data.PublicURL,
		ActivationCodeHash: data.ActivationCodeHash,
		Name:               data.Name,
		ActivatedAt:        data.ActivatedAt,
		LastScannedAt:      data.LastScannedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:                 data.ID,
		Class:              string(data.Class),
		Status:             string(data.Status),
		OwnerID:            data.OwnerID,
		ProfileID:          data.ProfileID,
		ProfileType:        int(data.ProfileType),
		PublicURL:          data.PublicURL,
		ActivationCodeHash: data.ActivationCodeHash,
		Name:               data.Name,
		ActivatedAt:        data.ActivatedAt,
		LastScannedAt:      data.LastScannedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
