package postgres

import (
	"context"
	"encoding/json"

	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/repository"
	"jelpi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// CreateProfile persists a new profile variant.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.ProfileVariant) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvariantViolation.WrapMessage("device already has a profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfileByID retrieves a profile variant with its payload decoded.
func (repo *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.ProfileVariant, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM)
}

// UpdateProfile replaces the payload of an existing profile variant.
// The kind column is part of the filter so a row can never change shape.
func (repo *profileRepository) UpdateProfile(ctx context.Context, profile *entity.ProfileVariant) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ? AND kind = ?", profileM.ID, profileM.Kind).
		Updates(map[string]any{
			"payload":    profileM.Payload,
			"updated_at": profileM.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain ProfileVariant.
// A stored payload that no longer decodes is an integrity failure, not a client error.
func toProfileDomain(data *model.ProfileModel) (*entity.ProfileVariant, error) {
	payload, err := entity.DecodeProfilePayload(entity.ProfileKind(data.Kind), data.Payload)
	if err != nil {
		return nil, domainerrors.ErrInvariantViolation.WrapMessage(
			"stored profile " + data.ID.String() + " cannot be decoded: " + err.Error())
	}

	variant, err := entity.NewProfileVariant(data.ID, data.DeviceID, payload, data.CreatedAt)
	if err != nil {
		return nil, err
	}
	variant.UpdatedAt = data.UpdatedAt

	return variant, nil
}

// fromProfileDomain converts a domain ProfileVariant to a GORM ProfileModel.
func fromProfileDomain(data *entity.ProfileVariant) (*model.ProfileModel, error) {
	if data == nil || data.Payload() == nil {
		return nil, domainerrors.ErrInvariantViolation.WithDetails("profile variant without payload")
	}

	raw, err := json.Marshal(data.Payload())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode profile payload")
	}

	return &model.ProfileModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Kind:      int(data.Kind()),
		Payload:   datatypes.JSON(raw),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
