package impl

import (
	"context"
	"log/slog"
	"time"

	"jelpi/config"
	deliverycontext "jelpi/internal/delivery/context"
	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/profile"
	"jelpi/internal/domain/repository"
	"jelpi/internal/domain/service"
	"jelpi/internal/domain/validation"
	"jelpi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager     repository.TransactionManager
	guard         service.InFlightGuard
	hasher        service.SecretHasher
	qrCodeService service.QRCodeService
	publisher     service.EventPublisher
	publicBaseURL string
	now           func() time.Time
	logger        *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	Guard         service.InFlightGuard
	Hasher        service.SecretHasher
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.PublicProfile != nil {
		baseURL = params.Config.PublicProfile.BaseURL
	}

	return &deviceService{
		txManager:     params.TxManager,
		guard:         params.Guard,
		hasher:        params.Hasher,
		qrCodeService: params.QRCodeService,
		publisher:     params.Publisher,
		publicBaseURL: baseURL,
		now:           time.Now,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice adds an inactive tag to the owner's account.
func (srv *deviceService) RegisterDevice(ctx context.Context, ownerID uuid.UUID, input *usecase.RegisterDeviceInput) (*usecase.DeviceView, error) {
	if !input.Class.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{Field: "class", Rule: "oneof"})
	}

	deviceID := normalizeDeviceID(input.ID)
	if !validation.IsDeviceID(deviceID) {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{Field: "id", Rule: "deviceid"})
	}

	now := srv.now()
	device := &entity.Device{
		ID:          deviceID,
		Class:       input.Class,
		Status:      entity.DeviceStatusInactive,
		OwnerID:     ownerID,
		ProfileType: entity.ProfileKindNone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := device.Rename(input.Name, now); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.ActivationCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash activation code")
	}
	device.ActivationCodeHash = hash

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.DeviceRepo().CreateDevice(ctx, device)
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return domainerrors.ErrDeviceAlreadyExists.WithDetails("device " + device.ID)
		}

		return err
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "register", device.ID, err)

		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Info("Device registered",
		slog.String("deviceID", device.ID),
		slog.String("class", string(device.Class)),
		slog.String("ownerID", ownerID.String()),
	)

	return buildDeviceView(device, nil)
}

// ListDevices returns the owner's devices, newest first.
func (srv *deviceService) ListDevices(ctx context.Context, ownerID uuid.UUID) ([]*usecase.DeviceView, error) {
	var views []*usecase.DeviceView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		devices, err := repoFactory.DeviceRepo().FindDevicesByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to find devices by owner")
		}

		views = make([]*usecase.DeviceView, 0, len(devices))
		for _, device := range devices {
			if err := device.CheckInvariants(); err != nil {
				return err
			}

			variant, err := findAttachedProfile(ctx, repoFactory.ProfileRepo(), device)
			if err != nil {
				return err
			}

			view, err := buildDeviceView(device, variant)
			if err != nil {
				return err
			}
			views = append(views, view)
		}

		return nil
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "list", "", err)

		return nil, errors.Wrap(err, "failed to list devices")
	}

	return views, nil
}

// GetDevice loads one device with its resolved profile state.
func (srv *deviceService) GetDevice(ctx context.Context, ownerID uuid.UUID, deviceID string) (*usecase.DeviceView, error) {
	deviceID = normalizeDeviceID(deviceID)

	var view *usecase.DeviceView
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		device, err := findOwnedDevice(ctx, repoFactory.DeviceRepo(), ownerID, deviceID)
		if err != nil {
			return err
		}

		variant, err := findAttachedProfile(ctx, repoFactory.ProfileRepo(), device)
		if err != nil {
			return err
		}

		view, err = buildDeviceView(device, variant)

		return err
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "get", deviceID, err)

		return nil, errors.Wrap(err, "failed to load device")
	}

	return view, nil
}

// ActivateDevice checks the activation code and moves the device to activated.
func (srv *deviceService) ActivateDevice(ctx context.Context, ownerID uuid.UUID, deviceID, activationCode string) (*usecase.DeviceView, error) {
	deviceID = normalizeDeviceID(deviceID)

	release, err := srv.guard.Acquire(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire device")
	}
	defer release()

	now := srv.now()
	var view *usecase.DeviceView
	var activated *entity.Device

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		// 1. Find the device
		device, err := findOwnedDevice(ctx, deviceRepo, ownerID, deviceID)
		if err != nil {
			return err
		}

		// 2. Verify the code printed with the tag
		if !srv.hasher.Check(activationCode, device.ActivationCodeHash) {
			return domainerrors.ErrInvalidActivationCode
		}

		// 3. Transition and assign the public URL
		if err := device.Activate(now, publicURLFor(srv.publicBaseURL, device.ID)); err != nil {
			return err
		}

		if err := deviceRepo.UpdateDevice(ctx, device); err != nil {
			return errors.Wrap(err, "failed to update device")
		}

		activated = device
		view, err = buildDeviceView(device, nil)

		return err
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "activate", deviceID, err)

		return nil, errors.Wrap(err, "failed to activate device")
	}

	srv.log(ctx).Info("Device activated", slog.String("deviceID", deviceID))
	publishQuietly(ctx, srv.publisher, srv.log(ctx), newDeviceEvent(ctx, service.DeviceEventActivated, activated, now))

	return view, nil
}

// SelectProfileType commits the device to a profile kind.
func (srv *deviceService) SelectProfileType(ctx context.Context, ownerID uuid.UUID, deviceID string, kind entity.ProfileKind) (*usecase.DeviceView, error) {
	deviceID = normalizeDeviceID(deviceID)

	release, err := srv.guard.Acquire(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire device")
	}
	defer release()

	now := srv.now()
	var view *usecase.DeviceView

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		device, err := findOwnedDevice(ctx, deviceRepo, ownerID, deviceID)
		if err != nil {
			return err
		}

		previous := device.ProfileType
		if err := device.SelectProfileType(kind, now); err != nil {
			return err
		}

		if device.ProfileType != previous {
			if err := deviceRepo.UpdateDevice(ctx, device); err != nil {
				return errors.Wrap(err, "failed to update device")
			}
		}

		variant, err := findAttachedProfile(ctx, repoFactory.ProfileRepo(), device)
		if err != nil {
			return err
		}

		view, err = buildDeviceView(device, variant)

		return err
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "select_profile_type", deviceID, err)

		return nil, errors.Wrap(err, "failed to select profile type")
	}

	return view, nil
}

// SaveProfile validates and stores the profile, linking the device on first save.
// Nothing is written when the payload does not validate.
func (srv *deviceService) SaveProfile(ctx context.Context, ownerID uuid.UUID, deviceID string, submission *usecase.ProfileSubmission) (*usecase.DeviceView, error) {
	deviceID = normalizeDeviceID(deviceID)

	release, err := srv.guard.Acquire(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire device")
	}
	defer release()

	now := srv.now()
	var view *usecase.DeviceView
	var linked *entity.Device

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()
		profileRepo := repoFactory.ProfileRepo()

		// 1. Find the device and check it can take a profile
		device, err := findOwnedDevice(ctx, deviceRepo, ownerID, deviceID)
		if err != nil {
			return err
		}

		if device.Status == entity.DeviceStatusInactive {
			return domainerrors.ErrDeviceNotActivated
		}

		if device.ProfileType == entity.ProfileKindNone {
			return domainerrors.ErrInvalidTransition.WithDetails("device " + deviceID + " has no profile type selected")
		}

		kind := submission.Kind
		if kind == entity.ProfileKindNone {
			kind = device.ProfileType
		}
		if kind != device.ProfileType {
			return domainerrors.ErrInvariantViolation.WithDetails(
				"payload is " + kind.String() + " but device " + deviceID + " expects " + device.ProfileType.String())
		}

		// 2. Decode and validate the payload
		payload, err := entity.DecodeProfilePayload(kind, submission.Data)
		if err != nil {
			return err
		}

		normalized, err := profile.Validate(payload)
		if err != nil {
			return err
		}

		// 3. Edit in place, or create and link
		variant, err := findAttachedProfile(ctx, profileRepo, device)
		if err != nil {
			return err
		}

		if variant != nil {
			if err := variant.ReplacePayload(normalized, now); err != nil {
				return err
			}

			if err := profileRepo.UpdateProfile(ctx, variant); err != nil {
				return errors.Wrap(err, "failed to update profile")
			}
		} else {
			variant, err = entity.NewProfileVariant(uuid.New(), device.ID, normalized, now)
			if err != nil {
				return err
			}

			if err := device.Link(variant.ID, variant.Kind(), now); err != nil {
				return err
			}

			if err := profileRepo.CreateProfile(ctx, variant); err != nil {
				return errors.Wrap(err, "failed to create profile")
			}

			if err := deviceRepo.UpdateDevice(ctx, device); err != nil {
				return errors.Wrap(err, "failed to update device")
			}

			linked = device
		}

		view, err = buildDeviceView(device, variant)

		return err
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "save_profile", deviceID, err)

		return nil, errors.Wrap(err, "failed to save profile")
	}

	if linked != nil {
		srv.log(ctx).Info("Device linked",
			slog.String("deviceID", deviceID),
			slog.String("profileType", linked.ProfileType.String()),
		)
		publishQuietly(ctx, srv.publisher, srv.log(ctx), newDeviceEvent(ctx, service.DeviceEventLinked, linked, now))
	}

	return view, nil
}

// RenameDevice sets or clears the device display name.
func (srv *deviceService) RenameDevice(ctx context.Context, ownerID uuid.UUID, deviceID, name string) (*usecase.DeviceView, error) {
	deviceID = normalizeDeviceID(deviceID)

	release, err := srv.guard.Acquire(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire device")
	}
	defer release()

	now := srv.now()
	var view *usecase.DeviceView

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		device, err := findOwnedDevice(ctx, deviceRepo, ownerID, deviceID)
		if err != nil {
			return err
		}

		if err := device.Rename(name, now); err != nil {
			return err
		}

		if err := deviceRepo.UpdateDevice(ctx, device); err != nil {
			return errors.Wrap(err, "failed to update device")
		}

		variant, err := findAttachedProfile(ctx, repoFactory.ProfileRepo(), device)
		if err != nil {
			return err
		}

		view, err = buildDeviceView(device, variant)

		return err
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "rename", deviceID, err)

		return nil, errors.Wrap(err, "failed to rename device")
	}

	return view, nil
}

// SetDeviceStatus moves the device one step forward in its lifecycle.
// Activation needs the activation code and goes through ActivateDevice instead.
func (srv *deviceService) SetDeviceStatus(ctx context.Context, ownerID uuid.UUID, deviceID string, status entity.DeviceStatus) (*usecase.DeviceView, error) {
	deviceID = normalizeDeviceID(deviceID)

	release, err := srv.guard.Acquire(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire device")
	}
	defer release()

	now := srv.now()
	var view *usecase.DeviceView

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		device, err := findOwnedDevice(ctx, deviceRepo, ownerID, deviceID)
		if err != nil {
			return err
		}

		if !device.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				"device " + deviceID + " cannot move from " + device.Status.String() + " to " + status.String())
		}

		if status == entity.DeviceStatusActivated {
			return domainerrors.ErrInvalidTransition.WithDetails("activation requires the activation code")
		}

		// Linking needs a stored profile of the selected kind.
		if device.ProfileID == nil {
			return domainerrors.ErrInvalidTransition.WithDetails("device " + deviceID + " has no stored profile to link")
		}

		variant, err := findAttachedProfile(ctx, repoFactory.ProfileRepo(), device)
		if err != nil {
			return err
		}

		if err := device.Link(variant.ID, variant.Kind(), now); err != nil {
			return err
		}

		if err := deviceRepo.UpdateDevice(ctx, device); err != nil {
			return errors.Wrap(err, "failed to update device")
		}

		view, err = buildDeviceView(device, variant)

		return err
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "set_status", deviceID, err)

		return nil, errors.Wrap(err, "failed to set device status")
	}

	return view, nil
}

// GetDeviceQR renders the QR code of the device's public URL.
func (srv *deviceService) GetDeviceQR(ctx context.Context, ownerID uuid.UUID, deviceID string) ([]byte, error) {
	deviceID = normalizeDeviceID(deviceID)

	var publicURL string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		device, err := findOwnedDevice(ctx, repoFactory.DeviceRepo(), ownerID, deviceID)
		if err != nil {
			return err
		}

		if device.Status == entity.DeviceStatusInactive || device.PublicURL == "" {
			return domainerrors.ErrDeviceNotActivated
		}
		publicURL = device.PublicURL

		return nil
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "qr", deviceID, err)

		return nil, errors.Wrap(err, "failed to load device for QR code")
	}

	png, err := srv.qrCodeService.GenerateURLQR(publicURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// GetProfile loads a stored profile variant of one of the owner's devices.
func (srv *deviceService) GetProfile(ctx context.Context, ownerID uuid.UUID, profileID uuid.UUID) (*entity.ProfileVariant, error) {
	var variant *entity.ProfileVariant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindProfileByID(ctx, profileID)
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound.WithDetails("profile " + profileID.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}

		device, err := findDevice(ctx, repoFactory.DeviceRepo(), found.DeviceID)
		if errors.Is(err, domainerrors.ErrDeviceNotFound) {
			return domainerrors.ErrInvariantViolation.WithDetails(
				"profile " + profileID.String() + " references missing device " + found.DeviceID)
		}
		if err != nil {
			return err
		}

		if !device.IsOwnedBy(ownerID) {
			return domainerrors.ErrForbidden.WithDetails("profile " + profileID.String() + " belongs to another owner")
		}

		variant = found

		return nil
	})
	if err != nil {
		logOutcome(ctx, srv.log(ctx), "get_profile", "", err)

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return variant, nil
}
