package handler

import (
	"io"
	"log/slog"
	"net/http"

	"jelpi/internal/delivery/api/middleware"
	"jelpi/internal/delivery/api/response"
	"jelpi/internal/domain/entity"
	"jelpi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// ActivateDeviceRequest represents the request body for activating a device
type ActivateDeviceRequest struct {
	ActivationCode string `json:"activationCode" validate:"required"`
}

// SelectProfileTypeRequest represents the request body for choosing the profile kind
type SelectProfileTypeRequest struct {
	ProfileType entity.ProfileKind `json:"profileType" validate:"required,min=1,max=4"`
}

// RenameDeviceRequest represents the request body for renaming a device
type RenameDeviceRequest struct {
	Name string `json:"name"`
}

// SetDeviceStatusRequest represents the request body for a status change
type SetDeviceStatusRequest struct {
	Status entity.DeviceStatus `json:"status" validate:"required,oneof=inactive activated linked"`
}

// RegisterDevice handles adding a tag to the owner's account
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
	}

	var req usecase.RegisterDeviceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.deviceUC.RegisterDevice(c.Request().Context(), ownerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// ListDevices handles retrieving all devices of the owner
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
	}

	views, err := h.deviceUC.ListDevices(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// GetDevice handles retrieving one device
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
	}

	view, err := h.deviceUC.GetDevice(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ActivateDevice handles activation with the code shipped with the tag
func (h *DeviceHandler) ActivateDevice(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
	}

	var req ActivateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.deviceUC.ActivateDevice(c.Request().Context(), ownerID, c.Param("id"), req.ActivationCode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SelectProfileType handles choosing the profile kind of a device
func (h *DeviceHandler) SelectProfileType(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
	}

	var req SelectProfileTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile type input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.deviceUC.SelectProfileType(c.Request().Context(), ownerID, c.Param("id"), req.ProfileType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SaveProfile handles storing the profile payload. The body is the bare payload
// of the kind already selected on the device.
func (h *DeviceHandler) SaveProfile(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil || len(body) == 0 {
		return response.BindingError(c, "INVALID_INPUT", "Profile body is required")
	}

	view, err := h.deviceUC.SaveProfile(c.Request().Context(), ownerID, c.Param("id"), &usecase.ProfileSubmission{
		Data: body,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RenameDevice handles setting or clearing the device name
func (h *DeviceHandler) RenameDevice(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
	}

	var req RenameDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid name input")
	}

	view, err := h.deviceUC.RenameDevice(c.Request().Context(), ownerID, c.Param("id"), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SetDeviceStatus handles an explicit lifecycle step
func (h *DeviceHandler) SetDeviceStatus(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
	}

	var req SetDeviceStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.deviceUC.SetDeviceStatus(c.Request().Context(), ownerID, c.Param("id"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// GetDeviceQR handles rendering the QR code of the device's public URL
func (h *DeviceHandler) GetDeviceQR(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
	}

	png, err := h.deviceUC.GetDeviceQR(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetProfile handles retrieving a stored profile
func (h *DeviceHandler) GetProfile(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	variant, err := h.deviceUC.GetProfile(c.Request().Context(), ownerID, profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, variant)
}
