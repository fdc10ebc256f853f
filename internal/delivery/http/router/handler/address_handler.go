package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/http/response"
	"directory/internal/domain/entity"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressPayload represents a full address record on the wire. The same
// shape serves standalone address creation and the embedded copies on a
// person.
type AddressPayload struct {
	ID         string `json:"id" validate:"required,uuid"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// UpdateAddressRequest is the sparse PATCH body: only fields present in
// the JSON overwrite the stored record.
type UpdateAddressRequest struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

func (p *AddressPayload) toEntity() (*entity.Address, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil, err
	}

	return &entity.Address{
		ID:         id,
		Street:     p.Street,
		City:       p.City,
		State:      p.State,
		PostalCode: p.PostalCode,
		Country:    p.Country,
	}, nil
}

// Create handles strict address creation: a duplicate ID is rejected.
func (h *AddressHandler) Create(c echo.Context) error {
	var req AddressPayload
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	address, err := req.toEntity()
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	created, err := h.addressUC.CreateAddress(c.Request().Context(), address)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// List handles listing with conjunctive equality filters.
func (h *AddressHandler) List(c echo.Context) error {
	params := c.QueryParams()
	filter := usecase.AddressFilter{
		Street:     queryFilter(params, "street"),
		City:       queryFilter(params, "city"),
		State:      queryFilter(params, "state"),
		PostalCode: queryFilter(params, "postal_code"),
		Country:    queryFilter(params, "country"),
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, addresses)
}

// Get handles retrieval by ID.
func (h *AddressHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, address)
}

// Update handles the partial update. Fields absent from the body keep
// their stored values.
func (h *AddressHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	patch := usecase.AddressPatch{
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}

	updated, err := h.addressUC.UpdateAddress(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// queryFilter returns the query value as an equality filter, keeping the
// absent/empty distinction: ?city= filters by the empty string, while a
// missing parameter does not filter at all.
func queryFilter(params map[string][]string, name string) *string {
	values, present := params[name]
	if !present || len(values) == 0 {
		return nil
	}

	return &values[0]
}
