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

// PersonHandlerParams holds dependencies for PersonHandler, injected by Fx.
type PersonHandlerParams struct {
	fx.In

	PersonUC usecase.PersonUsecase
	Logger   *slog.Logger
}

// PersonHandler holds dependencies for person-related handlers
type PersonHandler struct {
	personUC usecase.PersonUsecase
	logger   *slog.Logger
}

// NewPersonHandler is the constructor for PersonHandler
func NewPersonHandler(params PersonHandlerParams) *PersonHandler {
	return &PersonHandler{
		personUC: params.PersonUC,
		logger:   params.Logger,
	}
}

// CreatePersonRequest represents the request body for creating a person.
// A client-supplied id is accepted but never used: the server always
// assigns a fresh one.
type CreatePersonRequest struct {
	ID        string           `json:"id"`
	Uni       string           `json:"uni" validate:"required"`
	FirstName string           `json:"first_name" validate:"required"`
	LastName  string           `json:"last_name" validate:"required"`
	Email     string           `json:"email" validate:"required,email"`
	Phone     string           `json:"phone" validate:"required"`
	BirthDate string           `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Addresses []AddressPayload `json:"addresses" validate:"omitempty,dive"`
}

// UpdatePersonRequest is the sparse PATCH body. Addresses, when present,
// replaces the whole embedded list.
type UpdatePersonRequest struct {
	Uni       *string           `json:"uni"`
	FirstName *string           `json:"first_name"`
	LastName  *string           `json:"last_name"`
	Email     *string           `json:"email" validate:"omitempty,email"`
	Phone     *string           `json:"phone"`
	BirthDate *string           `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Addresses *[]AddressPayload `json:"addresses" validate:"omitempty,dive"`
}

func toAddressEntities(payloads []AddressPayload) ([]entity.Address, error) {
	addresses := make([]entity.Address, 0, len(payloads))
	for _, payload := range payloads {
		address, err := payload.toEntity()
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, *address)
	}

	return addresses, nil
}

// Create handles person creation. The returned record always carries a
// freshly generated ID.
func (h *PersonHandler) Create(c echo.Context) error {
	var req CreatePersonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	addresses, err := toAddressEntities(req.Addresses)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid embedded address ID")
	}

	person := &entity.Person{
		Uni:       req.Uni,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Addresses: addresses,
	}

	created, err := h.personUC.CreatePerson(c.Request().Context(), person)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// List handles listing with conjunctive equality filters; city and
// country match against any embedded address.
func (h *PersonHandler) List(c echo.Context) error {
	params := c.QueryParams()
	filter := usecase.PersonFilter{
		Uni:       queryFilter(params, "uni"),
		FirstName: queryFilter(params, "first_name"),
		LastName:  queryFilter(params, "last_name"),
		Email:     queryFilter(params, "email"),
		Phone:     queryFilter(params, "phone"),
		BirthDate: queryFilter(params, "birth_date"),
		City:      queryFilter(params, "city"),
		Country:   queryFilter(params, "country"),
	}

	persons, err := h.personUC.ListPersons(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, persons)
}

// Get handles retrieval by ID.
func (h *PersonHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid person ID")
	}

	person, err := h.personUC.GetPerson(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, person)
}

// Update handles the partial update. Fields absent from the body keep
// their stored values.
func (h *PersonHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid person ID")
	}

	var req UpdatePersonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	patch := usecase.PersonPatch{
		Uni:       req.Uni,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	}
	if req.Addresses != nil {
		addresses, err := toAddressEntities(*req.Addresses)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid embedded address ID")
		}
		patch.Addresses = &addresses
	}

	updated, err := h.personUC.UpdatePerson(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}
