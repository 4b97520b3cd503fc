package parcel

import (
	"github.com/amirasaad/parcels/pkg/repository"
	parcelsvc "github.com/amirasaad/parcels/pkg/service/parcel"
	"github.com/amirasaad/parcels/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for parcel registration and lookup.
// Every route is scoped to the caller's session.
func Routes(app *fiber.App, parcelSvc *parcelsvc.Service) {
	app.Post("/parcels", RegisterParcel(parcelSvc))
	app.Get("/parcels", ListParcels(parcelSvc))
	app.Get("/parcels/:id", GetParcel(parcelSvc))
	app.Get("/parcel_types", ListParcelTypes(parcelSvc))
}

// RegisterParcel returns a Fiber handler for registering a parcel.
// @Summary Register a parcel
// @Description Register a new parcel for the current session. The delivery cost is calculated later.
// @Tags parcels
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Parcel details"
// @Success 201 {object} common.Response{data=ParcelResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /parcels [post]
func RegisterParcel(parcelSvc *parcelsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if err != nil {
			return nil // error already written
		}
		view, err := parcelSvc.Register(c.UserContext(), common.SessionID(c), parcelsvc.RegisterInput{
			Name:         input.Name,
			Weight:       input.Weight,
			ContentValue: input.ContentValue,
			ParcelTypeID: input.ParcelTypeID,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to register parcel", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Parcel registered", ToResponse(view))
	}
}

// ListParcels returns a Fiber handler listing the session's parcels.
// @Summary List parcels
// @Description List the parcels of the current session ordered by id
// @Tags parcels
// @Produce json
// @Param page query int false "Page number" default(1) minimum(1)
// @Param page_size query int false "Page size" default(10) minimum(1) maximum(100)
// @Param parcel_type_id query int false "Filter by parcel type"
// @Param delivery_cost_calculated query bool false "Filter by whether the delivery cost is known"
// @Success 200 {object} common.Response{data=[]ParcelResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /parcels [get]
func ListParcels(parcelSvc *parcelsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := ListQuery{Page: 1, PageSize: repository.DefaultPageSize}
		if err := c.QueryParser(&q); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query parameters", err, fiber.StatusBadRequest)
		}
		if err := common.Validate(q); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query parameters", err, fiber.StatusBadRequest)
		}
		views, err := parcelSvc.List(c.UserContext(), common.SessionID(c), q.toFilter())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list parcels", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Parcels fetched", toResponses(views))
	}
}

// GetParcel returns a Fiber handler for fetching one parcel.
// @Summary Get a parcel
// @Description Get a parcel of the current session by id
// @Tags parcels
// @Produce json
// @Param id path int true "Parcel ID"
// @Success 200 {object} common.Response{data=ParcelResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /parcels/{id} [get]
func GetParcel(parcelSvc *parcelsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamInt64(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid parcel ID", err)
		}
		view, err := parcelSvc.Get(c.UserContext(), common.SessionID(c), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch parcel", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Parcel fetched", ToResponse(view))
	}
}

// ListParcelTypes returns a Fiber handler listing the parcel types.
// @Summary List parcel types
// @Tags parcels
// @Produce json
// @Success 200 {object} common.Response{data=[]ParcelTypeResponse}
// @Failure 500 {object} common.ProblemDetails
// @Router /parcel_types [get]
func ListParcelTypes(parcelSvc *parcelsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		types, err := parcelSvc.ListTypes(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list parcel types", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Parcel types fetched", toTypeResponses(types))
	}
}
