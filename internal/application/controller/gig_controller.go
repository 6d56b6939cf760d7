package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"gig-weather/internal/domain/entity"
	"gig-weather/internal/domain/gateway/db"
	"gig-weather/internal/domain/model"
	"gig-weather/internal/domain/usecase/gig"
	"gig-weather/pkg/msg"
)

type GigController struct {
	api     *echo.Group
	useCase gig.UseCase
}

func NewGigController(api *echo.Group, useCase gig.UseCase) *GigController {
	return &GigController{api: api, useCase: useCase}
}

// InitGigRoutes initializes gig and weather routes
func (controller *GigController) InitGigRoutes() {
	controller.api.GET("/gigs", controller.FindAll)
	controller.api.GET("/gigs/:id", controller.FindByID)
	controller.api.POST("/gigs", controller.Create)
	controller.api.DELETE("/gigs/:id", controller.Delete)
	controller.api.POST("/weather/:cityId/retry", controller.RetryCity)
	controller.api.GET("/cities", controller.Cities)
}

// FindAll godoc
// @Summary List gigs with weather
// @Description Retrieve every gig, newest first, each with its current weather status and score
// @Tags gigs
// @Accept json
// @Produce json
// @Success 200 {array} model.GigWeatherView "Projected gig list"
// @Router /gigs [get]
func (controller *GigController) FindAll(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Projection())
}

// FindByID godoc
// @Summary Get one gig with weather detail
// @Description Retrieve a single gig with its weather status and full score breakdown
// @Tags gigs
// @Accept json
// @Produce json
// @Param id path string true "Gig id"
// @Success 200 {object} model.GigDetailView "Gig detail"
// @Failure 404 {object} map[string]string "Gig not found"
// @Router /gigs/{id} [get]
func (controller *GigController) FindByID(c echo.Context) error {
	id := c.Param("id")

	detail, err := controller.useCase.GigDetail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrGigNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("gig.not-found", id)})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, detail)
}

// Create godoc
// @Summary Create a gig
// @Description Create a gig; the weather for its city is fetched in the background
// @Tags gigs
// @Accept json
// @Produce json
// @Param gig body model.CreateGigDTO true "Gig creation data"
// @Success 201 {object} entity.Gig "Created gig"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /gigs [post]
func (controller *GigController) Create(c echo.Context) error {
	var dto model.CreateGigDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("gig.invalid-payload", "malformed body")})
	}

	created, err := controller.useCase.AddGig(c.Request().Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, gig.ErrInvalidDate):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("gig.invalid-date", dto.Date)})
		case errors.Is(err, gig.ErrTitleRequired), errors.Is(err, gig.ErrCityRequired):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("gig.invalid-payload", err.Error())})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, created)
}

// Delete godoc
// @Summary Delete a gig
// @Description Delete a gig by id; cached weather for its city is kept
// @Tags gigs
// @Accept json
// @Produce json
// @Param id path string true "Gig id"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Gig not found"
// @Router /gigs/{id} [delete]
func (controller *GigController) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := controller.useCase.DeleteGig(c.Request().Context(), id); err != nil {
		if errors.Is(err, db.ErrGigNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("gig.not-found", id)})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// RetryCity godoc
// @Summary Retry weather for a city
// @Description Discard the cached weather outcome for a city and fetch it again
// @Tags weather
// @Accept json
// @Produce json
// @Param cityId path string true "City id"
// @Success 202 {object} map[string]string "Retry accepted"
// @Router /weather/{cityId}/retry [post]
func (controller *GigController) RetryCity(c echo.Context) error {
	cityID := c.Param("cityId")

	controller.useCase.RetryCity(c.Request().Context(), cityID)

	return c.JSON(http.StatusAccepted, map[string]string{"message": msg.GetMessage("city.retry-accepted", cityID)})
}

// Cities godoc
// @Summary List selectable cities
// @Description List the directory cities; empty in freetext mode
// @Tags cities
// @Accept json
// @Produce json
// @Success 200 {array} entity.City "Cities"
// @Router /cities [get]
func (controller *GigController) Cities(c echo.Context) error {
	cities := controller.useCase.Cities()
	if cities == nil {
		cities = []entity.City{}
	}
	return c.JSON(http.StatusOK, cities)
}
