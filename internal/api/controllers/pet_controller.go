package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"petsoft/internal/models/request_models"
	"petsoft/internal/services"
	"petsoft/pkg/utils"
)

type PetController struct {
	petService services.PetServiceInterface
	logger     *zap.Logger
}

func NewPetController(petService services.PetServiceInterface, logger *zap.Logger) *PetController {
	return &PetController{
		petService: petService,
		logger:     logger,
	}
}

// Dashboard godoc
// @Summary Daycare dashboard
// @Description Pets currently checked in plus guest stats
// @Tags Pets
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /app/dashboard [get]
func (p *PetController) Dashboard(c *gin.Context) {
	claims, ok := requireSession(c)
	if !ok {
		return
	}

	report, err := p.petService.BuildDashboard(c.Request.Context(), claims.UserID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}
	utils.RespondSuccess(c, report, "")
}

// ListPets godoc
// @Summary List pets
// @Tags Pets
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /app/pets [get]
func (p *PetController) ListPets(c *gin.Context) {
	claims, ok := requireSession(c)
	if !ok {
		return
	}

	pets, err := p.petService.ListPets(c.Request.Context(), claims.UserID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}
	utils.RespondSuccess(c, pets, "")
}

// GetPet godoc
// @Summary Get a pet
// @Tags Pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /app/pets/{id} [get]
func (p *PetController) GetPet(c *gin.Context) {
	claims, ok := requireSession(c)
	if !ok {
		return
	}

	pet, err := p.petService.GetPet(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}
	utils.RespondSuccess(c, pet, "")
}

// AddPet godoc
// @Summary Check in a new pet
// @Tags Pets
// @Accept json
// @Produce json
// @Param request body request_models.PetRequest true "Pet"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /app/pets [post]
func (p *PetController) AddPet(c *gin.Context) {
	claims, ok := requireSession(c)
	if !ok {
		return
	}

	var req request_models.PetRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pet data.")
		return
	}

	pet, err := p.petService.AddPet(c.Request.Context(), claims.UserID, req)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	c.JSON(http.StatusCreated, utils.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Pet added",
		TraceID: c.GetString("trace_id"),
		Data:    pet,
	})
}

// EditPet godoc
// @Summary Edit a pet
// @Tags Pets
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body request_models.PetRequest true "Pet"
// @Success 200 {object} utils.APIResponse
// @Router /app/pets/{id} [put]
func (p *PetController) EditPet(c *gin.Context) {
	claims, ok := requireSession(c)
	if !ok {
		return
	}

	var req request_models.PetRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pet data.")
		return
	}

	pet, err := p.petService.EditPet(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}
	utils.RespondSuccess(c, pet, "Pet updated")
}

// DeletePet godoc
// @Summary Check out (delete) a pet
// @Tags Pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} utils.APIResponse
// @Router /app/pets/{id} [delete]
func (p *PetController) DeletePet(c *gin.Context) {
	claims, ok := requireSession(c)
	if !ok {
		return
	}

	if err := p.petService.DeletePet(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Pet checked out")
}
