package building

import (
	"errors"
	"net/http"
	"strconv"

	"directory-api/src/geo"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler() *Handler {
	return &Handler{Service: NewService()}
}

func NewHandlerWithService(service *Service) *Handler {
	return &Handler{Service: service}
}

// GetBuilding godoc
// @Summary      Get building by ID with its organizations
// @Tags         Buildings
// @Produce      json
// @Param        id   path      int  true  "Building ID"
// @Success      200  {object}  model.Building
// @Failure      404  {object}  map[string]string
// @Router       /buildings/{id} [get]
func (h *Handler) GetBuilding(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building id"})
		return
	}

	building, err := h.Service.GetBuildingWithOrganizations(id)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not get building: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, building)
}

// GetAllBuildings godoc
// @Summary      List all buildings
// @Tags         Buildings
// @Produce      json
// @Success      200  {array}  model.Building
// @Router       /buildings/ [get]
func (h *Handler) GetAllBuildings(c *gin.Context) {
	buildings, err := h.Service.GetAllBuildings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not get buildings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, buildings)
}

// SearchBuildings godoc
// @Summary      Search buildings by geographic area
// @Description  Accepts either a center point with radius_km, or rectangle bounds
// @Tags         Buildings
// @Accept       json
// @Produce      json
// @Param        body  body      geo.SearchRequest  true  "Search area"
// @Success      200  {array}   model.Building
// @Failure      400  {object}  map[string]string
// @Router       /buildings/geo/search [post]
func (h *Handler) SearchBuildings(c *gin.Context) {
	var req geo.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if _, err := req.Mode(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buildings, err := h.Service.SearchBuildings(req)
	if err != nil {
		if errors.Is(err, geo.ErrIncompleteQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not search buildings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, buildings)
}

// CreateBuilding godoc
// @Summary      Create a new building
// @Tags         Buildings
// @Accept       json
// @Produce      json
// @Param        body  body      object{address=string,latitude=number,longitude=number}  true  "Building info"
// @Success      201  {object}  model.Building
// @Failure      400  {object}  map[string]string
// @Router       /buildings/ [post]
func (h *Handler) CreateBuilding(c *gin.Context) {
	var req struct {
		Address   string   `json:"address"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Address == "" || req.Latitude == nil || req.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	building, err := h.Service.CreateBuilding(req.Address, *req.Latitude, *req.Longitude)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create building: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, building)
}

// UpdateBuilding godoc
// @Summary      Update a building
// @Tags         Buildings
// @Accept       json
// @Produce      json
// @Param        id    path      int                                                      true  "Building ID"
// @Param        body  body      object{address=string,latitude=number,longitude=number}  true  "Fields to update"
// @Success      200  {object}  model.Building
// @Failure      404  {object}  map[string]string
// @Router       /buildings/{id} [put]
func (h *Handler) UpdateBuilding(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building id"})
		return
	}

	var req struct {
		Address   *string  `json:"address,omitempty"`
		Latitude  *float64 `json:"latitude,omitempty"`
		Longitude *float64 `json:"longitude,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := map[string]interface{}{}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}

	building, err := h.Service.UpdateBuilding(id, updates)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update building: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, building)
}

// DeleteBuilding godoc
// @Summary      Delete a building and its organizations
// @Tags         Buildings
// @Produce      json
// @Param        id   path      int  true  "Building ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /buildings/{id} [delete]
func (h *Handler) DeleteBuilding(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building id"})
		return
	}

	if err := h.Service.DeleteBuilding(id); err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete building: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
