package organization

import (
	"errors"
	"net/http"
	"strconv"

	"directory-api/src/activity"
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

// GetOrganization godoc
// @Summary      Get organization by ID
// @Description  Returns the organization with its building, phones and activities
// @Tags         Organizations
// @Produce      json
// @Param        id   path      int  true  "Organization ID"
// @Success      200  {object}  model.Organization
// @Failure      404  {object}  map[string]string
// @Router       /organizations/{id} [get]
func (h *Handler) GetOrganization(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization id"})
		return
	}

	org, err := h.Service.GetOrganizationById(id)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not get organization: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// GetAllOrganizations godoc
// @Summary      List all organizations
// @Tags         Organizations
// @Produce      json
// @Success      200  {array}  model.Organization
// @Router       /organizations/ [get]
func (h *Handler) GetAllOrganizations(c *gin.Context) {
	orgs, err := h.Service.GetAllOrganizations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not get organizations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// SearchByName godoc
// @Summary      Search organizations by name
// @Description  Case-insensitive substring match on organization name
// @Tags         Organizations
// @Produce      json
// @Param        name  query  string  true  "Name fragment"
// @Success      200  {array}   model.Organization
// @Failure      400  {object}  map[string]string
// @Router       /organizations/search/by-name [get]
func (h *Handler) SearchByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'name' is required"})
		return
	}

	orgs, err := h.Service.SearchOrganizationsByName(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not search organizations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetByBuilding godoc
// @Summary      List organizations in a building
// @Tags         Organizations
// @Produce      json
// @Param        building_id  path  int  true  "Building ID"
// @Success      200  {array}   model.Organization
// @Failure      404  {object}  map[string]string
// @Router       /organizations/building/{building_id} [get]
func (h *Handler) GetByBuilding(c *gin.Context) {
	buildingId, err := strconv.Atoi(c.Param("building_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building id"})
		return
	}

	orgs, err := h.Service.GetOrganizationsByBuilding(buildingId)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not get organizations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetByActivity godoc
// @Summary      List organizations by activity subtree
// @Description  Includes organizations linked to descendant activities up to max_depth
// @Tags         Organizations
// @Produce      json
// @Param        activity_id  path   int  true   "Activity ID"
// @Param        max_depth    query  int  false  "Maximum depth (1-3)"  default(3)
// @Success      200  {array}   model.Organization
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /organizations/activity/{activity_id} [get]
func (h *Handler) GetByActivity(c *gin.Context) {
	activityId, err := strconv.Atoi(c.Param("activity_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	maxDepth, err := strconv.Atoi(c.DefaultQuery("max_depth", strconv.Itoa(activity.MaxTreeDepth)))
	if err != nil || maxDepth < 1 || maxDepth > activity.MaxTreeDepth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_depth must be between 1 and 3"})
		return
	}

	orgs, err := h.Service.GetOrganizationsByActivity(activityId, maxDepth)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not get organizations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetByActivityTree godoc
// @Summary      Search organizations by activity name across subtrees
// @Description  Matches activities by name, then unions organizations under every matching subtree
// @Tags         Organizations
// @Produce      json
// @Param        activity_name  query  string  true  "Activity name fragment"
// @Success      200  {array}   model.Organization
// @Failure      400  {object}  map[string]string
// @Router       /organizations/search/by-activity-tree [get]
func (h *Handler) GetByActivityTree(c *gin.Context) {
	name := c.Query("activity_name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'activity_name' is required"})
		return
	}

	orgs, err := h.Service.GetOrganizationsByActivityTree(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not search organizations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// SearchByGeo godoc
// @Summary      Search organizations by geographic area
// @Description  Accepts either a center point with radius_km, or rectangle bounds
// @Tags         Organizations
// @Accept       json
// @Produce      json
// @Param        body  body      geo.SearchRequest  true  "Search area"
// @Success      200  {array}   model.Organization
// @Failure      400  {object}  map[string]string
// @Router       /organizations/geo/search [post]
func (h *Handler) SearchByGeo(c *gin.Context) {
	var req geo.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if _, err := req.Mode(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orgs, err := h.Service.SearchOrganizationsByGeo(req)
	if err != nil {
		if errors.Is(err, geo.ErrIncompleteQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not search organizations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// CreateOrganization godoc
// @Summary      Create a new organization
// @Description  Creates the organization, its phone numbers and activity links atomically
// @Tags         Organizations
// @Accept       json
// @Produce      json
// @Param        body  body      object{name=string,building_id=int,phone_numbers=[]string,activity_ids=[]int}  true  "Organization info"
// @Success      201  {object}  model.Organization
// @Failure      400  {object}  map[string]string
// @Router       /organizations/ [post]
func (h *Handler) CreateOrganization(c *gin.Context) {
	var req struct {
		Name         string   `json:"name"`
		BuildingId   *int     `json:"building_id"`
		PhoneNumbers []string `json:"phone_numbers"`
		ActivityIds  []int    `json:"activity_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.BuildingId == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	org, err := h.Service.CreateOrganization(req.Name, *req.BuildingId, req.PhoneNumbers, req.ActivityIds)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create organization: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, org)
}

// UpdateOrganization godoc
// @Summary      Update an organization
// @Description  Omitted phone_numbers or activity_ids keep their current values
// @Tags         Organizations
// @Accept       json
// @Produce      json
// @Param        id    path      int                                                                            true  "Organization ID"
// @Param        body  body      object{name=string,building_id=int,phone_numbers=[]string,activity_ids=[]int}  true  "Fields to update"
// @Success      200  {object}  model.Organization
// @Failure      404  {object}  map[string]string
// @Router       /organizations/{id} [put]
func (h *Handler) UpdateOrganization(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization id"})
		return
	}

	var req struct {
		Name         *string  `json:"name,omitempty"`
		BuildingId   *int     `json:"building_id,omitempty"`
		PhoneNumbers []string `json:"phone_numbers,omitempty"`
		ActivityIds  []int    `json:"activity_ids,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.BuildingId != nil {
		updates["building_id"] = *req.BuildingId
	}

	org, err := h.Service.UpdateOrganization(id, updates, req.PhoneNumbers, req.ActivityIds)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update organization: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization godoc
// @Summary      Delete an organization
// @Tags         Organizations
// @Produce      json
// @Param        id   path      int  true  "Organization ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /organizations/{id} [delete]
func (h *Handler) DeleteOrganization(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization id"})
		return
	}

	if err := h.Service.DeleteOrganization(id); err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete organization: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
