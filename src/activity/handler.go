package activity

import (
	"errors"
	"net/http"
	"strconv"

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

// GetActivity godoc
// @Summary      Get activity by ID
// @Tags         Activities
// @Produce      json
// @Param        id   path      int  true  "Activity ID"
// @Success      200  {object}  model.Activity
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id} [get]
func (h *Handler) GetActivity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	activity, err := h.Service.GetActivityById(id)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not get activity: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}

// GetRootActivities godoc
// @Summary      List root activities
// @Tags         Activities
// @Produce      json
// @Success      200  {array}  model.Activity
// @Router       /activities/roots/root [get]
func (h *Handler) GetRootActivities(c *gin.Context) {
	activities, err := h.Service.GetRootActivities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not get root activities: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// GetChildren godoc
// @Summary      List an activity subtree
// @Description  Returns the activity and its descendants up to max_depth levels (1-3)
// @Tags         Activities
// @Produce      json
// @Param        id         path   int  true   "Activity ID"
// @Param        max_depth  query  int  false  "Maximum depth (1-3)"  default(3)
// @Success      200  {array}   model.Activity
// @Failure      400  {object}  map[string]string
// @Router       /activities/{id}/children [get]
func (h *Handler) GetChildren(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	maxDepth, err := strconv.Atoi(c.DefaultQuery("max_depth", strconv.Itoa(MaxTreeDepth)))
	if err != nil || maxDepth < 1 || maxDepth > MaxTreeDepth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_depth must be between 1 and 3"})
		return
	}

	activities, err := h.Service.GetChildrenActivities(id, maxDepth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not get children activities: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// SearchByName godoc
// @Summary      Search activities by name
// @Description  Case-insensitive substring match on activity name
// @Tags         Activities
// @Produce      json
// @Param        name  query  string  true  "Name fragment"
// @Success      200  {array}   model.Activity
// @Failure      400  {object}  map[string]string
// @Router       /activities/search/by-name [get]
func (h *Handler) SearchByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'name' is required"})
		return
	}

	activities, err := h.Service.SearchActivitiesByName(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not search activities: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// GetAllActivities godoc
// @Summary      List all activities
// @Tags         Activities
// @Produce      json
// @Success      200  {array}  model.Activity
// @Router       /activities/ [get]
func (h *Handler) GetAllActivities(c *gin.Context) {
	activities, err := h.Service.GetAllActivities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not get activities: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// CreateActivity godoc
// @Summary      Create a new activity
// @Tags         Activities
// @Accept       json
// @Produce      json
// @Param        body  body      object{name=string,parent_id=int}  true  "Activity info"
// @Success      201  {object}  model.Activity
// @Failure      400  {object}  map[string]string
// @Router       /activities/ [post]
func (h *Handler) CreateActivity(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		ParentId *int   `json:"parent_id,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	activity, err := h.Service.CreateActivity(req.Name, req.ParentId)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent activity does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create activity: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// UpdateActivity godoc
// @Summary      Update an activity
// @Tags         Activities
// @Accept       json
// @Produce      json
// @Param        id    path      int                                true  "Activity ID"
// @Param        body  body      object{name=string,parent_id=int}  true  "Fields to update"
// @Success      200  {object}  model.Activity
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id} [put]
func (h *Handler) UpdateActivity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	var req struct {
		Name     *string `json:"name,omitempty"`
		ParentId *int    `json:"parent_id,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ParentId != nil {
		updates["parent_id"] = *req.ParentId
	}

	activity, err := h.Service.UpdateActivity(id, updates)
	if err != nil {
		if errors.Is(err, ErrParentNotFound) || errors.Is(err, ErrCyclicParent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update activity: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}

// DeleteActivity godoc
// @Summary      Delete an activity and its descendants
// @Tags         Activities
// @Produce      json
// @Param        id   path      int  true  "Activity ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id} [delete]
func (h *Handler) DeleteActivity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	if err := h.Service.DeleteActivity(id); err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete activity: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
