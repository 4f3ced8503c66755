package logaudit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LogAuditHandler struct {
	service LogAuditService
}

func NewLogAuditHandler(service LogAuditService) *LogAuditHandler {
	return &LogAuditHandler{
		service: service,
	}
}

// pageParams reads limit/offset, rejecting negative values and limits over
// 1000. On a bad value it writes the 400 response and reports false.
func pageParams(c *gin.Context) (int, int, bool) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit < 0 || limit > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 0 and 1000"})
		return 0, 0, false
	}
	if offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset cannot be negative"})
		return 0, 0, false
	}
	return limit, offset, true
}

// GetLogEntries godoc
// @Summary      List recent log entries
// @Tags         Logs
// @Produce      json
// @Param        limit   query  int  false  "Page size"    default(50)
// @Param        offset  query  int  false  "Page offset"  default(0)
// @Success      200  {array}   model.LogAuditEntry
// @Failure      400  {object}  map[string]string
// @Router       /logs/ [get]
func (h *LogAuditHandler) GetLogEntries(c *gin.Context) {
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	entries, err := h.service.GetLogEntries(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve log entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetLogEntriesByService godoc
// @Summary      List log entries for a service
// @Tags         Logs
// @Produce      json
// @Param        service  path   string  true   "Service name"
// @Param        limit    query  int     false  "Page size"    default(50)
// @Param        offset   query  int     false  "Page offset"  default(0)
// @Success      200  {array}   model.LogAuditEntry
// @Failure      400  {object}  map[string]string
// @Router       /logs/service/{service} [get]
func (h *LogAuditHandler) GetLogEntriesByService(c *gin.Context) {
	service := c.Param("service")
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	entries, err := h.service.GetLogEntriesByService(service, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve log entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetLogEntriesByLevel godoc
// @Summary      List log entries for a level
// @Tags         Logs
// @Produce      json
// @Param        level   path   string  true   "Log level"
// @Param        limit   query  int     false  "Page size"    default(50)
// @Param        offset  query  int     false  "Page offset"  default(0)
// @Success      200  {array}   model.LogAuditEntry
// @Failure      400  {object}  map[string]string
// @Router       /logs/level/{level} [get]
func (h *LogAuditHandler) GetLogEntriesByLevel(c *gin.Context) {
	level := c.Param("level")
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	entries, err := h.service.GetLogEntriesByLevel(level, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve log entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
