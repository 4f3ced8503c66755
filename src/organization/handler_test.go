package organization_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"directory-api/src/database"
	"directory-api/src/model"
	"directory-api/src/organization"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrganizationRouter(t *testing.T) (*gin.Engine, *organization.Service, model.Building) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := database.SetupTestDB(t)
	building, _ := seedDirectory(t, db)
	service := organization.NewServiceWithDB(db)
	handler := organization.NewHandlerWithService(service)

	router := gin.New()
	router.GET("/organizations", handler.GetAllOrganizations)
	router.POST("/organizations", handler.CreateOrganization)
	router.GET("/organizations/search/by-name", handler.SearchByName)
	router.GET("/organizations/search/by-activity-tree", handler.GetByActivityTree)
	router.POST("/organizations/geo/search", handler.SearchByGeo)
	router.GET("/organizations/building/:building_id", handler.GetByBuilding)
	router.GET("/organizations/activity/:activity_id", handler.GetByActivity)
	router.GET("/organizations/:id", handler.GetOrganization)
	router.PUT("/organizations/:id", handler.UpdateOrganization)
	router.DELETE("/organizations/:id", handler.DeleteOrganization)

	return router, service, building
}

func TestHandlerCreateOrganization(t *testing.T) {
	router, _, building := setupOrganizationRouter(t)

	payload := `{
		"name": "ООО Рога и Копыта",
		"building_id": ` + strconv.Itoa(building.Id) + `,
		"phone_numbers": ["2-222-222", "3-333-333"],
		"activity_ids": [5]
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/organizations", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body model.Organization
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotZero(t, body.Id)
	assert.Len(t, body.Phones, 2)
	assert.True(t, body.Phones[0].IsPrimary)
}

func TestHandlerCreateOrganizationBadReference(t *testing.T) {
	router, _, building := setupOrganizationRouter(t)

	payload := `{"name": "Призрак", "building_id": ` + strconv.Itoa(building.Id) + `, "activity_ids": [999]}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/organizations", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerGetOrganizationNotFound(t *testing.T) {
	router, _, _ := setupOrganizationRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/organizations/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerGeoSearchValidation(t *testing.T) {
	router, _, _ := setupOrganizationRouter(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "Valid radius query", body: `{"latitude": 55.7558, "longitude": 37.6173, "radius_km": 2}`, code: http.StatusOK},
		{name: "Valid rectangle query", body: `{"min_lat": 55, "max_lat": 56, "min_lng": 37, "max_lng": 38}`, code: http.StatusOK},
		{name: "Neither variant complete", body: `{"latitude": 55.7558}`, code: http.StatusBadRequest},
		{name: "Empty body object", body: `{}`, code: http.StatusBadRequest},
		{name: "Negative radius", body: `{"latitude": 55.7558, "longitude": 37.6173, "radius_km": -2}`, code: http.StatusBadRequest},
		{name: "Malformed json", body: `{`, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/organizations/geo/search", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandlerGetByBuildingNotFound(t *testing.T) {
	router, _, _ := setupOrganizationRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/organizations/building/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerGetByActivityDepthValidation(t *testing.T) {
	router, _, _ := setupOrganizationRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/organizations/activity/1?max_depth=7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerDeleteOrganization(t *testing.T) {
	router, service, building := setupOrganizationRouter(t)

	created, err := service.CreateOrganization("Уходящая", building.Id, nil, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/organizations/"+strconv.Itoa(created.Id), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	_, err = service.GetOrganizationById(created.Id)
	assert.True(t, organization.IsNotFound(err))
}
