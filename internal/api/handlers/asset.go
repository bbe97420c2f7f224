package handlers

import (
	"net/http"

	"asset-allocation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssetHandler handles HTTP requests for assets
type AssetHandler struct {
	assetService service.AssetServiceInterface
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService service.AssetServiceInterface) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// CreateAsset handles POST /asset
// @Summary Register an asset
// @Description Registers an asset. The owner defaults to the purchaser.
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body service.CreateAssetRequest true "Asset data"
// @Success 201 {object} SuccessResponse{data=service.AssetResponse} "Asset created"
// @Failure 400 {object} ErrorResponse "Invalid request or validation failed"
// @Security BearerAuth
// @Router /asset [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req service.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, asset)
}

// ListAssets handles GET /asset
// @Summary List assets
// @Tags assets
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]service.AssetResponse} "Assets"
// @Security BearerAuth
// @Router /asset [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.GetAllAssets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, assets, len(assets))
}

// GetAsset handles GET /asset/:id
// @Summary Get an asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 200 {object} SuccessResponse{data=service.AssetResponse} "Asset"
// @Failure 400 {object} ErrorResponse "Malformed asset ID"
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Security BearerAuth
// @Router /asset/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, asset)
}

// UpdateAsset handles PUT /asset/:id
// @Summary Edit an asset
// @Description Edits descriptive fields. Owner changes only through an approved Owner allocation.
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Param asset body service.UpdateAssetRequest true "Asset edits"
// @Success 200 {object} SuccessResponse{data=service.AssetResponse} "Updated asset"
// @Failure 400 {object} ErrorResponse "Malformed ID or validation failed"
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Security BearerAuth
// @Router /asset/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req service.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, asset)
}
