package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lca-bot/inventory"
	"lca-bot/lcia"
	"lca-bot/models"
	"lca-bot/report"
)

// Importer stores a recorded inventory for a product.
type Importer interface {
	Import(ctx context.Context, product string, table models.InventoryTable) error
}

// InventoryController exposes the inventory source over the JSON API.
type InventoryController struct {
	source   inventory.Source
	importer Importer
}

// NewInventoryController returns a controller reading from src. importer may
// be nil when the configured source cannot store data.
func NewInventoryController(src inventory.Source, importer Importer) *InventoryController {
	return &InventoryController{source: src, importer: importer}
}

// GetInventory returns the inventory and its summary for a product without
// writing any report artifact.
func (ic *InventoryController) GetInventory(c *gin.Context) {
	product := c.DefaultQuery("product", report.DefaultProduct)

	table, err := ic.source.Fetch(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary, err := lcia.Aggregate(table)
	if err != nil {
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":       product,
		"inventory":     table,
		"summary":       summary,
		"contributions": lcia.Contributions(table, summary),
	})
}

// ImportInventory replaces the recorded inventory of a product.
func (ic *InventoryController) ImportInventory(c *gin.Context) {
	if ic.importer == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "The configured inventory source does not accept imports"})
		return
	}

	product := c.Param("product")

	var request struct {
		Records models.InventoryTable `json:"records"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ic.importer.Import(c.Request.Context(), product, request.Records); err != nil {
		if errors.Is(err, inventory.ErrNegativeValue) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import inventory: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory imported successfully", "records": len(request.Records)})
}
