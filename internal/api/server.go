// Package api exposes the procurement workflow over HTTP: the phased
// inventory overview, reorder suggestions, preferred-vendor management,
// order distribution and a live submission progress feed.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"quartermaster/internal/distribution"
	"quartermaster/internal/inventory"
	"quartermaster/internal/models"
	"quartermaster/internal/onboarding"
	"quartermaster/internal/vendors"
)

// ProcurementAPI represents the main API handler for the reorder workflow
type ProcurementAPI struct {
	Router    *gin.Engine
	inventory *inventory.Service
	prefs     *vendors.PreferenceStore
	resolver  *onboarding.Resolver
	suggester onboarding.Suggester
	engine    *distribution.Engine
	progress  *ProgressHub
}

// Options carries the collaborators of the API.
type Options struct {
	Inventory *inventory.Service
	Prefs     *vendors.PreferenceStore
	Resolver  *onboarding.Resolver
	Suggester onboarding.Suggester
	Engine    *distribution.Engine
	Progress  *ProgressHub
	JWTSecret string
}

// NewProcurementAPI creates the API and configures its routes.
func NewProcurementAPI(opts Options) *ProcurementAPI {
	router := gin.Default()
	router.Use(cors.Default())

	api := &ProcurementAPI{
		Router:    router,
		inventory: opts.Inventory,
		prefs:     opts.Prefs,
		resolver:  opts.Resolver,
		suggester: opts.Suggester,
		engine:    opts.Engine,
		progress:  opts.Progress,
	}

	api.setupRoutes(opts.JWTSecret)
	return api
}

// setupRoutes configures all API endpoints
func (p *ProcurementAPI) setupRoutes(jwtSecret string) {
	// Health check
	p.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Quartermaster API is running"})
	})

	v1 := p.Router.Group("/api/v1")
	if jwtSecret != "" {
		v1.Use(AuthMiddleware(jwtSecret))
	}
	{
		// Inventory
		v1.GET("/inventory/overview", p.GetInventoryOverview)
		v1.GET("/inventory/suggestions", p.GetReorderSuggestions)

		// Vendor management
		v1.GET("/vendors", p.GetVendors)
		v1.GET("/vendors/preferred", p.GetPreferredVendors)
		v1.POST("/vendors/preferred", p.AddPreferredVendor)

		// Order distribution
		v1.POST("/orders/distribute", p.DistributeOrder)
		v1.GET("/orders/progress", p.progress.handleWebSocket)
	}
}

// Inventory handlers

// GetInventoryOverview returns the onboarding-phased item view: the whole
// inventory during the first week, then low-stock items ranked by urgency,
// upgraded with server scores once available.
func (p *ProcurementAPI) GetInventoryOverview(c *gin.Context) {
	items, err := p.inventory.Items()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	view := p.resolver.ResolveView(c.Request.Context(), items, p.suggester)
	c.JSON(http.StatusOK, gin.H{
		"phase": p.resolver.Phase(),
		"items": view,
	})
}

// GetReorderSuggestions returns every low-stock item with its suggested
// order quantity.
func (p *ProcurementAPI) GetReorderSuggestions(c *gin.Context) {
	items, err := p.inventory.Items()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	suggestions := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.IsLowStock {
			suggestions = append(suggestions, item)
		}
	}
	c.JSON(http.StatusOK, suggestions)
}

// Vendor handlers

// GetVendors returns the full vendor list from the data source.
func (p *ProcurementAPI) GetVendors(c *gin.Context) {
	list, err := p.inventory.Vendors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetPreferredVendors returns the preferred vendor per category.
func (p *ProcurementAPI) GetPreferredVendors(c *gin.Context) {
	c.JSON(http.StatusOK, p.prefs.List())
}

// AddPreferredVendor designates a vendor for a category, replacing any
// previous vendor of that category.
func (p *ProcurementAPI) AddPreferredVendor(c *gin.Context) {
	var req struct {
		VendorID         string `json:"vendor_id" binding:"required"`
		CategoryOverride string `json:"category_override"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	all, err := p.inventory.Vendors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, vendor := range all {
		if vendor.VendorID == req.VendorID {
			c.JSON(http.StatusOK, p.prefs.Add(vendor, req.CategoryOverride))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
}

// Order distribution handlers

// DistributeOrder runs one distribution batch over the selected items.
func (p *ProcurementAPI) DistributeOrder(c *gin.Context) {
	var req struct {
		SelectedItems []struct {
			ItemID        string   `json:"itemId" binding:"required"`
			OrderQuantity *float64 `json:"orderQuantity"`
			Notes         string   `json:"notes"`
		} `json:"selectedItems" binding:"required"`
		OrderNotes            string `json:"orderNotes"`
		RequestedDeliveryDate string `json:"requestedDeliveryDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := p.inventory.Items()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	byID := make(map[string]models.InventoryItem, len(items))
	for _, item := range items {
		byID[item.ItemID] = item
	}

	selected := make([]models.InventoryItem, 0, len(req.SelectedItems))
	for _, sel := range req.SelectedItems {
		item, ok := byID[sel.ItemID]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown item: " + sel.ItemID})
			return
		}
		// User-edited quantity wins over the derived suggestion.
		if sel.OrderQuantity != nil {
			item.ReorderQty = *sel.OrderQuantity
		}
		item.Notes = sel.Notes
		selected = append(selected, item)
	}

	meta := models.OrderMeta{
		OrderNotes:            req.OrderNotes,
		RequestedDeliveryDate: req.RequestedDeliveryDate,
	}

	summary, err := p.engine.Distribute(c.Request.Context(), selected, p.prefs.List(), meta)
	if err != nil {
		var confErr *distribution.ConfigurationError
		var totalErr *distribution.TotalSubmissionFailure
		switch {
		case errors.As(err, &confErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": confErr.Error()})
		case errors.As(err, &totalErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": totalErr.Error(), "summary": summary})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}
