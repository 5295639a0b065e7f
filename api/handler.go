package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"snackbar/core/catalog"
	"snackbar/core/output"
	pricingerrors "snackbar/internal/errors"
)

// handleHealth handles GET /health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"version":    s.version,
		"promotions": s.engine.Promotions().Names(),
	})
}

// handleMenu handles GET /menu
func (s *Server) handleMenu(c *gin.Context) {
	cat := s.engine.Catalog()
	c.JSON(http.StatusOK, output.NewMenuView(cat.Entries(), cat.Prices()))
}

// handlePriceSandwich handles GET /sandwiches/:kind/price
func (s *Server) handlePriceSandwich(c *gin.Context) {
	kind, err := catalog.ParseKind(c.Param("kind"))
	if err != nil {
		s.writeError(c, http.StatusNotFound, err)
		return
	}

	priced, err := s.engine.PriceSandwich(kind)
	if err != nil {
		s.writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, output.NewOrderView(priced))
}

// handlePriceOrder handles POST /orders/price
func (s *Server) handlePriceOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, pricingerrors.Wrap(pricingerrors.TypeInput, "invalid JSON body", err))
		return
	}

	order, err := req.toOrder()
	if err != nil {
		s.writeError(c, statusFor(err), err)
		return
	}

	priced, err := s.engine.PriceOrder(order)
	if err != nil {
		s.writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, output.NewOrderView(priced))
}

func (s *Server) writeError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Type:      string(pricingerrors.TypeOf(err)),
			Message:   err.Error(),
			RequestID: c.GetString(requestIDKey),
		},
	})
}

func statusFor(err error) int {
	switch pricingerrors.TypeOf(err) {
	case pricingerrors.TypeInput,
		pricingerrors.TypeInvalidQuantity,
		pricingerrors.TypeUnknownIngredient,
		pricingerrors.TypeUnknownSandwich:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
