package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"peluqueria/internal/store"
)

type OrderHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db, now: time.Now}
}

type cartItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	// Quantity is optional on the wire; an omitted quantity means 1.
	Quantity *int `json:"quantity"`
}

type createOrderRequest struct {
	UserID uint              `json:"userId"`
	Items  []cartItemRequest `json:"items"`
	Date   *time.Time        `json:"date"`
}

func (h *OrderHandler) CreateFromCart(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeReq := store.CreateOrderRequest{UserID: req.UserID}
	if req.Date != nil {
		storeReq.Date = *req.Date
	}
	for _, item := range req.Items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		storeReq.Items = append(storeReq.Items, store.CartItem{
			ProductID: item.ProductID,
			Quantity:  quantity,
		})
	}

	order, err := store.CreateOrderFromCart(c.Request.Context(), h.db, storeReq)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := store.ListOrders(c.Request.Context(), h.db)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	order, err := store.GetOrder(c.Request.Context(), h.db, id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListByUser(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	orders, err := store.ListOrdersByUser(c.Request.Context(), h.db, userID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type updateStatusRequest struct {
	Estado *bool `json:"estado" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := store.SetOrderStatus(c.Request.Context(), h.db, id, *req.Estado)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *OrderHandler) Earnings(c *gin.Context) {
	report, err := store.Earnings(c.Request.Context(), h.db, c.Query("filter"), h.now())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
