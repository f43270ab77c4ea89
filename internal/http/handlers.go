package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bellehair/internal/domain"
	"bellehair/internal/repository"
	"bellehair/internal/service"
)

type Server struct {
	engine   *gin.Engine
	catalog  *service.CatalogService
	auth     *service.AuthService
	payments *service.PaymentService
}

func NewServer(catalog *service.CatalogService, auth *service.AuthService, payments *service.PaymentService, allowedOrigins []string) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}
	s := &Server{engine: r, catalog: catalog, auth: auth, payments: payments}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.engine.Group("/api")
	{
		products := api.Group("/products")
		products.GET("", s.listProducts)
		products.GET("/featured", s.listFeatured)
		products.GET("/category/:category", s.listByCategory)
		products.GET("/:id", s.getProduct)

		api.POST("/payment", s.submitPayment)
		api.POST("/auth/login", s.login)
	}
}

// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	list, err := s.catalog.List(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary List featured products
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Router /products/featured [get]
func (s *Server) listFeatured(c *gin.Context) {
	list, err := s.catalog.Featured(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary List products by category
// @Tags products
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} domain.Product
// @Router /products/category/{category} [get]
func (s *Server) listByCategory(c *gin.Context) {
	list, err := s.catalog.ByCategory(c, c.Param("category"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.catalog.GetByID(c, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Produit non trouvé"})
		return
	}
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

type paymentReq struct {
	PaymentMethod  string            `json:"paymentMethod"`
	PaymentDetails map[string]any    `json:"paymentDetails"`
	Order          domain.OrderDraft `json:"order"`
}

// @Summary Process a payment
// @Tags payment
// @Accept json
// @Produce json
// @Param input body paymentReq true "Payment"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /payment [post]
func (s *Server) submitPayment(c *gin.Context) {
	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
		return
	}
	receipt, err := s.payments.Submit(c, req.PaymentMethod, req.PaymentDetails, req.Order)
	if errors.Is(err, service.ErrPaymentDeclined) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "payment_failed",
			"message": "Paiement refusé. Veuillez vérifier vos informations et réessayer.",
		})
		return
	}
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"transactionId": receipt.TransactionID,
		"orderId":       receipt.OrderID,
		"message":       "Paiement traité avec succès",
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
		return
	}
	res, err := s.auth.Login(c, req.Email, req.Password)
	if errors.Is(err, service.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email ou mot de passe incorrect"})
		return
	}
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": res.User, "token": res.Token})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrPaymentDeclined):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
