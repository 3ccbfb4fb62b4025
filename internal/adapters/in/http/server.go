// Package http exposes the application's use cases over a JSON HTTP API.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"tradematch/internal/core/application/usecases/commands"
	"tradematch/internal/core/application/usecases/queries"
	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/worker"
	"tradematch/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerWorkerHandler  commands.RegisterWorkerCommandHandler
	setAvailabilityHandler commands.SetWorkerAvailabilityCommandHandler
	setActiveHandler       commands.SetWorkerActiveCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	acceptOrderHandler     commands.AcceptOrderCommandHandler

	// Query handlers
	getWorkersHandler     queries.GetWorkersQueryHandler
	getWorkerHandler      queries.GetWorkerQueryHandler
	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	findCandidatesHandler queries.FindCandidatesQueryHandler

	listLimit      int
	candidateLimit int
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	registerWorkerHandler commands.RegisterWorkerCommandHandler,
	setAvailabilityHandler commands.SetWorkerAvailabilityCommandHandler,
	setActiveHandler commands.SetWorkerActiveCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	getWorkersHandler queries.GetWorkersQueryHandler,
	getWorkerHandler queries.GetWorkerQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	findCandidatesHandler queries.FindCandidatesQueryHandler,
	listLimit int,
	candidateLimit int,
) *Server {
	return &Server{
		registerWorkerHandler:  registerWorkerHandler,
		setAvailabilityHandler: setAvailabilityHandler,
		setActiveHandler:       setActiveHandler,
		createOrderHandler:     createOrderHandler,
		acceptOrderHandler:     acceptOrderHandler,
		getWorkersHandler:      getWorkersHandler,
		getWorkerHandler:       getWorkerHandler,
		getOrdersHandler:       getOrdersHandler,
		getOrderHandler:        getOrderHandler,
		findCandidatesHandler:  findCandidatesHandler,
		listLimit:              listLimit,
		candidateLimit:         candidateLimit,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/workers", s.RegisterWorker)
	api.GET("/workers", s.GetWorkers)
	api.GET("/workers/:id", s.GetWorker)
	api.POST("/workers/:id/availability", s.SetWorkerAvailability)
	api.POST("/workers/:id/active", s.SetWorkerActive)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/claims", s.ClaimOrder)

	api.GET("/candidates", s.FindCandidates)

	e.GET("/health", s.Health)
}

// Error is the JSON error body for all failure responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// isValidationError reports whether err is a field validation failure raised
// by a command or aggregate, as opposed to a storage fault.
func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired)
}

// WorkerResponse is the JSON shape of one worker.
type WorkerResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Trade        string    `json:"trade"`
	Region       string    `json:"region"`
	Availability string    `json:"availability"`
	Active       bool      `json:"active"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OrderResponse is the JSON shape of one order. The requester's contact is
// never exposed here.
type OrderResponse struct {
	ID          int64      `json:"id"`
	RequesterID int64      `json:"requester_id"`
	Trade       string     `json:"trade"`
	Region      string     `json:"region"`
	Comment     string     `json:"comment,omitempty"`
	Status      string     `json:"status"`
	AcceptedBy  *int64     `json:"accepted_by,omitempty"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func workerJSON(w queries.GetWorkersQueryResponse) WorkerResponse {
	return WorkerResponse{
		ID:           w.ID,
		Name:         w.Name,
		Phone:        w.Phone,
		Trade:        w.Trade,
		Region:       w.Region,
		Availability: w.Availability.String(),
		Active:       w.Active,
		UpdatedAt:    w.UpdatedAt,
	}
}

func orderJSON(o queries.GetOrdersQueryResponse) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		RequesterID: o.RequesterID,
		Trade:       o.Trade,
		Region:      o.Region,
		Comment:     o.Comment,
		Status:      o.Status.String(),
		AcceptedBy:  o.AcceptedBy,
		AcceptedAt:  o.AcceptedAt,
		CreatedAt:   o.CreatedAt,
	}
}

// RegisterWorker handles POST /api/v1/workers.
func (s *Server) RegisterWorker(ctx echo.Context) error {
	var body struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Phone  string `json:"phone"`
		Trade  string `json:"trade"`
		Region string `json:"region"`
	}
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	workerID, err := kernel.NewUserID(body.ID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id: "+err.Error())
	}

	phone, err := kernel.NewPhone(body.Phone)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid phone: "+err.Error())
	}

	cmd, err := commands.NewRegisterWorkerCommand(workerID, body.Name, phone, body.Trade, body.Region)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker data: "+err.Error())
	}

	err = s.registerWorkerHandler.Handle(ctx.Request().Context(), cmd)
	if isValidationError(err) {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker data: "+err.Error())
	}
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to register worker")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetWorkers handles GET /api/v1/workers.
func (s *Server) GetWorkers(ctx echo.Context) error {
	limit := s.queryLimit(ctx)

	query, err := queries.NewGetWorkersQuery(limit)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid limit")
	}

	workers, err := s.getWorkersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve workers")
	}

	response := make([]WorkerResponse, len(workers))
	for i, w := range workers {
		response[i] = workerJSON(w)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorker handles GET /api/v1/workers/:id.
func (s *Server) GetWorker(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id")
	}

	query, err := queries.NewGetWorkerQuery(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id")
	}

	w, err := s.getWorkerHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errorJSON(ctx, http.StatusNotFound, "Worker not found")
	}
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve worker")
	}

	return ctx.JSON(http.StatusOK, workerJSON(w))
}

// SetWorkerAvailability handles POST /api/v1/workers/:id/availability.
func (s *Server) SetWorkerAvailability(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id")
	}

	var body struct {
		Availability string `json:"availability"`
	}
	if err = ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	workerID, err := kernel.NewUserID(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id")
	}

	availability, err := worker.AvailabilityFromString(body.Availability)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid availability: "+err.Error())
	}

	cmd, err := commands.NewSetWorkerAvailabilityCommand(workerID, availability)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrWorkerNotRegistered) {
		return errorJSON(ctx, http.StatusNotFound, "Worker not found")
	}
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to update availability")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetWorkerActive handles POST /api/v1/workers/:id/active.
func (s *Server) SetWorkerActive(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id")
	}

	var body struct {
		Active bool `json:"active"`
	}
	if err = ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	workerID, err := kernel.NewUserID(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id")
	}

	cmd, err := commands.NewSetWorkerActiveCommand(workerID, body.Active)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	err = s.setActiveHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrWorkerNotRegistered) {
		return errorJSON(ctx, http.StatusNotFound, "Worker not found")
	}
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to update worker")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrderCandidate is the summary of one worker the announcement was sent to.
type OrderCandidate struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Trade  string `json:"trade"`
	Region string `json:"region"`
}

// CreateOrderResponse reports the stored order and the reach of its announcement.
type CreateOrderResponse struct {
	ID         int64            `json:"id"`
	Candidates []OrderCandidate `json:"candidates"`
	Delivered  int              `json:"delivered"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body struct {
		RequesterID int64  `json:"requester_id"`
		Trade       string `json:"trade"`
		Region      string `json:"region"`
		Contact     string `json:"contact"`
		Comment     string `json:"comment"`
	}
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	requesterID, err := kernel.NewUserID(body.RequesterID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid requester id")
	}

	cmd, err := commands.NewCreateOrderCommand(requesterID, body.Trade, body.Region, body.Contact, body.Comment)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if isValidationError(err) {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to create order")
	}

	candidates := make([]OrderCandidate, len(result.Candidates))
	for i, candidate := range result.Candidates {
		candidates[i] = OrderCandidate{
			ID:     candidate.ID().Int64(),
			Name:   candidate.Name(),
			Trade:  candidate.Trade(),
			Region: candidate.Region(),
		}
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:         result.Order.ID(),
		Candidates: candidates,
		Delivered:  result.Delivered,
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	limit := s.queryLimit(ctx)

	var query queries.GetOrdersQuery
	var err error
	if raw := ctx.QueryParam("requester_id"); raw != "" {
		requesterID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid requester id")
		}
		query, err = queries.NewGetOrdersForRequesterQuery(requesterID, limit)
	} else {
		query, err = queries.NewGetOrdersQuery(limit)
	}
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderJSON(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderJSON(o))
}

// ClaimResponse reports a won claim.
type ClaimResponse struct {
	OrderID    int64 `json:"order_id"`
	AcceptedBy int64 `json:"accepted_by"`
}

// ClaimOrder handles POST /api/v1/orders/:id/claims. Every worker who saw the
// announcement may call it; the first one wins, the rest get 409.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var body struct {
		WorkerID int64 `json:"worker_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	workerID, err := kernel.NewUserID(body.WorkerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, workerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid claim: "+err.Error())
	}

	result, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrWorkerNotRegistered):
		return errorJSON(ctx, http.StatusForbidden, "Worker is not registered")
	case errors.Is(err, commands.ErrOrderNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, commands.ErrOrderAlreadyAccepted):
		return errorJSON(ctx, http.StatusConflict, "Order is already accepted")
	case err != nil:
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to process claim")
	}

	return ctx.JSON(http.StatusOK, ClaimResponse{
		OrderID:    result.Order.ID(),
		AcceptedBy: result.Winner.ID().Int64(),
	})
}

// CandidateResponse is the JSON shape of one matching worker.
type CandidateResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Trade     string    `json:"trade"`
	Region    string    `json:"region"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindCandidates handles GET /api/v1/candidates. It previews which workers an
// order with the given trade and region would reach.
func (s *Server) FindCandidates(ctx echo.Context) error {
	limit := s.candidateLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid limit")
		}
		limit = min(parsed, maxQueryLimit)
	}

	query, err := queries.NewFindCandidatesQuery(
		ctx.QueryParam("trade"), ctx.QueryParam("region"), limit)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	candidates, err := s.findCandidatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to find candidates")
	}

	response := make([]CandidateResponse, len(candidates))
	for i, candidate := range candidates {
		response[i] = CandidateResponse{
			ID:        candidate.ID,
			Name:      candidate.Name,
			Trade:     candidate.Trade,
			Region:    candidate.Region,
			UpdatedAt: candidate.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// maxQueryLimit caps caller-supplied limits so a single listing request
// cannot select the whole table.
const maxQueryLimit = 100

func (s *Server) queryLimit(ctx echo.Context) int {
	if raw := ctx.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			return min(parsed, maxQueryLimit)
		}
	}
	return s.listLimit
}
