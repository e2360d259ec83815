// Package http provides the inbound HTTP adapter: route registration, request
// decoding, actor resolution, and mapping of domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitSellerRequestHandler  commands.SubmitSellerRequestCommandHandler
	approveSellerRequestHandler commands.ApproveSellerRequestCommandHandler
	rejectSellerRequestHandler  commands.RejectSellerRequestCommandHandler
	verifySellerHandler         commands.VerifySellerCommandHandler
	markOrderPaidHandler        commands.MarkOrderPaidCommandHandler

	// Query handlers
	getAllSellersHandler            queries.GetAllSellersQueryHandler
	getSellerByUserHandler          queries.GetSellerByUserQueryHandler
	getPendingSellerRequestsHandler queries.GetPendingSellerRequestsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitSellerRequestHandler commands.SubmitSellerRequestCommandHandler,
	approveSellerRequestHandler commands.ApproveSellerRequestCommandHandler,
	rejectSellerRequestHandler commands.RejectSellerRequestCommandHandler,
	verifySellerHandler commands.VerifySellerCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	getAllSellersHandler queries.GetAllSellersQueryHandler,
	getSellerByUserHandler queries.GetSellerByUserQueryHandler,
	getPendingSellerRequestsHandler queries.GetPendingSellerRequestsQueryHandler,
) *Server {
	return &Server{
		submitSellerRequestHandler:      submitSellerRequestHandler,
		approveSellerRequestHandler:     approveSellerRequestHandler,
		rejectSellerRequestHandler:      rejectSellerRequestHandler,
		verifySellerHandler:             verifySellerHandler,
		markOrderPaidHandler:            markOrderPaidHandler,
		getAllSellersHandler:            getAllSellersHandler,
		getSellerByUserHandler:          getSellerByUserHandler,
		getPendingSellerRequestsHandler: getPendingSellerRequestsHandler,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/seller-requests", s.SubmitSellerRequest)
	api.GET("/seller-requests", s.GetPendingSellerRequests)
	api.POST("/seller-requests/:id/approve", s.ApproveSellerRequest)
	api.POST("/seller-requests/:id/reject", s.RejectSellerRequest)

	api.GET("/sellers", s.GetSellers)
	api.GET("/sellers/user/:userId", s.GetSellerByUser)
	api.POST("/sellers/:id/verify", s.VerifySeller)

	api.POST("/orders/:id/pay", s.MarkOrderPaid)
}

// SubmitSellerRequest handles POST /api/v1/seller-requests.
func (s *Server) SubmitSellerRequest(ctx echo.Context) error {
	var body SubmitSellerRequestRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewSubmitSellerRequestCommand(
		actorFromContext(ctx),
		requestID,
		stringFromContext(ctx, userNameContextKey),
		stringFromContext(ctx, userEmailContextKey),
		body.ShopName,
		body.Phone,
		body.SellingType,
		body.PaymentMethod,
		body.PaymentAccount,
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.submitSellerRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitSellerRequestResponse{ID: requestID.String()})
}

// GetPendingSellerRequests handles GET /api/v1/seller-requests.
func (s *Server) GetPendingSellerRequests(ctx echo.Context) error {
	query := queries.NewGetPendingSellerRequestsQuery(actorFromContext(ctx))

	backlog, err := s.getPendingSellerRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]PendingSellerRequest, len(backlog))
	for i, request := range backlog {
		response[i] = PendingSellerRequest{
			ID:            request.ID.String(),
			UserID:        request.UserID.String(),
			UserName:      request.UserName,
			UserEmail:     request.UserEmail,
			ShopName:      request.ShopName,
			Phone:         request.Phone,
			SellingType:   request.SellingType,
			PaymentMethod: request.PaymentMethod,
			CreatedAt:     request.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApproveSellerRequest handles POST /api/v1/seller-requests/:id/approve.
func (s *Server) ApproveSellerRequest(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request ID",
		})
	}

	cmd, err := commands.NewApproveSellerRequestCommand(actorFromContext(ctx), requestID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.approveSellerRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectSellerRequest handles POST /api/v1/seller-requests/:id/reject.
func (s *Server) RejectSellerRequest(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request ID",
		})
	}

	var body RejectSellerRequestRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRejectSellerRequestCommand(actorFromContext(ctx), requestID, body.Reason)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.rejectSellerRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSellers handles GET /api/v1/sellers.
func (s *Server) GetSellers(ctx echo.Context) error {
	query := queries.NewGetAllSellersQuery()

	sellers, err := s.getAllSellersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]Seller, len(sellers))
	for i, entry := range sellers {
		response[i] = toSellerResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSellerByUser handles GET /api/v1/sellers/user/:userId.
func (s *Server) GetSellerByUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	query, err := queries.NewGetSellerByUserQuery(userID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	entry, err := s.getSellerByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSellerResponse(entry))
}

// VerifySeller handles POST /api/v1/sellers/:id/verify.
func (s *Server) VerifySeller(ctx echo.Context) error {
	sellerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid seller ID",
		})
	}

	cmd, err := commands.NewVerifySellerCommand(actorFromContext(ctx), sellerID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.verifySellerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/orders/:id/pay.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewMarkOrderPaidCommand(actorFromContext(ctx), orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toSellerResponse(entry queries.GetAllSellersQueryResponse) Seller {
	return Seller{
		ID:           entry.ID.String(),
		UserID:       entry.UserID.String(),
		ShopName:     entry.ShopName,
		IsVerified:   entry.IsVerified,
		IsActive:     entry.IsActive,
		Rating:       entry.Rating,
		TotalSales:   entry.TotalSales,
		ResponseRate: entry.ResponseRate,
		CreatedAt:    entry.CreatedAt,
	}
}

// writeDomainError maps domain error kinds to HTTP status codes.
func writeDomainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyProcessed), errors.Is(err, errs.ErrAlreadyApplied):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
