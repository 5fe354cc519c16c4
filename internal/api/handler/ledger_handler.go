package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/api/metrics"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

// LedgerHandler handles coin grants, purchases, and transaction history.
type LedgerHandler struct {
	service ports.LedgerService
}

func NewLedgerHandler(service ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// GiveCoins credits a student with coins.
//
// @Summary      Grant coins to a student
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      giveCoinsRequest  true  "Grant details"
// @Success      200   {object}  newBalanceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /give-coins [post]
func (h *LedgerHandler) GiveCoins(c echo.Context) error {
	var req giveCoinsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	balance, err := h.service.GrantCoins(c.Request().Context(), actor.ID, req.StudentID, req.Amount, req.Reason)
	if err != nil {
		metrics.LedgerErrorsTotal.WithLabelValues(errReason(err)).Inc()
		return err
	}

	metrics.CoinsGrantedTotal.Inc()
	metrics.CoinsGrantedAmount.Add(float64(req.Amount))

	return c.JSON(http.StatusOK, newBalanceResponse{Success: true, NewBalance: balance})
}

// BuyItem purchases a catalog item for the acting student.
//
// @Summary      Buy a catalog item
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      buyItemRequest  true  "Item to purchase"
// @Success      200   {object}  newBalanceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /buy-item [post]
func (h *LedgerHandler) BuyItem(c echo.Context) error {
	var req buyItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	balance, err := h.service.PurchaseItem(c.Request().Context(), actor.ID, req.ItemID)
	if err != nil {
		metrics.LedgerErrorsTotal.WithLabelValues(errReason(err)).Inc()
		return err
	}

	metrics.PurchasesTotal.WithLabelValues(req.ItemID).Inc()

	return c.JSON(http.StatusOK, newBalanceResponse{Success: true, NewBalance: balance})
}

// ListTransactions returns a student's ledger history, newest first.
//
// @Summary      List a student's transactions
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        studentId  path      string  true  "10-digit student ID"
// @Success      200        {object}  transactionsResponse
// @Failure      401        {object}  errorResponse
// @Router       /transactions/{studentId} [get]
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	if _, err := ctxActor(c); err != nil {
		return err
	}

	txs, err := h.service.ListTransactions(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transactionsResponse{Transactions: txs})
}

// errReason classifies a ledger failure for the error counter. Labels stay a
// small fixed set so cardinality is bounded.
func errReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotAuthorized):
		return "not_authorized"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrStudentNotFound):
		return "student_not_found"
	case errors.Is(err, domain.ErrItemNotFound):
		return "item_not_found"
	case errors.Is(err, domain.ErrItemUnavailable):
		return "item_unavailable"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	default:
		return "store_failure"
	}
}
