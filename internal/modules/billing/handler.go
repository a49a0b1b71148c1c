package billing

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/meritlives/tools-core/internal/middleware"
	"github.com/meritlives/tools-core/internal/models"
	"github.com/meritlives/tools-core/internal/pkg/pagination"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

type Handler struct {
	svc         *Service
	usage       *UsageService
	ps          *PaystackClient
	callbackURL string
	logger      *zap.Logger
}

func NewHandler(svc *Service, usage *UsageService, ps *PaystackClient, callbackURL string, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, usage: usage, ps: ps, callbackURL: callbackURL, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/payments")
	g.GET("/plans", h.listPlans)
	g.POST("/webhook", h.webhook)

	a := g.Group("", authMW)
	a.POST("/initialize", h.initialize)
	a.GET("/verify/:reference", h.verify)
	a.POST("/cancel-subscription", h.cancelSubscription)
	a.GET("/transaction-history", h.transactionHistory)

	rg.GET("/subscription", authMW, h.subscription)
}

func (h *Handler) listPlans(c *gin.Context) {
	response.OK(c, gin.H{"plans": Plans()})
}

func (h *Handler) initialize(c *gin.Context) {
	var dto InitializePaymentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "")
		return
	}

	plan, ok := PlanByID(dto.Plan)
	if !ok {
		response.BadRequest(c, ErrUnknownPlan.Error())
		return
	}
	if plan.AmountKobo == 0 {
		response.BadRequest(c, ErrTrialNotPurchasable.Error())
		return
	}
	if !h.ps.Enabled() {
		response.InternalError(c, "Payment provider is not configured")
		return
	}

	userID := middleware.CurrentUserID(c)
	user, err := h.svc.User(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "")
		return
	}

	txn, err := h.ps.InitializeTransaction(c.Request.Context(), InitializeTransactionRequest{
		Email:       user.Email,
		Amount:      plan.AmountKobo,
		Currency:    "NGN",
		CallbackURL: h.callbackURL,
		Metadata: map[string]interface{}{
			"user_id":           userID,
			"subscription_plan": plan.ID,
			"custom_fields": []map[string]string{
				{
					"display_name":  "Subscription Plan",
					"variable_name": "subscription_plan",
					"value":         plan.Name,
				},
			},
		},
	})
	if err != nil {
		h.logger.Warn("paystack initialize failed", zap.String("user_id", userID), zap.Error(err))
		response.InternalError(c, "Unable to initialize payment")
		return
	}

	response.OK(c, CheckoutResponse{
		AuthorizationURL: txn.AuthorizationURL,
		AccessCode:       txn.AccessCode,
		Reference:        txn.Reference,
	})
}

func (h *Handler) verify(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		response.BadRequest(c, "")
		return
	}

	txn, err := h.ps.VerifyTransaction(c.Request.Context(), reference)
	if err != nil {
		h.logger.Warn("paystack verify failed", zap.String("reference", reference), zap.Error(err))
		response.InternalError(c, "Unable to verify payment")
		return
	}
	if txn.Status != "success" {
		response.BadRequest(c, "Payment was not successful")
		return
	}

	planID, _ := txn.Metadata["subscription_plan"].(string)
	plan, ok := PlanByID(planID)
	if !ok {
		response.BadRequest(c, ErrUnknownPlan.Error())
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.svc.ApplyPayment(c.Request.Context(), userID, plan, txn); err != nil {
		response.InternalError(c, "")
		return
	}

	resp := VerifyResponse{
		Plan:     plan.ID,
		Amount:   float64(txn.Amount) / 100,
		Customer: txn.Customer.Email,
	}
	if paidAt, perr := time.Parse(time.RFC3339, txn.PaidAt); perr == nil {
		resp.PaidAt = &paidAt
	}
	response.OK(c, resp)
}

type webhookEvent struct {
	Event string          `json:"event"`
	Data  TransactionData `json:"data"`
}

func (h *Handler) webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "")
		return
	}
	if !h.ps.VerifyWebhookSignature(body, c.GetHeader("x-paystack-signature")) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": 0, "code": http.StatusBadRequest, "message": "Invalid signature"})
		return
	}

	var evt webhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		response.BadRequest(c, "")
		return
	}

	ctx := c.Request.Context()
	switch evt.Event {
	case "charge.success":
		userID, _ := evt.Data.Metadata["user_id"].(string)
		planID, _ := evt.Data.Metadata["subscription_plan"].(string)
		plan, ok := PlanByID(planID)
		if userID == "" || !ok {
			h.logger.Warn("charge.success missing metadata", zap.String("reference", evt.Data.Reference))
			break
		}
		if err := h.svc.ApplyPayment(ctx, userID, plan, &evt.Data); err != nil {
			h.logger.Error("apply payment failed", zap.String("reference", evt.Data.Reference), zap.Error(err))
		}
	case "subscription.disable":
		if code := evt.Data.Customer.CustomerCode; code != "" {
			if err := h.svc.CancelByCustomerCode(ctx, code); err != nil {
				h.logger.Error("cancel by customer code failed", zap.Error(err))
			}
		}
	case "invoice.payment_failed":
		if code := evt.Data.Customer.CustomerCode; code != "" {
			if err := h.svc.ExpireByCustomerCode(ctx, code); err != nil {
				h.logger.Error("expire by customer code failed", zap.Error(err))
			}
		}
	case "subscription.create":
		// Recorded via charge.success; nothing extra to persist.
	default:
		h.logger.Debug("unhandled paystack event", zap.String("event", evt.Event))
	}

	// Paystack retries non-200 responses, so acknowledge even skipped events.
	c.Status(http.StatusOK)
}

func (h *Handler) cancelSubscription(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	sub, err := h.svc.Cancel(c.Request.Context(), userID)
	if err != nil {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"plan": sub.Plan, "status": sub.Status, "auto_renew": sub.AutoRenew})
}

func (h *Handler) transactionHistory(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	q := pagination.FromContext(c)

	var rows []models.PaymentModel
	pag, err := pagination.Paginate(h.svc.PaymentsQuery(c.Request.Context(), userID), q, &rows)
	if err != nil {
		response.InternalError(c, "")
		return
	}

	out := make([]TransactionRecord, 0, len(rows))
	for _, p := range rows {
		out = append(out, TransactionRecord{
			Reference: p.Reference,
			Amount:    float64(p.Amount) / 100,
			Status:    p.Status,
			PaidAt:    p.PaidAt,
			Channel:   p.Channel,
		})
	}
	response.Paged(c, out, pag)
}

func (h *Handler) subscription(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	ctx := c.Request.Context()
	plan := h.usage.CurrentPlan(ctx, userID)

	resp := SubscriptionResponse{
		Plan:       plan.ID,
		Status:     models.SubscriptionTrialing,
		DailyUsed:  h.usage.UsedToday(ctx, userID),
		DailyLimit: plan.DailyGenerations,
		SavedLimit: plan.SavedContent,
	}
	if sub, err := h.svc.Current(ctx, userID); err == nil {
		resp.Status = sub.Status
		resp.StartDate = sub.StartDate
		resp.EndDate = sub.EndDate
		resp.TrialEndDate = sub.TrialEndDate
		resp.AutoRenew = sub.AutoRenew
	}
	response.OK(c, resp)
}
