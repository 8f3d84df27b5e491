package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sellerkit/restock-go/internal/config"
	"github.com/sellerkit/restock-go/internal/domain"
	"github.com/sellerkit/restock-go/internal/ingest"
	"github.com/sellerkit/restock-go/internal/service"
)

type RestockHandler struct {
	service *service.RestockService
	appCfg  config.AppConfig
	policy  config.PolicyConfig
}

func NewRestockHandler(svc *service.RestockService, appCfg config.AppConfig, policy config.PolicyConfig) *RestockHandler {
	return &RestockHandler{service: svc, appCfg: appCfg, policy: policy}
}

// parseRequest builds a RunRequest from query parameters, falling back to
// the configured defaults for anything not supplied.
func (h *RestockHandler) parseRequest(c *gin.Context) (service.RunRequest, error) {
	req := service.RunRequest{
		Brand: h.appCfg.DefaultBrand,
		Params: domain.PolicyParams{
			LeadTimeDays:       h.policy.LeadTimeDays,
			SafetyStockDays:    h.policy.SafetyStockDays,
			DesiredDaysOfCover: h.policy.DesiredDaysOfCover,
		},
	}

	if brand := strings.TrimSpace(c.Query("brand")); brand != "" {
		req.Brand = brand
	}

	parseIntParam := func(param string, dest *int) error {
		value := strings.TrimSpace(c.Query(param))
		if value == "" {
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.New("invalid " + param + " value")
		}
		*dest = n
		return nil
	}

	if err := parseIntParam("lead_time_days", &req.Params.LeadTimeDays); err != nil {
		return req, err
	}
	if err := parseIntParam("safety_stock_days", &req.Params.SafetyStockDays); err != nil {
		return req, err
	}
	if err := parseIntParam("desired_days_of_cover", &req.Params.DesiredDaysOfCover); err != nil {
		return req, err
	}

	policy, err := domain.ParseDuplicatePolicy(strings.TrimSpace(c.Query("duplicate_policy")))
	if err != nil {
		return req, err
	}
	if policy == domain.LastWins && c.Query("duplicate_policy") == "" {
		policy, err = domain.ParseDuplicatePolicy(h.appCfg.DuplicatePolicy)
		if err != nil {
			return req, err
		}
	}
	req.DuplicatePolicy = policy

	return req, nil
}

// GetRecommendations runs the engine and returns the ranked list. Zero
// recommendations is a normal 200 response with an empty list.
func (h *RestockHandler) GetRecommendations(c *gin.Context) {
	req, err := h.parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Run(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ingest.ErrSourceUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data source unavailable", "details": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"brand":            result.Brand,
		"params":           result.Params,
		"skus_evaluated":   result.SkusEvaluated,
		"count":            len(result.Recommendations),
		"recommendations":  result.Recommendations,
		"generated_at":     result.GeneratedAt,
		"duplicate_policy": result.DuplicatePolicy,
	})
}

// GetPolicyDefaults exposes the configured policy defaults so clients can
// pre-fill their forms.
func (h *RestockHandler) GetPolicyDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"lead_time_days":        h.policy.LeadTimeDays,
		"safety_stock_days":     h.policy.SafetyStockDays,
		"desired_days_of_cover": h.policy.DesiredDaysOfCover,
		"default_brand":         h.appCfg.DefaultBrand,
	})
}
