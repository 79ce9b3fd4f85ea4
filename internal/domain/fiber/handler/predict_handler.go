package handler

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pratikrath126/placement-predictor/internal/dto"
	"github.com/pratikrath126/placement-predictor/internal/metrics"
	"github.com/pratikrath126/placement-predictor/internal/middleware"
	"github.com/pratikrath126/placement-predictor/internal/usecase"
	"github.com/pratikrath126/placement-predictor/internal/util"
)

type PredictHandler struct {
	uc     *usecase.PredictionUsecase
	logger *zap.Logger
}

func NewPredictHandler(uc *usecase.PredictionUsecase, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{uc: uc, logger: logger}
}

func (h *PredictHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/predict", middleware.RateLimiter(20, 1*time.Second), h.Predict)
	app.Get("/model-info", h.ModelInfo)
	app.Get("/feature-importance", h.FeatureImportance)
	app.Get("/", h.Root)
}

// Predict validates the incoming profile, runs the scoring engine and the
// advisory generator, and returns the assembled response. All thresholds
// live in the engines; none are duplicated here.
func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	var req dto.PredictProfileRequest
	if err := c.BodyParser(&req); err != nil {
		metrics.ValidationFailures.Inc()
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if err := req.Validate(); err != nil {
		metrics.ValidationFailures.Inc()
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "profile validation failed",
			Details: err,
		})
	}

	resp := h.uc.Predict(req.ToProfile())
	return c.JSON(resp)
}

type modelInfoResponse struct {
	ModelName string          `json:"model_name"`
	Accuracy  float64         `json:"accuracy"`
	F1Score   float64         `json:"f1_score"`
	ROCAUC    float64         `json:"roc_auc"`
	AllModels json.RawMessage `json:"all_models"`
}

func (h *PredictHandler) ModelInfo(c *fiber.Ctx) error {
	artifact, err := h.uc.ModelInfo()
	if err != nil {
		return h.artifactError(c, err)
	}
	return c.JSON(modelInfoResponse{
		ModelName: artifact.ModelName,
		Accuracy:  artifact.Accuracy,
		F1Score:   artifact.F1Score,
		ROCAUC:    artifact.ROCAUC,
		AllModels: artifact.AllModels,
	})
}

type featureImportanceResponse struct {
	FeatureImportance json.RawMessage `json:"feature_importance"`
	Top5              json.RawMessage `json:"top_5"`
}

func (h *PredictHandler) FeatureImportance(c *fiber.Ctx) error {
	artifact, err := h.uc.ModelInfo()
	if err != nil {
		return h.artifactError(c, err)
	}
	return c.JSON(featureImportanceResponse{
		FeatureImportance: artifact.FeatureImportance,
		Top5:              artifact.TopFeatures,
	})
}

func (h *PredictHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to Placement Predictor API",
		"status":  "active",
	})
}

func (h *PredictHandler) artifactError(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrArtifactUnavailable) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusServiceUnavailable,
			Message: "model information is unavailable",
		}, err)
	}
	h.logger.Error("artifact lookup failed", zap.Error(err))
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: "internal server error",
	}, err)
}
