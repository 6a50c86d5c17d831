package fitness

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/2beens/fitplan/internal/bmi"
	"github.com/2beens/fitplan/internal/middleware"
	"github.com/2beens/fitplan/internal/plans"
	"github.com/2beens/fitplan/internal/telemetry/metrics"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=fitness_test

type planCatalog interface {
	Plan(goal plans.Goal) plans.GoalPlan
	Goals() []plans.GoalInfo
	Guide(exerciseName string) (plans.ExerciseGuide, bool)
}

var errGuideNotFound = errors.New("guide not found")

const (
	cacheKindPlan      = "plan"
	cacheKindNutrition = "nutrition"
)

type Handler struct {
	catalog        planCatalog
	planCache      *PlanCache
	metricsManager *metrics.Manager
	versionInfo    string
}

func NewHandler(
	catalog planCatalog,
	planCache *PlanCache,
	metricsManager *metrics.Manager,
	versionInfo string,
) *Handler {
	return &Handler{
		catalog:        catalog,
		planCache:      planCache,
		metricsManager: metricsManager,
		versionInfo:    versionInfo,
	}
}

// SetupRoutes registers all fitness routes. The rate limiter is optional;
// when nil, /bmi is served without limits.
func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	bmiAllowedPerMin int,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/goals", handler.handleGoals).Methods("GET", "OPTIONS").Name("goals")
	mainRouter.HandleFunc("/plans/{goal}", handler.handlePlan).Methods("GET", "OPTIONS").Name("plan")
	mainRouter.HandleFunc("/plans/{goal}/nutrition", handler.handlePlanNutrition).Methods("GET", "OPTIONS").Name("plan-nutrition")
	mainRouter.HandleFunc("/exercises/{name}/guide", handler.handleExerciseGuide).Methods("GET", "OPTIONS").Name("exercise-guide")
	mainRouter.HandleFunc("/progress", handler.handleProgress).Methods("GET", "OPTIONS").Name("progress")

	bmiSubrouter := mainRouter.PathPrefix("/bmi").Subrouter()
	bmiSubrouter.HandleFunc("", handler.handleBmi).Methods("GET", "POST", "OPTIONS").Name("bmi")
	if rateLimiter != nil && bmiAllowedPerMin > 0 {
		bmiSubrouter.Use(middleware.RateLimit(rateLimiter, handler.metricsManager, "bmi", bmiAllowedPerMin))
	}
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "fitplan is up and running")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleBmi(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "fitnessHandler.bmi")
	var spanErr error
	defer func() { tracing.EndSpanWithErrCheck(span, spanErr) }()

	heightRaw, weightRaw, err := readBmiInput(r)
	if err != nil {
		log.Debugf("bmi, read input: %s", err)
		spanErr = err
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	heightCm, weightKg, err := bmi.ParseInput(heightRaw, weightRaw)
	if err != nil {
		handler.metricsManager.CounterInvalidBmiInput.Inc()
		spanErr = err

		var validationErr *bmi.ValidationError
		if errors.As(err, &validationErr) {
			pkg.WriteJSON(w, ValidationErrorResponse{Errors: validationErr.Fields}, http.StatusBadRequest)
			return
		}
		http.Error(w, "invalid height or weight", http.StatusBadRequest)
		return
	}

	res, err := bmi.Classify(heightCm, weightKg)
	if err != nil {
		// ParseInput already rejects everything Classify would
		log.Errorf("bmi, classify [%v, %v]: %s", heightCm, weightKg, err)
		handler.metricsManager.CounterInvalidBmiInput.Inc()
		spanErr = err
		http.Error(w, "invalid height or weight", http.StatusBadRequest)
		return
	}

	handler.metricsManager.CounterBmiCalculations.WithLabelValues(string(res.Category)).Inc()
	span.SetAttributes(
		attribute.String("bmi.category", string(res.Category)),
		attribute.Float64("bmi.value", res.BMI),
	)

	pkg.WriteJSON(w, NewBmiResponse(res), http.StatusOK)
}

// readBmiInput takes height and weight from the query on GET, and from
// a JSON or form body on POST.
func readBmiInput(r *http.Request) (string, string, error) {
	if r.Method != http.MethodPost {
		q := r.URL.Query()
		return q.Get("height"), q.Get("weight"), nil
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		var req bmiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", "", fmt.Errorf("unmarshal json params: %w", err)
		}
		return string(req.Height), string(req.Weight), nil
	}

	if err := r.ParseForm(); err != nil {
		return "", "", fmt.Errorf("parse form: %w", err)
	}
	return r.Form.Get("height"), r.Form.Get("weight"), nil
}

func (handler *Handler) handleGoals(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "fitnessHandler.goals")
	defer span.End()

	pkg.WriteJSON(w, handler.catalog.Goals(), http.StatusOK)
}

func (handler *Handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "fitnessHandler.plan")
	var spanErr error
	defer func() { tracing.EndSpanWithErrCheck(span, spanErr) }()

	goal := handler.resolveGoal(r)
	span.SetAttributes(attribute.String("goal", string(goal)))

	spanErr = handler.writeCached(w, cacheKindPlan, goal, func() any {
		return PlanResponse{
			Goal: goal.Info(),
			Plan: handler.catalog.Plan(goal),
		}
	})
}

func (handler *Handler) handlePlanNutrition(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "fitnessHandler.planNutrition")
	var spanErr error
	defer func() { tracing.EndSpanWithErrCheck(span, spanErr) }()

	goal := handler.resolveGoal(r)
	span.SetAttributes(attribute.String("goal", string(goal)))

	spanErr = handler.writeCached(w, cacheKindNutrition, goal, func() any {
		return NewNutritionResponse(handler.catalog.Plan(goal))
	})
}

func (handler *Handler) resolveGoal(r *http.Request) plans.Goal {
	requested := mux.Vars(r)["goal"]
	goal := plans.ParseGoal(requested)
	if string(goal) != requested {
		log.Tracef("unknown goal [%s], falling back to [%s]", requested, goal)
	}
	handler.metricsManager.CounterPlanRequests.WithLabelValues(string(goal)).Inc()
	return goal
}

func (handler *Handler) writeCached(w http.ResponseWriter, kind string, goal plans.Goal, build func() any) error {
	if cached, ok := handler.planCache.Get(kind, goal); ok {
		handler.metricsManager.CounterPlanCacheHits.Inc()
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return nil
	}

	respBytes, err := json.Marshal(build())
	if err != nil {
		log.Errorf("marshal %s for goal %s: %s", kind, goal, err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return fmt.Errorf("marshal %s: %w", kind, err)
	}

	handler.planCache.Set(kind, goal, respBytes)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
	return nil
}

func (handler *Handler) handleExerciseGuide(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "fitnessHandler.exerciseGuide")
	var spanErr error
	defer func() { tracing.EndSpanWithErrCheck(span, spanErr) }()

	name := mux.Vars(r)["name"]
	span.SetAttributes(attribute.String("exercise", name))

	guide, ok := handler.catalog.Guide(name)
	if !ok {
		spanErr = fmt.Errorf("exercise guide [%s]: %w", name, errGuideNotFound)
		http.Error(w, "exercise guide not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, NewGuideResponse(guide), http.StatusOK)
}

func (handler *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "fitnessHandler.progress")
	defer span.End()

	pkg.WriteJSON(w, plans.Progress(), http.StatusOK)
}
