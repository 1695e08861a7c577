// Package session implements the application state orchestrator.
//
// A Session owns all top-level state that is not a stored resource: the
// current view, the recommendation list and the set of in-flight engine
// operations. It sequences the engines and converts their failures into
// alerts; engine errors never propagate past the session boundary
// unhandled, and a failed operation always leaves the previously produced
// state untouched.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/budgetai/backend/internal/engine"
	"github.com/budgetai/backend/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Operation names used for in-flight tracking.
const (
	OpRefresh     = "refresh"
	OpDraftBudget = "draft-budget"
	OpScenario    = "scenario"
)

const welcomeMessage = "Welcome to BudgetAI! Consider importing your latest financials."

// Session is the application state orchestrator. All methods are safe for
// concurrent use; state replacement is the only mutation discipline.
type Session struct {
	engine *engine.Engine

	mu              sync.Mutex
	view            View
	recommendations []string
	inFlight        map[string]int
}

// New returns a Session showing the dashboard.
func New(e *engine.Engine) *Session {
	return &Session{
		engine:   e,
		view:     ViewDashboard,
		inFlight: make(map[string]int),
	}
}

// View returns the current view.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SwitchView makes the passed view the current one.
func (s *Session) SwitchView(view View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// Loading reports whether any engine operation is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inFlight) > 0
}

// InFlight returns the in-flight engine operations by name. Operations are
// tracked individually so that overlapping requests report correctly.
func (s *Session) InFlight() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ops := make(map[string]int, len(s.inFlight))
	for op, count := range s.inFlight {
		ops[op] = count
	}

	return ops
}

// Recommendations returns the current recommendation list.
func (s *Session) Recommendations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	recommendations := make([]string, len(s.recommendations))
	copy(recommendations, s.recommendations)
	return recommendations
}

func (s *Session) begin(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight[op]++
}

func (s *Session) end(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight[op]--
	if s.inFlight[op] <= 0 {
		delete(s.inFlight, op)
	}
}

// Import replaces the historical data set, switches to the dashboard and
// triggers a full forecast and recommendation refresh.
func (s *Session) Import(ctx context.Context, points []models.HistoricalDataPoint) error {
	err := models.ReplaceHistoricalData(models.DB, points)
	if err != nil {
		return err
	}

	s.SwitchView(ViewDashboard)

	return s.Refresh(ctx)
}

// Refresh fires all three forecasts and the recommendation call
// concurrently and joins them all-or-nothing: on success all four pieces
// of state are replaced atomically, on any failure the prior state stays
// untouched and a single error alert is appended.
//
// Once issued, the engine calls are not canceled when the caller goes
// away; a late success still updates state.
func (s *Session) Refresh(ctx context.Context) error {
	history, err := models.HistoricalData(models.DB)
	if err != nil {
		return err
	}

	if len(history) == 0 {
		return models.ErrHistoricalDataEmpty
	}

	var budget *models.Budget
	active, err := models.ActiveBudget(models.DB)
	if err == nil {
		budget = &active
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		return err
	}

	s.begin(OpRefresh)
	defer s.end(OpRefresh)

	var revenue, expenses, cashflow models.Forecast
	var recommendations []string

	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.Go(func() (err error) {
		revenue, err = s.engine.ForecastRevenue(gctx, history)
		return
	})
	g.Go(func() (err error) {
		expenses, err = s.engine.ForecastExpenses(gctx, history)
		return
	})
	g.Go(func() (err error) {
		cashflow, err = s.engine.ForecastCashflow(gctx, history)
		return
	})
	g.Go(func() (err error) {
		recommendations, err = s.engine.Recommendations(gctx, budget)
		return
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("forecast refresh failed")

		_, alertErr := models.AppendAlert(models.DB, models.AlertTypeError, models.AlertSeverityError, "Failed to load initial forecast data.", "")
		if alertErr != nil {
			return alertErr
		}

		return err
	}

	err = models.ReplaceForecasts(models.DB, []models.Forecast{revenue, expenses, cashflow})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.recommendations = recommendations
	s.mu.Unlock()

	// The welcome alert is only appended once; alerts are append-only,
	// so later refreshes get their own message.
	message := "Forecasts and recommendations updated."
	var count int64
	if err := models.DB.Model(&models.Alert{}).Count(&count).Error; err == nil && count == 0 {
		message = welcomeMessage
	}

	_, err = models.AppendAlert(models.DB, models.AlertTypeInfo, models.AlertSeverityInfo, message, "")
	return err
}

// GenerateDraftBudget derives a draft budget from the historical data and
// the current forecasts and makes it the active budget.
//
// Generating a draft requires at least one of the two bases to exist; the
// guard runs before any engine call.
func (s *Session) GenerateDraftBudget(ctx context.Context) (models.Budget, error) {
	history, err := models.HistoricalData(models.DB)
	if err != nil {
		return models.Budget{}, err
	}

	var revenueForecast, expenseForecast *models.Forecast
	if forecast, err := models.ForecastByKind(models.DB, models.ForecastRevenue); err == nil {
		revenueForecast = &forecast
	}
	if forecast, err := models.ForecastByKind(models.DB, models.ForecastExpenses); err == nil {
		expenseForecast = &forecast
	}

	if len(history) == 0 && revenueForecast == nil && expenseForecast == nil {
		return models.Budget{}, models.ErrNoBudgetBasis
	}

	s.begin(OpDraftBudget)
	defer s.end(OpDraftBudget)

	budget, err := s.engine.DraftBudget(context.WithoutCancel(ctx), history, revenueForecast, expenseForecast)
	if err != nil {
		log.Error().Err(err).Msg("draft budget generation failed")

		_, alertErr := models.AppendAlert(models.DB, models.AlertTypeError, models.AlertSeverityError, "Error generating draft budget. Please try again.", "")
		if alertErr != nil {
			return models.Budget{}, alertErr
		}

		return models.Budget{}, err
	}

	err = models.ReplaceBudget(models.DB, &budget)
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// CreateEmptyBudget makes a fresh starter budget the active one.
func (s *Session) CreateEmptyBudget() (models.Budget, error) {
	budget := s.engine.EmptyBudget()

	err := models.ReplaceBudget(models.DB, &budget)
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// RunScenario analyzes a scenario against the active budget. It returns
// the scenario as persisted, with its assigned ID, together with the
// result.
//
// Without an active budget, a warning alert is appended and no engine call
// is made. On success, the scenario and its result are appended to their
// histories and an info alert is emitted; on engine failure an error alert
// is appended and nothing else changes.
func (s *Session) RunScenario(ctx context.Context, scenario models.Scenario) (models.Scenario, models.ScenarioResult, error) {
	budget, err := models.ActiveBudget(models.DB)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			_, alertErr := models.AppendAlert(models.DB, models.AlertTypeWarning, models.AlertSeverityWarning, "Please create a budget before running scenarios.", "")
			if alertErr != nil {
				return models.Scenario{}, models.ScenarioResult{}, alertErr
			}

			return models.Scenario{}, models.ScenarioResult{}, models.ErrNoActiveBudget
		}

		return models.Scenario{}, models.ScenarioResult{}, err
	}

	s.begin(OpScenario)
	defer s.end(OpScenario)

	result, err := s.engine.AnalyzeScenario(context.WithoutCancel(ctx), budget, scenario.Params)
	if err != nil {
		log.Error().Err(err).Str("scenario", scenario.Name).Msg("scenario analysis failed")

		_, alertErr := models.AppendAlert(models.DB, models.AlertTypeError, models.AlertSeverityError, fmt.Sprintf("Failed to analyze scenario %q.", scenario.Name), "")
		if alertErr != nil {
			return models.Scenario{}, models.ScenarioResult{}, alertErr
		}

		return models.Scenario{}, models.ScenarioResult{}, err
	}

	err = models.AppendScenarioRun(models.DB, &scenario, &result)
	if err != nil {
		return models.Scenario{}, models.ScenarioResult{}, err
	}

	_, err = models.AppendAlert(models.DB, models.AlertTypeInfo, models.AlertSeverityInfo, fmt.Sprintf("Scenario %q analyzed.", scenario.Name), scenario.ID.String())
	if err != nil {
		return models.Scenario{}, models.ScenarioResult{}, err
	}

	return scenario, result, nil
}
