package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OneTimeDelta is a single one-off amount applied by a scenario.
type OneTimeDelta struct {
	Amount      decimal.Decimal `json:"amount" example:"10000"`
	Description string          `json:"description" example:"New equipment purchase"`
}

// ScenarioParams are the deltas a scenario applies to the active budget.
// All fields are optional; absent fields apply no change.
type ScenarioParams struct {
	RevenueChangePercent *decimal.Decimal `json:"revenueChangePercent,omitempty" example:"0.2"`  // 0.1 is +10%, -0.2 is -20%
	ExpenseChangePercent *decimal.Decimal `json:"expenseChangePercent,omitempty" example:"0.05"` // 0.1 is +10%, -0.2 is -20%
	OneTimeExpense       *OneTimeDelta    `json:"oneTimeExpense,omitempty"`
	OneTimeRevenue       *OneTimeDelta    `json:"oneTimeRevenue,omitempty"`
	CustomPrompt         string           `json:"customPrompt,omitempty"`
}

// Scenario is a named set of hypothetical deltas. Scenarios are immutable
// once created and accumulate in an append-only history.
type Scenario struct {
	DefaultModel
	Name        string         `json:"name" example:"Aggressive Growth"`
	Description string         `json:"description" example:"Assumes 20% revenue increase"`
	Params      ScenarioParams `json:"params" gorm:"serializer:json"`
}

func (s *Scenario) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)

	return nil
}

// ScenarioResult is the projected outcome for one scenario, appended in
// the same order as the scenario it references.
type ScenarioResult struct {
	DefaultModel
	Scenario           Scenario         `json:"-"`
	ScenarioID         uuid.UUID        `json:"scenarioId" gorm:"uniqueIndex"`
	ImpactSummary      string           `json:"impactSummary"`
	ProjectedRevenue   *decimal.Decimal `json:"projectedRevenue,omitempty" gorm:"type:DECIMAL(20,8)" example:"60000"`
	ProjectedExpenses  *decimal.Decimal `json:"projectedExpenses,omitempty" gorm:"type:DECIMAL(20,8)" example:"15000"`
	ProjectedCashflow  *decimal.Decimal `json:"projectedCashflow,omitempty" gorm:"type:DECIMAL(20,8)" example:"45000"`
}

func (r *ScenarioResult) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*ScenarioResult)
	return r.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that the referenced scenario exists.
func (r *ScenarioResult) checkIntegrity(tx *gorm.DB, toSave ScenarioResult) error {
	return tx.First(&Scenario{}, toSave.ScenarioID).Error
}

// Scenarios returns the scenario history in append order.
func Scenarios(db *gorm.DB) ([]Scenario, error) {
	var scenarios []Scenario
	err := db.Order("created_at ASC").Find(&scenarios).Error
	return scenarios, err
}

// ScenarioResults returns the result history in append order.
func ScenarioResults(db *gorm.DB) ([]ScenarioResult, error) {
	var results []ScenarioResult
	err := db.Order("created_at ASC").Find(&results).Error
	return results, err
}

// AppendScenarioRun stores a scenario together with its result. Nothing is
// appended when either write fails.
func AppendScenarioRun(db *gorm.DB, scenario *Scenario, result *ScenarioResult) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(scenario).Error; err != nil {
			return err
		}

		result.ScenarioID = scenario.ID
		return tx.Create(result).Error
	})
}
