package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemKind classifies a budget item as a revenue or an expense line.
type ItemKind string

const (
	ItemKindRevenue ItemKind = "REVENUE"
	ItemKindExpense ItemKind = "EXPENSE"
)

// ClassifyCategory derives the item kind from a category name.
//
// This is the legacy classification rule: any category containing the
// substring "revenue" (case-insensitive) is a revenue line. It is applied
// only to items that do not carry an explicit kind, so that untagged
// payloads keep their historical behavior.
func ClassifyCategory(category string) ItemKind {
	if strings.Contains(strings.ToLower(category), "revenue") {
		return ItemKindRevenue
	}

	return ItemKindExpense
}

// BudgetItem is a single line of a budget.
type BudgetItem struct {
	DefaultModel
	Budget        Budget          `json:"-"`
	BudgetID      uuid.UUID       `json:"-"`
	Category      string          `json:"category" example:"Marketing Expenses"`
	Kind          ItemKind        `json:"kind" example:"EXPENSE"`
	PlannedAmount decimal.Decimal `json:"plannedAmount" gorm:"type:DECIMAL(20,8)" example:"5000"`
	ActualAmount  decimal.Decimal `json:"actualAmount" gorm:"type:DECIMAL(20,8)" example:"4200"`
	Variance      decimal.Decimal `json:"variance" gorm:"-" example:"800"` // planned - actual, derived
}

func (i *BudgetItem) BeforeSave(_ *gorm.DB) error {
	i.Category = strings.TrimSpace(i.Category)

	if i.Kind == "" {
		i.Kind = ClassifyCategory(i.Category)
	}

	return nil
}

func (i *BudgetItem) AfterFind(tx *gorm.DB) error {
	if err := i.DefaultModel.AfterFind(tx); err != nil {
		return err
	}

	i.Variance = i.PlannedAmount.Sub(i.ActualAmount)
	return nil
}

// Budget is the active spending plan. At most one budget exists at a time,
// replacing it discards the previous one.
type Budget struct {
	DefaultModel
	Name          string          `json:"name" example:"Draft Budget - July 2024"`
	Period        string          `json:"period" example:"July 2024"`
	Items         []BudgetItem    `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	TotalPlanned  decimal.Decimal `json:"totalPlanned" gorm:"type:DECIMAL(20,8)" example:"15000"`
	TotalActual   decimal.Decimal `json:"totalActual" gorm:"type:DECIMAL(20,8)" example:"0"`
	TotalVariance decimal.Decimal `json:"totalVariance" gorm:"type:DECIMAL(20,8)" example:"15000"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Period = strings.TrimSpace(b.Period)

	return nil
}

// RecomputeTotals aggregates the expense lines of an item list.
//
// Revenue lines are excluded from all three totals: the planned and actual
// totals are expense totals, the variance is their difference.
func RecomputeTotals(items []BudgetItem) (planned, actual, variance decimal.Decimal) {
	for _, item := range items {
		kind := item.Kind
		if kind == "" {
			kind = ClassifyCategory(item.Category)
		}

		if kind == ItemKindRevenue {
			continue
		}

		planned = planned.Add(item.PlannedAmount)
		actual = actual.Add(item.ActualAmount)
	}

	variance = planned.Sub(actual)
	return
}

// Recompute replaces the three totals with the recomputed aggregate over
// the current item list and refreshes the per-item variances. It must be
// called for every item mutation, never deferred.
func (b *Budget) Recompute() {
	for i := range b.Items {
		b.Items[i].Variance = b.Items[i].PlannedAmount.Sub(b.Items[i].ActualAmount)
	}

	b.TotalPlanned, b.TotalActual, b.TotalVariance = RecomputeTotals(b.Items)
}

// RevenueSum returns the planned sum over the revenue lines of the budget.
func (b Budget) RevenueSum() decimal.Decimal {
	var sum decimal.Decimal
	for _, item := range b.Items {
		if item.Kind == ItemKindRevenue {
			sum = sum.Add(item.PlannedAmount)
		}
	}

	return sum
}

// ExpenseSum returns the planned sum over the expense lines of the budget.
func (b Budget) ExpenseSum() decimal.Decimal {
	var sum decimal.Decimal
	for _, item := range b.Items {
		if item.Kind != ItemKindRevenue {
			sum = sum.Add(item.PlannedAmount)
		}
	}

	return sum
}

// ActiveBudget returns the currently active budget with its items in
// display order.
func ActiveBudget(db *gorm.DB) (Budget, error) {
	var budget Budget
	// Items created in the same batch share a timestamp, the rowid keeps
	// the order stable
	err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("budget_items.created_at ASC, budget_items.rowid ASC")
	}).First(&budget).Error

	return budget, err
}

// ReplaceBudget makes the passed budget the active one, discarding any
// previous budget together with its items.
func ReplaceBudget(db *gorm.DB, budget *Budget) error {
	budget.Recompute()

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Select(clause.Associations).Delete(&Budget{}).Error
		if err != nil {
			return err
		}

		err = tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&BudgetItem{}).Error
		if err != nil {
			return err
		}

		return tx.Create(budget).Error
	})
}

// SaveBudget persists an edit of the active budget, recomputing totals
// first so that stored totals can never drift from the item list.
func SaveBudget(db *gorm.DB, budget *Budget) error {
	budget.Recompute()

	return db.Transaction(func(tx *gorm.DB) error {
		// Replace the item list so that removed items do not linger
		err := tx.Unscoped().Where(&BudgetItem{BudgetID: budget.ID}).Delete(&BudgetItem{}).Error
		if err != nil {
			return err
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(budget).Error
	})
}

// DeleteBudget discards the active budget.
func DeleteBudget(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&BudgetItem{}).Error
		if err != nil {
			return err
		}

		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&Budget{}).Error
	})
}
