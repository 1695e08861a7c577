package v1

import (
	"net/http"

	"github.com/budgetai/backend/internal/httputil"
	"github.com/budgetai/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for the active budget with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// The active budget is a singleton
	{
		r.OPTIONS("", OptionsBudget)
		r.GET("", GetBudget)
		r.POST("", CreateBudget)
		r.PATCH("", UpdateBudget)
		r.DELETE("", DeleteBudget)
	}

	{
		r.OPTIONS("/draft", OptionsBudgetDraft)
		r.POST("/draft", CreateDraftBudget)
	}

	// Budget items
	{
		r.OPTIONS("/items", OptionsBudgetItems)
		r.POST("/items", CreateBudgetItem)

		r.OPTIONS("/items/:id", OptionsBudgetItemDetail)
		r.PATCH("/items/:id", UpdateBudgetItem)
		r.DELETE("/items/:id", DeleteBudgetItem)
	}
}

// BudgetItemEditable are the user-settable fields of a budget item.
type BudgetItemEditable struct {
	Category      string          `json:"category" binding:"required" example:"Marketing Expenses"`
	Kind          models.ItemKind `json:"kind" example:"EXPENSE"`
	PlannedAmount decimal.Decimal `json:"plannedAmount" example:"5000"`
	ActualAmount  decimal.Decimal `json:"actualAmount" example:"4200"`
}

func (editable BudgetItemEditable) model() models.BudgetItem {
	return models.BudgetItem{
		Category:      editable.Category,
		Kind:          editable.Kind,
		PlannedAmount: editable.PlannedAmount,
		ActualAmount:  editable.ActualAmount,
	}
}

// BudgetEditable are the user-settable fields of the active budget.
type BudgetEditable struct {
	Name   string               `json:"name" binding:"required" example:"Q3 Operating Budget"`
	Period string               `json:"period" example:"July 2024"`
	Items  []BudgetItemEditable `json:"items"`
}

func (editable BudgetEditable) model() models.Budget {
	items := make([]models.BudgetItem, 0, len(editable.Items))
	for _, item := range editable.Items {
		items = append(items, item.model())
	}

	return models.Budget{
		Name:   editable.Name,
		Period: editable.Period,
		Items:  items,
	}
}

// BudgetPatch are the fields of the active budget that can be updated
// individually. Absent fields keep their current value.
type BudgetPatch struct {
	Name   *string               `json:"name" example:"Q3 Operating Budget"`
	Period *string               `json:"period" example:"July 2024"`
	Items  *[]BudgetItemEditable `json:"items"`
}

// BudgetItemPatch are the fields of a budget item that can be updated
// individually. Absent fields keep their current value.
type BudgetItemPatch struct {
	Category      *string          `json:"category" example:"Marketing Expenses"`
	Kind          *models.ItemKind `json:"kind" example:"EXPENSE"`
	PlannedAmount *decimal.Decimal `json:"plannedAmount" example:"5000"`
	ActualAmount  *decimal.Decimal `json:"actualAmount" example:"4200"`
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`                                                   // The active budget
	Error *string        `json:"error" example:"there is no budget matching your query"` // The error, if any occurred
}

// OptionsBudget returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget
//	@Success		204
//	@Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPostPatchDelete(c)
}

// OptionsBudgetDraft returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget
//	@Success		204
//	@Router			/v1/budget/draft [options]
func OptionsBudgetDraft(c *gin.Context) {
	httputil.OptionsPost(c)
}

// OptionsBudgetItems returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget
//	@Success		204
//	@Router			/v1/budget/items [options]
func OptionsBudgetItems(c *gin.Context) {
	httputil.OptionsPost(c)
}

// OptionsBudgetItemDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget
//	@Success		204
//	@Router			/v1/budget/items/{id} [options]
func OptionsBudgetItemDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// GetBudget returns the active budget
//
//	@Summary		Get budget
//	@Description	Returns the active budget with its items
//	@Tags			Budget
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		404	{object}	BudgetResponse
//	@Failure		500	{object}	BudgetResponse
//	@Router			/v1/budget [get]
func GetBudget(c *gin.Context) {
	budget, err := models.ActiveBudget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// CreateBudget makes a new budget the active one
//
//	@Summary		Create budget
//	@Description	Replaces the active budget. An empty request body creates a fresh starter budget.
//	@Tags			Budget
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	BudgetResponse
//	@Failure		400		{object}	BudgetResponse
//	@Failure		500		{object}	BudgetResponse
//	@Param			budget	body		BudgetEditable	false	"Budget"
//	@Router			/v1/budget [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)

	var budget models.Budget
	switch err {
	case nil:
		budget = editable.model()
		err = models.ReplaceBudget(models.DB, &budget)
	case httputil.ErrRequestBodyEmpty:
		budget, err = appSession.CreateEmptyBudget()
	default:
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &budget})
}

// UpdateBudget updates the active budget
//
//	@Summary		Update budget
//	@Description	Updates the active budget. Only values to be updated need to be specified, the totals are recomputed on every change.
//	@Tags			Budget
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	BudgetResponse
//	@Failure		404		{object}	BudgetResponse
//	@Failure		500		{object}	BudgetResponse
//	@Param			budget	body		BudgetPatch	true	"Budget"
//	@Router			/v1/budget [patch]
func UpdateBudget(c *gin.Context) {
	budget, err := models.ActiveBudget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var patch BudgetPatch
	if err := httputil.BindData(c, &patch); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	if patch.Name != nil {
		budget.Name = *patch.Name
	}
	if patch.Period != nil {
		budget.Period = *patch.Period
	}
	if patch.Items != nil {
		items := make([]models.BudgetItem, 0, len(*patch.Items))
		for _, item := range *patch.Items {
			items = append(items, item.model())
		}
		budget.Items = items
	}

	if err := models.SaveBudget(models.DB, &budget); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// DeleteBudget discards the active budget
//
//	@Summary		Delete budget
//	@Description	Discards the active budget
//	@Tags			Budget
//	@Success		204
//	@Failure		404	{object}	BudgetResponse
//	@Failure		500	{object}	BudgetResponse
//	@Router			/v1/budget [delete]
func DeleteBudget(c *gin.Context) {
	_, err := models.ActiveBudget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	if err := models.DeleteBudget(models.DB); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// CreateDraftBudget generates a draft budget
//
//	@Summary		Generate draft budget
//	@Description	Derives a draft budget from the historical data and the current forecasts and makes it the active budget. Requires historical data or a forecast to exist.
//	@Tags			Budget
//	@Produce		json
//	@Success		201	{object}	BudgetResponse
//	@Failure		400	{object}	BudgetResponse
//	@Failure		500	{object}	BudgetResponse
//	@Failure		503	{object}	BudgetResponse
//	@Router			/v1/budget/draft [post]
func CreateDraftBudget(c *gin.Context) {
	budget, err := appSession.GenerateDraftBudget(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &budget})
}

// CreateBudgetItem adds an item to the active budget
//
//	@Summary		Create budget item
//	@Description	Adds an item to the active budget. The totals are recomputed immediately.
//	@Tags			Budget
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	BudgetResponse
//	@Failure		400		{object}	BudgetResponse
//	@Failure		404		{object}	BudgetResponse
//	@Failure		500		{object}	BudgetResponse
//	@Param			item	body		BudgetItemEditable	true	"Budget item"
//	@Router			/v1/budget/items [post]
func CreateBudgetItem(c *gin.Context) {
	budget, err := models.ActiveBudget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var editable BudgetItemEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	budget.Items = append(budget.Items, editable.model())

	if err := models.SaveBudget(models.DB, &budget); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &budget})
}

// UpdateBudgetItem updates an item of the active budget
//
//	@Summary		Update budget item
//	@Description	Updates an item of the active budget. Only values to be updated need to be specified, the totals are recomputed on every change.
//	@Tags			Budget
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	BudgetResponse
//	@Failure		404		{object}	BudgetResponse
//	@Failure		500		{object}	BudgetResponse
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			item	body		BudgetItemPatch	true	"Budget item"
//	@Router			/v1/budget/items/{id} [patch]
func UpdateBudgetItem(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	budget, err := models.ActiveBudget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	index := itemIndex(budget, uri)
	if index < 0 {
		s := errNoSuchBudgetItem.Error()
		c.JSON(http.StatusNotFound, BudgetResponse{
			Error: &s,
		})
		return
	}

	var patch BudgetItemPatch
	if err := httputil.BindData(c, &patch); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	item := &budget.Items[index]
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Kind != nil {
		item.Kind = *patch.Kind
	}
	if patch.PlannedAmount != nil {
		item.PlannedAmount = *patch.PlannedAmount
	}
	if patch.ActualAmount != nil {
		item.ActualAmount = *patch.ActualAmount
	}

	if err := models.SaveBudget(models.DB, &budget); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// DeleteBudgetItem removes an item from the active budget
//
//	@Summary		Delete budget item
//	@Description	Removes an item from the active budget. The totals are recomputed immediately.
//	@Tags			Budget
//	@Success		204
//	@Failure		400	{object}	BudgetResponse
//	@Failure		404	{object}	BudgetResponse
//	@Failure		500	{object}	BudgetResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/budget/items/{id} [delete]
func DeleteBudgetItem(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	budget, err := models.ActiveBudget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	index := itemIndex(budget, uri)
	if index < 0 {
		s := errNoSuchBudgetItem.Error()
		c.JSON(http.StatusNotFound, BudgetResponse{
			Error: &s,
		})
		return
	}

	budget.Items = append(budget.Items[:index], budget.Items[index+1:]...)

	if err := models.SaveBudget(models.DB, &budget); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// itemIndex returns the index of the item with the passed ID in the
// budget's item list, or -1 when there is none.
func itemIndex(budget models.Budget, uri URIID) int {
	for i, item := range budget.Items {
		if item.ID == uri.ID.UUID {
			return i
		}
	}

	return -1
}
