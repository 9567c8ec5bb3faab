package dto

import (
	"github.com/shopspring/decimal"
)

// PlanRow is one line of the consolidated Annual GAD Plan & Budget, in the
// nine-column layout of the printed form.
type PlanRow struct {
	// GenderIssue carries the legacy "Issue:/Data:/Source:" blob so exports
	// stay byte-compatible with previously generated plans.
	GenderIssue     string          `json:"genderIssue"`
	DataSource      string          `json:"dataSource"`
	ResultStatement string          `json:"resultStatement"`
	RelevantProgram string          `json:"relevantProgram"`
	Activity        string          `json:"activity"`
	Indicators      string          `json:"indicators"`
	BudgetTotal     decimal.Decimal `json:"budgetTotal"`
	FundSource      string          `json:"fundSource"`
	Office          string          `json:"office"`
}

// PlanSection is one part of the consolidated plan with its subtotal.
type PlanSection struct {
	Title    string          `json:"title"`
	Rows     []PlanRow       `json:"rows"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// GADPlanExport is the full consolidated plan: Part A holds client-focused
// PPAs, Part B agency-focused ones.
type GADPlanExport struct {
	PartA      PlanSection     `json:"partA"`
	PartB      PlanSection     `json:"partB"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}
