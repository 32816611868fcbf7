package core

// UsageItem is one billing line item from the premium request usage API,
// carried verbatim from the wire payload.
type UsageItem struct {
	Product          string  `json:"product"`
	SKU              string  `json:"sku"`
	Model            string  `json:"model"`
	UnitType         string  `json:"unitType"`
	PricePerUnit     float64 `json:"pricePerUnit"`
	GrossQuantity    float64 `json:"grossQuantity"`
	GrossAmount      float64 `json:"grossAmount"`
	DiscountQuantity float64 `json:"discountQuantity"`
	DiscountAmount   float64 `json:"discountAmount"`
	NetQuantity      float64 `json:"netQuantity"`
	NetAmount        float64 `json:"netAmount"`
}

// TimePeriod is the reporting window of a usage payload.
type TimePeriod struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// UsageReport is the raw response of
// `gh api users/<user>/settings/billing/premium_request/usage`.
type UsageReport struct {
	TimePeriod TimePeriod  `json:"timePeriod"`
	User       string      `json:"user"`
	UsageItems []UsageItem `json:"usageItems"`
}

// UsageSummary is the display-ready aggregate built from a UsageReport.
// It is constructed fresh on every fetch and never mutated afterwards.
type UsageSummary struct {
	User           string
	Year           int
	Month          int
	TotalRequests  int
	GrossAmount    float64
	DiscountAmount float64
	NetAmount      float64
	Items          []UsageItem
}

// PlanOption is one entry of the static Copilot plan catalog.
type PlanOption struct {
	Name        string
	Label       string
	Quota       float64
	Description string
}

// PlanCustom is the sentinel plan whose quota is entered by hand.
const PlanCustom = "custom"

// PlanOptions lists the selectable Copilot plans. Quotas are the published
// premium request allowances per month.
var PlanOptions = []PlanOption{
	{Name: "free", Label: "Free", Quota: 50, Description: "50 requests/month"},
	{Name: "pro", Label: "Pro", Quota: 300, Description: "300 requests/month"},
	{Name: "pro_plus", Label: "Pro+", Quota: 1500, Description: "1,500 requests/month"},
	{Name: "business", Label: "Business", Quota: 300, Description: "300 requests/month"},
	{Name: "enterprise", Label: "Enterprise", Quota: 1000, Description: "1,000 requests/month"},
	{Name: PlanCustom, Label: "Custom", Quota: 0, Description: "Enter custom value"},
}
