package renderer

import (
	"strings"

	"github.com/takatracker/takatracker"
)

// barWidth is the widest expense bar in the breakdown chart.
const barWidth = 20

type insightsData struct {
	WindowLabel string
	Breakdown   []breakdownRow
	Trend       []trendRow
}

type breakdownRow struct {
	Category string
	Total    string
	Bar      string
}

type trendRow struct {
	Date    string
	Income  string
	Expense string
}

// windowLabels name the insight ranges the way the picker shows them.
var windowLabels = map[takatracker.Window]string{
	takatracker.Last30Days:   "Last 30 Days",
	takatracker.CurrentMonth: "This Month",
	takatracker.LastMonth:    "Last Month",
	takatracker.AllTime:      "All Time",
}

// InsightsMarkdown renders the spending breakdown and the daily cash flow
// trend for one window. The breakdown carries a text bar scaled against the
// largest category.
func InsightsMarkdown(w takatracker.Window, breakdown []takatracker.CategoryTotal, trend []takatracker.DailyFlow) string {
	data := insightsData{WindowLabel: windowLabels[w]}
	if data.WindowLabel == "" {
		data.WindowLabel = string(w)
	}

	var largest takatracker.Money
	if len(breakdown) > 0 {
		largest = breakdown[0].Total
	}
	for _, c := range breakdown {
		data.Breakdown = append(data.Breakdown, breakdownRow{
			Category: c.Category,
			Total:    c.Total.String(),
			Bar:      bar(c.Total, largest),
		})
	}
	for _, d := range trend {
		data.Trend = append(data.Trend, trendRow{
			Date:    d.Date.String(),
			Income:  d.Income.String(),
			Expense: d.Expense.String(),
		})
	}
	return renderTemplate("insights", "insights.md", nil, data)
}

// bar scales a total against the largest one into a fixed-width text bar.
func bar(total, largest takatracker.Money) string {
	if largest.IsZero() || !total.IsPositive() {
		return ""
	}
	ratio := total.Decimal().Div(largest.Decimal()).InexactFloat64()
	n := int(ratio*barWidth + 0.5)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
