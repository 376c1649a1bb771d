package domain

// Dataset is one labeled series in a chart.
type Dataset struct {
	Label     string    `json:"label"`
	Data      []float64 `json:"data"`
	ColorHint string    `json:"color_hint"`
}

// ChartData is the generic labeled-series structure handed to external
// renderers. Contract: every dataset's data length equals the labels length.
// No rendering semantics are imposed here.
type ChartData struct {
	Title     string    `json:"title"`
	Labels    []string  `json:"labels"`
	Datasets  []Dataset `json:"datasets"`
	ChartType string    `json:"chart_type"` // "line", "bar", "pie", "area"
	XLabel    string    `json:"x_label"`
	YLabel    string    `json:"y_label"`
}
