package charts

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// HBars renders a horizontal bar chart with one bar per label and, when
// markers is non-empty, a diamond marker per bar at the marker value. Values
// and markers must be non-negative; bars run left to right from zero.
func HBars(width, height int, values, markers []float64, labels []string, opts BarOpts) (template.HTML, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("charts: values required")
	}
	if len(labels) != len(values) {
		return "", fmt.Errorf("charts: labels length must match values")
	}
	if len(markers) > 0 && len(markers) != len(values) {
		return "", fmt.Errorf("charts: markers length must match values")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	padding := opts.Padding
	if padding <= 0 {
		padding = DefaultPadding
	}
	labelWidth := opts.LabelWidth
	if labelWidth <= 0 {
		labelWidth = DefaultLabelWidth
	}
	tickCount := opts.TickCount
	if tickCount <= 0 {
		tickCount = DefaultTicks
	}

	axisColor := fallback(opts.AxisColor, "#475569")
	gridColor := fallback(opts.GridColor, "#cbd5f5")
	barColor := fallback(opts.BarColor, "#0ea5e9")
	markerColor := fallback(opts.MarkerColor, "#fa8072")
	barLabel := fallback(opts.BarLabel, "Value")
	markerLabel := fallback(opts.MarkerLabel, "Marker")

	chartWidth := float64(width) - labelWidth - 2*padding
	chartHeight := float64(height) - 2*padding
	if chartWidth <= 0 || chartHeight <= 0 {
		return "", fmt.Errorf("charts: viewport too small")
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	for _, v := range markers {
		if v > maxVal {
			maxVal = v
		}
	}
	if almostEqual(maxVal, 0) {
		maxVal = 1
	}
	scale := chartWidth / maxVal
	originX := labelWidth + padding

	rowHeight := chartHeight / float64(len(labels))
	barHeight := rowHeight * 0.62

	titleID := makeID(opts.Title, "hbar-title")
	descID := makeID(opts.Title, "hbar-desc")

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" role=\"img\" aria-labelledby=\"%s %s\">", width, height, titleID, descID))
	b.WriteString(fmt.Sprintf("<title id=\"%s\">%s</title>", titleID, template.HTMLEscapeString(fallback(opts.Title, "Bar chart"))))
	b.WriteString(fmt.Sprintf("<desc id=\"%s\">%s</desc>", descID, template.HTMLEscapeString(fallback(opts.Description, "Horizontal bar chart"))))

	for i := 0; i <= tickCount; i++ {
		ratio := float64(i) / float64(tickCount)
		value := maxVal * ratio
		x := originX + ratio*chartWidth
		b.WriteString(fmt.Sprintf("<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"0.5\" stroke-dasharray=\"2,4\" aria-hidden=\"true\"></line>", x, padding, x, padding+chartHeight, gridColor))
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"middle\">%s</text>", x, padding+chartHeight+14, axisColor, template.HTMLEscapeString(formatTick(value))))
	}

	// Axes
	b.WriteString(fmt.Sprintf("<g stroke=\"%s\" aria-label=\"Axes\">", axisColor))
	b.WriteString(fmt.Sprintf("<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke-width=\"1\"></line>", originX, padding, originX, padding+chartHeight))
	b.WriteString(fmt.Sprintf("<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke-width=\"1\"></line>", originX, padding+chartHeight, originX+chartWidth, padding+chartHeight))
	b.WriteString("</g>")

	for i, label := range labels {
		rowTop := padding + float64(i)*rowHeight
		rowCenter := rowTop + rowHeight/2

		barLen := values[i] * scale
		if barLen > chartWidth {
			barLen = chartWidth
		}
		if barLen < 0 {
			barLen = 0
		}
		b.WriteString(fmt.Sprintf("<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\" aria-label=\"%s %s\"></rect>", originX, rowCenter-barHeight/2, barLen, barHeight, barColor, template.HTMLEscapeString(barLabel), template.HTMLEscapeString(label)))

		if len(markers) > 0 {
			mx := originX + markers[i]*scale
			if mx > originX+chartWidth {
				mx = originX + chartWidth
			}
			b.WriteString(fmt.Sprintf("<path d=\"M %.2f %.2f L %.2f %.2f L %.2f %.2f L %.2f %.2f Z\" fill=\"%s\" aria-label=\"%s %s\"></path>", mx, rowCenter-5, mx+5, rowCenter, mx, rowCenter+5, mx-5, rowCenter, markerColor, template.HTMLEscapeString(markerLabel), template.HTMLEscapeString(label)))
		}

		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"end\">%s</text>", labelWidth+padding-8, rowCenter+3, axisColor, template.HTMLEscapeString(truncateLabel(label))))
	}

	// Legend
	legendY := padding - 10
	if legendY < 12 {
		legendY = 12
	}
	legendX := originX
	b.WriteString(fmt.Sprintf("<rect x=\"%.2f\" y=\"%.2f\" width=\"10\" height=\"10\" fill=\"%s\"></rect>", legendX, legendY-8, barColor))
	b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"start\">%s</text>", legendX+14, legendY, axisColor, template.HTMLEscapeString(barLabel)))
	if len(markers) > 0 {
		legendX += 110
		b.WriteString(fmt.Sprintf("<path d=\"M %.2f %.2f L %.2f %.2f L %.2f %.2f L %.2f %.2f Z\" fill=\"%s\"></path>", legendX+5, legendY-9, legendX+10, legendY-4, legendX+5, legendY+1, legendX, legendY-4, markerColor))
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"start\">%s</text>", legendX+14, legendY, axisColor, template.HTMLEscapeString(markerLabel)))
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

func truncateLabel(label string) string {
	const maxRunes = 32
	runes := []rune(label)
	if len(runes) <= maxRunes {
		return label
	}
	return string(runes[:maxRunes-1]) + "…"
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func makeID(base, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		if r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(base)))
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "chart"
	}
	return fmt.Sprintf("%s-%s", cleaned, suffix)
}

func formatTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	default:
		if almostEqual(v, math.Round(v)) {
			return fmt.Sprintf("%.0f", v)
		}
		return fmt.Sprintf("%.2f", v)
	}
}
