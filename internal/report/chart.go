package report

import (
	"fmt"
	"strings"

	"realreturn/internal/model"
)

const barWidth = 40

// BarChart renders a horizontal bar chart comparing final values, scaled so
// the largest value fills the full width.
func BarChart(c *model.Comparison) string {
	if len(c.Markets) == 0 {
		return ""
	}

	maxValue := 0.0
	maxName := 0
	for _, m := range c.Markets {
		if m.FinalLocal > maxValue {
			maxValue = m.FinalLocal
		}
		if len(m.Name) > maxName {
			maxName = len(m.Name)
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Final Value (%s)\n", c.Currency))
	for _, m := range c.Markets {
		n := 0
		if maxValue > 0 && m.FinalLocal > 0 {
			n = int(m.FinalLocal / maxValue * barWidth)
		}
		if n < 1 && m.FinalLocal > 0 {
			n = 1
		}
		b.WriteString(fmt.Sprintf("%-*s %s %s\n",
			maxName, m.Name, strings.Repeat("█", n), formatMoney(m.FinalLocal, c.Currency)))
	}
	return b.String()
}
