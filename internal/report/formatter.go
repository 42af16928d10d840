package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"

	"realreturn/internal/model"
)

// FormatComparison renders the comparison result as a console report.
func FormatComparison(c *model.Comparison) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Investment Comparison | %s to %s\n\n",
		c.Range.Start.Format("2006-01-02"), c.Range.End.Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Initial Investment: %s\n", formatMoney(c.Amount, c.Currency)))
	b.WriteString(fmt.Sprintf("Initial %s/%s Rate: %.2f\n", c.Base, c.Currency, c.InitialRate))
	b.WriteString(fmt.Sprintf("Final %s/%s Rate: %.2f\n", c.Base, c.Currency, c.FinalRate))

	for _, m := range c.Markets {
		b.WriteString(fmt.Sprintf("\n%s Results:\n", m.Name))
		b.WriteString(fmt.Sprintf("  Total Nominal Return: %.2f%%\n", m.Result.TotalNominalReturn*100))
		b.WriteString(fmt.Sprintf("  Annual Real Return (Inflation Adjusted): %.2f%%\n", m.Result.RealAnnualReturn*100))
		b.WriteString(fmt.Sprintf("  Final Value: %s\n", formatMoney(m.FinalLocal, c.Currency)))
	}

	return b.String()
}

// formatMoney renders an amount with the currency's own symbol and grouping.
func formatMoney(amount float64, code string) string {
	return money.New(int64(math.Round(amount*100)), code).Display()
}
