package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"najla/expense-tracker/internal/currencyutils"
	"najla/expense-tracker/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// palette styles text for one output. Colors are dropped automatically when the
// writer is not a terminal.
type palette struct {
	renderer *lipgloss.Renderer
	income   lipgloss.Style
	expense  lipgloss.Style
	title    lipgloss.Style
	muted    lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		renderer: r,
		income:   r.NewStyle().Foreground(lipgloss.Color("#16a34a")),
		expense:  r.NewStyle().Foreground(lipgloss.Color("#dc2626")),
		title:    r.NewStyle().Bold(true),
		muted:    r.NewStyle().Foreground(lipgloss.Color("#6b7280")),
	}
}

func (p palette) amount(txType models.TransactionType, s string) string {
	if txType == models.TransactionTypeIncome {
		return p.income.Render(s)
	}
	return p.expense.Render(s)
}

func (g *Generator) money(amount string) string {
	return currencyutils.WithSymbol(amount, g.currency)
}

func (g *Generator) writeTransactionsText(w io.Writer, records []models.Transaction) error {
	p := newPalette(w)
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, p.muted.Render("No transactions recorded."))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.muted).
		Headers("ID", "DATE", "TYPE", "CATEGORY", "AMOUNT", "NOTES").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := p.renderer.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			if col == 4 {
				return style.Align(lipgloss.Right)
			}
			return style
		})

	for _, tx := range records {
		t.Row(
			strconv.FormatInt(tx.ID, 10),
			tx.Date,
			tx.Type.String(),
			tx.Category,
			p.amount(tx.Type, g.money(tx.Amount.String())),
			strings.ReplaceAll(tx.Notes, "\n", " "),
		)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func (g *Generator) writeSummaryText(w io.Writer, s Summary) error {
	p := newPalette(w)
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", p.title.Render("Balance overview"))
	fmt.Fprintf(&b, "  Income:   %s\n", p.income.Render(g.money(s.TotalIncome)))
	fmt.Fprintf(&b, "  Expense:  %s\n", p.expense.Render(g.money(s.TotalExpense)))
	fmt.Fprintf(&b, "  Balance:  %s\n", g.money(s.Balance))
	fmt.Fprintf(&b, "  Records:  %d\n", s.Count)

	b.WriteString("\n" + p.title.Render("Expenses by category") + "\n")
	if len(s.Categories) == 0 {
		b.WriteString("  " + p.muted.Render("none") + "\n")
	}
	width := 0
	for _, c := range s.Categories {
		width = max(width, lipgloss.Width(c.Category))
	}
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, c.Category, g.money(c.Amount))
	}

	b.WriteString("\n" + p.title.Render("Monthly") + "\n")
	if len(s.Months) == 0 {
		b.WriteString("  " + p.muted.Render("none") + "\n")
	}
	for _, m := range s.Months {
		fmt.Fprintf(&b, "  %s  income %s  expense %s  balance %s\n",
			m.Month,
			p.income.Render(g.money(m.Income)),
			p.expense.Render(g.money(m.Expense)),
			g.money(m.Balance))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
