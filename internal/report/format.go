// Package report renders the combined alert message. It is pure
// formatting with one piece of policy: the alert is suppressed entirely
// when no comparator produced a change.
package report

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
	"github.com/kadunafoods/stockwatch-go/internal/reconcile"
)

// PiecesPerBag is the container size used when re-expressing piece
// counts as bags.
const PiecesPerBag = 20

var printer = message.NewPrinter(language.English)

// title capitalizes each word of a column label. A fresh Caser per call:
// Casers carry state and are not safe to share.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// Report carries everything the rendered alert needs: the merged change
// lists, the full current snapshots, and the ledger balances for the
// reconciliation sections. Now stamps the footer.
type Report struct {
	StockChanges   []domain.Change
	PartsChanges   []domain.Change
	BalanceChanges []domain.Change

	Stock domain.Sheet
	Parts domain.Sheet

	ChickenBalance *float64
	GizzardBalance *float64

	Now time.Time
}

// HasChanges reports whether any comparator detected a difference. A
// report without changes must not be sent.
func (r Report) HasChanges() bool {
	return len(r.StockChanges)+len(r.PartsChanges)+len(r.BalanceChanges) > 0
}

// Render produces the full alert text.
func Render(r Report) string {
	var b strings.Builder
	b.WriteString("🔔 *Kaduna Inventory Changes Detected*\n\n")

	if len(r.BalanceChanges) > 0 {
		b.WriteString("*Inventory Balance Difference Changes:*\n")
		for _, c := range r.BalanceChanges {
			if strings.Contains(c.Label, "Chicken") {
				b.WriteString("• " + c.Label + ": " + signedPieces(c.Old) + " → " + signedPieces(c.New) + "\n")
			} else {
				b.WriteString("• " + c.Label + ": " + signedKg(c.Old) + " → " + signedKg(c.New) + "\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(stockSection(r))
	b.WriteString("\n")
	b.WriteString(partsSection(r))

	stamp := r.Now.In(reconcile.Location()).Format("2006-01-02 03:04:05 PM")
	b.WriteString("\n_Updated at: " + stamp + " WAT_")

	return b.String()
}

// stockSection renders the stock changes (if any), the full current
// stock levels, and the two reconciliation comparisons.
func stockSection(r Report) string {
	var b strings.Builder

	if len(r.StockChanges) > 0 {
		b.WriteString("*Stock Balance Changes:*\n")
		for _, c := range r.StockChanges {
			label := title(c.Label)
			if strings.EqualFold(c.Label, "gizzard") {
				b.WriteString("• " + label + ": " + kgOrRaw(c.Old) + " → " + kgOrRaw(c.New) + "\n")
			} else {
				b.WriteString("• " + label + ": " + piecesOrRaw(c.Old) + " → " + piecesOrRaw(c.New) + "\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("*Current Stock Levels:*\n")
	headers := r.Stock.Headers()
	values := r.Stock.Values()
	var totalPieces int64
	var gizzardWeight float64

	for i, h := range headers {
		if strings.EqualFold(h, "specification") {
			continue
		}
		val := ""
		if i < len(values) {
			val = values[i]
		}
		label := title(h)

		var formatted string
		if strings.EqualFold(h, "gizzard") {
			if w, ok := domain.ParseWeight(val); ok {
				gizzardWeight = w
				formatted = kg(w)
			} else {
				formatted = val
			}
		} else if n, ok := domain.ParseCount(val); ok {
			if strings.EqualFold(h, "total") {
				totalPieces = n
			}
			formatted = Bags(n)
		} else {
			formatted = val
		}
		b.WriteString("• " + label + ": " + formatted + "\n")
	}

	if r.ChickenBalance != nil && totalPieces > 0 {
		b.WriteString("\n*Whole Chicken Stock Balance Comparison:*\n")
		diff := int64(float64(totalPieces) - *r.ChickenBalance)
		if diff == 0 {
			b.WriteString("✅ Whole chicken stock balance matches inventory records\n")
		} else {
			direction := "more"
			if diff < 0 {
				direction = "less"
			}
			b.WriteString("⚠️ Whole chicken stock balance discrepancy detected:\n")
			b.WriteString("• Specification Sheet Total: " + printer.Sprintf("%d", totalPieces) + " pieces\n")
			b.WriteString("• Inventory Records Total: " + printer.Sprintf("%d", int64(*r.ChickenBalance)) + " pieces\n")
			b.WriteString("• Difference: " + printer.Sprintf("%d", abs64(diff)) + " pieces " + direction + " in specification sheet\n")
		}
	}

	if r.GizzardBalance != nil && gizzardWeight > 0 {
		b.WriteString("\n*Gizzard Stock Balance Comparison:*\n")
		diff := gizzardWeight - *r.GizzardBalance
		if math.Abs(diff) < 0.01 {
			b.WriteString("✅ Gizzard stock balance matches inventory records\n")
		} else {
			direction := "more"
			if diff < 0 {
				direction = "less"
			}
			b.WriteString("⚠️ Gizzard stock balance discrepancy detected:\n")
			b.WriteString("• Specification Sheet Gizzard: " + kg(gizzardWeight) + "\n")
			b.WriteString("• Inventory Records Gizzard: " + kg(*r.GizzardBalance) + "\n")
			b.WriteString("• Difference: " + kg(math.Abs(diff)) + " " + direction + " in specification sheet\n")
		}
	}

	return b.String()
}

// partsSection renders the parts changes (if any) and the full current
// parts weights. The first column of both rows is the label column and
// is excluded.
func partsSection(r Report) string {
	var b strings.Builder

	if len(r.PartsChanges) > 0 {
		b.WriteString("*Parts Weight Changes:*\n")
		for _, c := range r.PartsChanges {
			label := title(c.Label)
			b.WriteString("• " + label + ": " + kgOrRaw(c.Old) + " → " + kgOrRaw(c.New) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("*Current Parts Weights:*\n")
	var headers, values []string
	if h := r.Parts.Headers(); len(h) > 1 {
		headers = h[1:]
	}
	if v := r.Parts.Values(); len(v) > 1 {
		values = v[1:]
	}
	for i := 0; i < len(headers) && i < len(values); i++ {
		label := title(headers[i])
		b.WriteString("• " + label + ": " + kgOrRaw(values[i]) + "\n")
	}

	return b.String()
}

// Bags re-expresses a piece count as full bags of PiecesPerBag plus a
// remainder, collapsing whichever component is zero. A count below one
// bag renders as pieces only, including "0 pieces".
func Bags(n int64) string {
	bags := n / PiecesPerBag
	rem := n % PiecesPerBag

	bagsText := printer.Sprintf("%d bags", bags)
	if bags == 1 {
		bagsText = "1 bag"
	}
	piecesText := printer.Sprintf("%d pieces", rem)
	if rem == 1 {
		piecesText = "1 piece"
	}

	switch {
	case bags > 0 && rem > 0:
		return bagsText + ", " + piecesText
	case bags > 0:
		return bagsText
	default:
		return piecesText
	}
}

// kg renders a weight with thousands separators and two decimals.
func kg(v float64) string {
	return printer.Sprintf("%.2f kg", v)
}

// kgOrRaw renders a cell as kg when it matches the weight grammar and
// verbatim otherwise.
func kgOrRaw(val string) string {
	if w, ok := domain.ParseWeight(val); ok {
		return kg(w)
	}
	return val
}

// piecesOrRaw renders a cell as a pluralized piece count when it matches
// the count grammar and verbatim otherwise.
func piecesOrRaw(val string) string {
	n, ok := domain.ParseCount(val)
	if !ok {
		return val
	}
	if n == 1 {
		return "1 piece"
	}
	return printer.Sprintf("%d pieces", n)
}

// signedPieces renders a (possibly negative) piece count stored by the
// scalar comparator. Pluralization follows the magnitude.
func signedPieces(val string) string {
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return val
	}
	if abs64(n) == 1 {
		return printer.Sprintf("%d piece", n)
	}
	return printer.Sprintf("%d pieces", n)
}

// signedKg renders a (possibly negative) weight stored by the scalar
// comparator.
func signedKg(val string) string {
	w, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return val
	}
	return kg(w)
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
