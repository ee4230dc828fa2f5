package notifier

import (
	"fmt"
	"strings"
	"time"

	"TradeAdvisor/internal/collector"
	"TradeAdvisor/internal/model"
)

// Formatters render values the collector already computed; no indicator
// math happens in this package.

func signalBadge(kind model.SignalKind) string {
	switch kind {
	case model.SignalBuy:
		return "🟢 BUY"
	case model.SignalSell:
		return "🔴 SELL"
	case model.SignalNeutral:
		return "🟡 NEUTRAL"
	default:
		return "⚪ INSUFFICIENT_DATA"
	}
}

func fmtVal(v float64) string {
	if !model.Defined(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatSignalReport formats a full per-symbol analysis into a Telegram
// message.
func FormatSignalReport(symbol string, a *collector.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", symbol, time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("%s | Confidence: %.0f%%\n", signalBadge(a.Signal.Kind), a.Signal.Confidence))
	b.WriteString(fmt.Sprintf("Reason: %s\n", a.Signal.Reason))

	if a.Series.Len() == 0 {
		return b.String()
	}

	last := a.Series.Len() - 1
	price := a.Series.Bars[last].Close
	b.WriteString(fmt.Sprintf("\n💰 Price: %.2f", price))
	if last > 0 {
		prev := a.Series.Bars[last-1].Close
		change := price - prev
		b.WriteString(fmt.Sprintf(" (%+.2f, %+.1f%%)", change, change/prev*100))
	}
	b.WriteString(fmt.Sprintf("\n📦 Volume: %.0f\n", a.Series.Bars[last].Volume))

	ind := a.Indicators
	b.WriteString("\n📈 <b>Indicators</b>\n")
	b.WriteString(fmt.Sprintf("  SMA20: %s", fmtVal(ind.SMAShort[last])))
	if model.Defined(ind.SMAShort[last]) {
		dist := (price - ind.SMAShort[last]) / ind.SMAShort[last] * 100
		b.WriteString(fmt.Sprintf(" (%+.1f%%)", dist))
	}
	b.WriteString(fmt.Sprintf("\n  SMA50: %s", fmtVal(ind.SMALong[last])))
	if model.Defined(ind.SMALong[last]) {
		dist := (price - ind.SMALong[last]) / ind.SMALong[last] * 100
		b.WriteString(fmt.Sprintf(" (%+.1f%%)", dist))
	}
	b.WriteString(fmt.Sprintf("\n  RSI: %s\n", fmtVal(ind.RSI[last])))
	b.WriteString(fmt.Sprintf("  Bollinger: %s / %s / %s\n",
		fmtVal(ind.BBUpper[last]), fmtVal(ind.BBMiddle[last]), fmtVal(ind.BBLower[last])))

	return b.String()
}

// FormatSummaryLine formats one symbol as a single line for the daily
// report.
func FormatSummaryLine(symbol string, a *collector.Analysis) string {
	if a.Series.Len() == 0 {
		return fmt.Sprintf("%s: %s (%s)", symbol, signalBadge(a.Signal.Kind), a.Signal.Reason)
	}
	return fmt.Sprintf("%s: %s %.0f%% | price %.2f | %s",
		symbol, signalBadge(a.Signal.Kind), a.Signal.Confidence,
		a.Series.LastClose(), a.Signal.Reason)
}

// FormatDailyReport renders the summary of all tracked symbols.
func FormatDailyReport(lines []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 <b>Daily Report</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}
