package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printDealsTable(w io.Writer, deals []threecommas.Deal) error {
	tw := newTabWriter(w)
	tw.writef("ID\tBOT\tPAIR\tSTATUS\tCREATED\tUSD PROFIT\n")
	for i := range deals {
		d := &deals[i]
		tw.writef("%d\t%d\t%s\t%s\t%s\t%s\n",
			d.ID,
			d.BotID,
			d.Pair,
			d.Status,
			formatTime(d.CreatedAt),
			d.UsdFinalProfit.StringFixed(2),
		)
	}
	return tw.finish()
}

func printDealDetail(w io.Writer, d *threecommas.DealDetail) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", d.ID)
	tw.writef("Bot:\t%s (%d)\n", d.BotName, d.BotID)
	tw.writef("Account:\t%d\n", d.AccountID)
	tw.writef("Pair:\t%s\n", d.Pair)
	tw.writef("Status:\t%s\n", d.Status)
	tw.writef("Finished:\t%v\n", d.Finished)
	tw.writef("Take Profit:\t%s%%\n", d.TakeProfit.String())
	tw.writef("Safety Orders:\t%d/%d\n", d.CompletedSafetyOrdersCount, d.MaxSafetyOrders)
	tw.writef("Bought:\t%s @ %s\n", d.BoughtAmount.String(), d.BoughtAveragePrice.String())
	tw.writef("USD Profit:\t%s\n", d.UsdFinalProfit.StringFixed(2))
	tw.writef("Created:\t%s\n", formatTime(d.CreatedAt))
	tw.writef("Closed:\t%s\n", formatTime(d.ClosedAt))
	for i := range d.BotEvents {
		tw.writef("Event:\t%s %s\n", formatTime(&d.BotEvents[i].CreatedAt), d.BotEvents[i].Message)
	}
	return tw.finish()
}

func printBotsTable(w io.Writer, bots []threecommas.Bot) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tACCOUNT\tSTRATEGY\tPAIRS\tENABLED\tACTIVE DEALS\n")
	for i := range bots {
		b := &bots[i]
		tw.writef("%d\t%s\t%d\t%s\t%s\t%v\t%d\n",
			b.ID,
			truncate(b.Name, 30),
			b.AccountID,
			b.Strategy,
			truncate(strings.Join(b.Pairs, ","), 30),
			b.IsEnabled,
			b.ActiveDealsCount,
		)
	}
	return tw.finish()
}

func printBotDetail(w io.Writer, b *threecommas.Bot) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", b.ID)
	tw.writef("Name:\t%s\n", b.Name)
	tw.writef("Account:\t%d\n", b.AccountID)
	tw.writef("Strategy:\t%s\n", b.Strategy)
	tw.writef("Pairs:\t%s\n", strings.Join(b.Pairs, ", "))
	tw.writef("Enabled:\t%v\n", b.IsEnabled)
	tw.writef("Max Active Deals:\t%d\n", b.MaxActiveDeals)
	tw.writef("Max Safety Orders:\t%d\n", b.MaxSafetyOrders)
	tw.writef("Active Deals:\t%d\n", len(b.ActiveDeals))
	return tw.finish()
}

func printAccountsTable(w io.Writer, accounts []threecommas.Account) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tEXCHANGE\tMARKET\tUSD AMOUNT\tBTC AMOUNT\n")
	for i := range accounts {
		acc := &accounts[i]
		tw.writef("%d\t%s\t%s\t%s\t%s\t%s\n",
			acc.ID,
			acc.Name,
			acc.ExchangeName,
			acc.MarketCode,
			acc.USDAmount.StringFixed(2),
			acc.BTCAmount.String(),
		)
	}
	return tw.finish()
}

func printAccountDetail(w io.Writer, acc *threecommas.Account) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", acc.ID)
	tw.writef("Name:\t%s\n", acc.Name)
	tw.writef("Exchange:\t%s\n", acc.ExchangeName)
	tw.writef("Market:\t%s\n", acc.MarketCode)
	tw.writef("USD Amount:\t%s\n", acc.USDAmount.StringFixed(2))
	tw.writef("BTC Amount:\t%s\n", acc.BTCAmount.String())
	tw.writef("Day Profit USD:\t%s\n", acc.DayProfitUSD.StringFixed(2))
	tw.writef("Total Profit USD:\t%s\n", acc.TotalUSDProfit.StringFixed(2))
	tw.writef("Locked:\t%v\n", acc.IsLocked)
	return tw.finish()
}

func printGridBotsTable(w io.Writer, bots []threecommas.GridBot) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tACCOUNT\tPAIR\tRANGE\tENABLED\tPROFIT USD\n")
	for i := range bots {
		g := &bots[i]
		tw.writef("%d\t%s\t%d\t%s\t%s-%s\t%v\t%s\n",
			g.ID,
			truncate(g.Name, 30),
			g.AccountID,
			g.Pair,
			g.LowerPrice.String(),
			g.UpperPrice.String(),
			g.IsEnabled,
			g.CurrentProfitUSD.StringFixed(2),
		)
	}
	return tw.finish()
}

func printGridBotDetail(w io.Writer, g *threecommas.GridBot) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", g.ID)
	tw.writef("Name:\t%s\n", g.Name)
	tw.writef("Account:\t%s (%d)\n", g.AccountName, g.AccountID)
	tw.writef("Pair:\t%s\n", g.Pair)
	tw.writef("Range:\t%s - %s\n", g.LowerPrice.String(), g.UpperPrice.String())
	tw.writef("Grids:\t%s\n", g.GridsQuantity.String())
	tw.writef("Enabled:\t%v\n", g.IsEnabled)
	tw.writef("Profit USD:\t%s\n", g.CurrentProfitUSD.StringFixed(2))
	return tw.finish()
}

func printMarketplaceItemsTable(w io.Writer, items []threecommas.MarketplaceItem) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tTYPE\tKEY\n")
	for i := range items {
		tw.writef("%d\t%s\t%s\t%s\n",
			items[i].ID,
			truncate(items[i].Name, 40),
			items[i].StrategyType,
			items[i].StrategyKey,
		)
	}
	return tw.finish()
}

func printSignalsTable(w io.Writer, signals []threecommas.MarketplaceItemSignal) error {
	tw := newTabWriter(w)
	tw.writef("ID\tPAIR\tEXCHANGE\tTYPE\tMIN\tMAX\tTIME\n")
	for i := range signals {
		s := &signals[i]
		tw.writef("%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.Pair,
			s.Exchange,
			s.SignalType,
			s.Min.String(),
			s.Max.String(),
			time.Unix(s.Timestamp, 0).UTC().Format(time.DateTime),
		)
	}
	return tw.finish()
}

// profitSummary is the result of `deals profit`.
type profitSummary struct {
	Deals          int             `json:"deals"`
	UsdFinalProfit decimal.Decimal `json:"usd_final_profit"`
}

func sumProfit(deals []threecommas.Deal) profitSummary {
	total := decimal.Zero
	for i := range deals {
		total = total.Add(deals[i].UsdFinalProfit)
	}
	return profitSummary{Deals: len(deals), UsdFinalProfit: total}
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.DateTime)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
