// Package ui is the presentation boundary: an interactive console that
// renders the expense list and the monthly chart and forwards user
// actions to the session. It holds no domain logic of its own.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"kharcha/internal/core"
	applog "kharcha/internal/log"
	"kharcha/internal/services"
)

type Console struct {
	session *services.Session
	in      *bufio.Scanner
	out     io.Writer
	logger  *applog.Logger
}

func NewConsole(session *services.Session, in io.Reader, out io.Writer, logger *applog.Logger) *Console {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Console{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger.WithComponent(applog.ComponentUI),
	}
}

// Run reads commands until EOF, quit, or context cancellation.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "kharcha — expense tracker. Type 'help' for commands.")
	c.render(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(c.out, "> ")
		line, ok := c.readLine()
		if !ok {
			return nil
		}
		if line == "" {
			continue
		}
		if !c.dispatch(ctx, line) {
			return nil
		}
	}
}

// dispatch handles one command line; false means quit.
func (c *Console) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return false
	case "help":
		c.printHelp()
	case "add":
		c.addFlow(ctx)
	case "rm":
		if len(args) != 1 {
			fmt.Fprintln(c.out, "usage: rm <id>")
			break
		}
		c.remove(ctx, args[0])
	case "clear":
		c.clearFlow(ctx)
	case "list":
		c.session.SetView(ctx, services.ViewList)
		c.render(ctx)
	case "chart":
		c.session.SetView(ctx, services.ViewAnalytics)
		c.render(ctx)
	case "filter":
		c.filterCmd(ctx, args)
	default:
		fmt.Fprintf(c.out, "unknown command %q, try 'help'\n", cmd)
	}
	return true
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `commands:
  add                      record a new expense (interactive)
  rm <id>                  delete an expense by id (prefix is enough)
  list                     show the filtered expense list
  chart                    show monthly totals per category
  filter date <all|thisMonth|last30|last90>
  filter cat <name>        toggle a category filter
  filter pay <name>        toggle a payment-mode filter
  filter reset             clear all filters
  clear                    delete ALL expenses (asks for confirmation)
  quit
`)
}

// addFlow walks the entry form: amount, category, payment mode, date
// (blank means today) and notes.
func (c *Console) addFlow(ctx context.Context) {
	amount := c.prompt("amount (₹): ")

	category, ok := pickOne(c, "category", core.Categories())
	if !ok {
		return
	}
	payment, ok := pickOne(c, "payment mode", core.PaymentModes())
	if !ok {
		return
	}

	var date core.Date
	if raw := c.prompt("date YYYY-MM-DD (blank = today): "); raw != "" {
		parsed, err := core.ParseDate(raw)
		if err != nil {
			fmt.Fprintf(c.out, "invalid date %q, expense not saved\n", raw)
			return
		}
		date = parsed
	}
	notes := c.prompt("notes (optional): ")

	e, err := c.session.Add(ctx, core.Draft{
		Amount:      amount,
		Category:    category,
		PaymentMode: payment,
		Date:        date,
		Notes:       notes,
	})
	if err != nil {
		fmt.Fprintf(c.out, "not saved: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "saved %s  %s  %s\n", shortID(e.ID), e.Amount, e.Category)
}

func (c *Console) remove(ctx context.Context, prefix string) {
	id, err := c.resolveID(prefix)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	c.session.Remove(ctx, id)
	fmt.Fprintf(c.out, "removed %s\n", shortID(id))
}

// resolveID expands a unique id prefix to the full record id.
func (c *Console) resolveID(prefix string) (string, error) {
	var match string
	for _, e := range c.session.Expenses() {
		if strings.HasPrefix(e.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = e.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no expense with id %q", prefix)
	}
	return match, nil
}

func (c *Console) clearFlow(ctx context.Context) {
	answer := c.prompt("This deletes ALL expenses and cannot be undone. Continue? [y/N] ")
	if strings.ToLower(answer) != "y" {
		fmt.Fprintln(c.out, "cancelled")
		return
	}
	c.session.ClearAll(ctx)
	fmt.Fprintln(c.out, "all expenses cleared")
}

func (c *Console) filterCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.printFilters()
		return
	}
	switch args[0] {
	case "reset":
		c.session.ResetFilters(ctx)
	case "date":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "usage: filter date <all|thisMonth|last30|last90>")
			return
		}
		r := core.DateRange(args[1])
		if !r.IsValid() {
			fmt.Fprintf(c.out, "unknown date range %q\n", args[1])
			return
		}
		c.session.SetDateRange(ctx, r)
	case "cat":
		name := strings.Join(args[1:], " ")
		cat, ok := matchEnum(name, core.Categories())
		if !ok {
			fmt.Fprintf(c.out, "unknown category %q\n", name)
			return
		}
		c.session.ToggleCategory(ctx, cat)
	case "pay":
		name := strings.Join(args[1:], " ")
		mode, ok := matchEnum(name, core.PaymentModes())
		if !ok {
			fmt.Fprintf(c.out, "unknown payment mode %q\n", name)
			return
		}
		c.session.TogglePaymentMode(ctx, mode)
	default:
		fmt.Fprintf(c.out, "unknown filter command %q\n", args[0])
		return
	}
	c.printFilters()
	c.render(ctx)
}

func (c *Console) printFilters() {
	f := c.session.Filters()
	fmt.Fprintf(c.out, "filters: date=%s categories=%v payments=%v\n",
		f.DateRange, f.Categories, f.PaymentModes)
}

func (c *Console) render(ctx context.Context) {
	if c.session.View() == services.ViewAnalytics {
		c.renderChart()
		return
	}
	c.renderList()
}

func (c *Console) renderList() {
	visible := c.session.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(c.out, "no expenses match the current filters")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tPAYMENT\tAMOUNT\tNOTES")
	for _, e := range visible {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(e.ID), e.Date, e.Category, e.PaymentMode, e.Amount, e.Notes)
	}
	w.Flush()

	count, total := c.session.Summary()
	fmt.Fprintf(c.out, "%d expense(s), total %s\n", count, total)
}

func (c *Console) renderChart() {
	rows := c.session.ChartRows()
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "no data to chart yet")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "MONTH")
	for _, cat := range core.Categories() {
		fmt.Fprintf(w, "\t%s", strings.ToUpper(string(cat)))
	}
	fmt.Fprintln(w, "\tTOTAL")
	for _, row := range rows {
		fmt.Fprint(w, row.Month)
		for _, cat := range core.Categories() {
			fmt.Fprintf(w, "\t%s", row.Totals[cat])
		}
		fmt.Fprintf(w, "\t%s\n", row.Total())
	}
	w.Flush()
}

func (c *Console) prompt(label string) string {
	fmt.Fprint(c.out, label)
	line, _ := c.readLine()
	return line
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// pickOne renders a numbered menu and reads a selection by number or
// name.
func pickOne[T ~string](c *Console, label string, options []T) (T, bool) {
	for i, opt := range options {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, opt)
	}
	raw := c.prompt(label + ": ")
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	if v, ok := matchEnum(raw, options); ok {
		return v, true
	}
	fmt.Fprintf(c.out, "unknown %s %q\n", label, raw)
	var zero T
	return zero, false
}

func matchEnum[T ~string](name string, options []T) (T, bool) {
	for _, opt := range options {
		if strings.EqualFold(string(opt), name) {
			return opt, true
		}
	}
	var zero T
	return zero, false
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
