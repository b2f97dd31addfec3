package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"

	"tune-lab/domain"
	"tune-lab/repositories"
)

// Read-only study browser: renders every trial of a study as a table while
// a worker may still hold the database lock.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	study := flag.String("study", "", "Study name to list")
	flag.Parse()

	if *study == "" {
		log.Fatal("Missing required flag: -study")
	}

	// Note: BypassLockGuard allows opening if another process (the leader) holds the lock
	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := repositories.NewTrialRepository(db, slog.Default())
	records, err := repository.List(*study)
	if err != nil {
		log.Fatalf("Failed to list trials: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Number", "State", "Params", "Last Loss", "Reports", "Started"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, record := range records {
		table.Append([]string{
			strconv.FormatInt(record.Number, 10),
			renderState(record.State),
			paramsSummary(record.Params),
			lastLoss(record.Intermediate),
			strconv.Itoa(len(record.Intermediate)),
			startedAt(record),
		})
	}

	fmt.Printf("Study %q: %d trial(s)\n\n", *study, len(records))
	table.Render()
}

func renderState(state domain.TrialState) string {
	switch state {
	case domain.TrialComplete:
		return color.Green.Render(state.String())
	case domain.TrialPruned:
		return color.Yellow.Render(state.String())
	case domain.TrialFailed:
		return color.Red.Render(state.String())
	default:
		return color.Cyan.Render(state.String())
	}
}

func paramsSummary(params map[string]domain.Value) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	out := ""
	for _, name := range names {
		out += fmt.Sprintf("%s=%s ", name, params[name].String())
	}
	return out
}

func lastLoss(reports map[int64]float64) string {
	var last int64 = -1
	var value float64
	for step, v := range reports {
		if step > last {
			last, value = step, v
		}
	}
	if last < 0 {
		return "-"
	}
	return fmt.Sprintf("%.6f @%d", value, last)
}

func startedAt(record domain.TrialRecord) string {
	ts := record.StartTime()
	if ts == nil {
		return "-"
	}
	return ts.Format("15:04:05")
}
