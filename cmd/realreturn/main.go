package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"realreturn/internal/compare"
	"realreturn/internal/config"
	"realreturn/internal/fetch"
	"realreturn/internal/model"
	"realreturn/internal/report"
	"realreturn/internal/schedule"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	var (
		cfgPath  = flag.String("config", "configs/config.yaml", "path to config file")
		amountFl = flag.String("amount", "", "initial investment amount in the report currency")
		startFl  = flag.String("start", "", "start date (YYYY-MM-DD)")
		endFl    = flag.String("end", "", "end date (YYYY-MM-DD)")
		watch    = flag.Bool("watch", false, "keep running and re-evaluate on the configured cron schedule")
	)
	flag.Parse()

	if v := os.Getenv("CONFIG_PATH"); v != "" && *cfgPath == "configs/config.yaml" {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	stdin := bufio.NewReader(os.Stdin)

	amount, err := readAmount(stdin, *amountFl, cfg.Currency.Report)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	dateRange, err := readRange(stdin, *startFl, *endFl)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	markets := fetch.NewYahooFetcher(cfg.Proxy)
	economic := fetch.NewFREDFetcher(cfg.Proxy)
	log.Printf("[INFO] data sources: %s (markets), %s (economic)", markets.Name(), economic.Name())

	specs := make([]compare.MarketSpec, 0, len(cfg.Markets))
	for _, m := range cfg.Markets {
		specs = append(specs, compare.MarketSpec{
			Name:            m.Name,
			Ticker:          m.Ticker,
			InflationSeries: m.InflationSeries,
			InterestSeries:  m.InterestSeries,
		})
	}
	engine := compare.NewEngine(markets, economic, cfg.Currency.Pair, cfg.Currency.Report, cfg.Currency.Base, specs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	run := func(r model.DateRange) error {
		cmp, err := engine.Run(ctx, amount, r)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(report.FormatComparison(cmp))
		fmt.Println(report.BarChart(cmp))
		return nil
	}

	if err := run(dateRange); err != nil {
		log.Fatalf("[FATAL] comparison failed: %v", err)
	}

	if !*watch {
		return
	}

	// Watch mode: re-run with the end date advanced to today.
	sched := schedule.NewScheduler()
	err = sched.Register(cfg.Schedule.WatchCron, func() {
		r := model.DateRange{Start: dateRange.Start, End: time.Now()}
		if err := run(r); err != nil {
			log.Printf("[ERROR] re-evaluation failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	sched.Start()
	defer sched.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}

// readAmount takes the investment amount from the flag or an interactive prompt.
func readAmount(stdin *bufio.Reader, flagVal, currency string) (float64, error) {
	s := flagVal
	if s == "" {
		fmt.Printf("Enter initial investment amount in %s: ", currency)
		line, err := stdin.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("read amount: %w", err)
		}
		s = strings.TrimSpace(line)
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: expected a number", s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("invalid amount %.2f: must be positive", amount)
	}
	return amount, nil
}

// readRange takes the date range from flags or interactive prompts.
func readRange(stdin *bufio.Reader, startVal, endVal string) (model.DateRange, error) {
	prompt := func(label, flagVal string) (string, error) {
		if flagVal != "" {
			return flagVal, nil
		}
		fmt.Printf("Enter %s date (YYYY-MM-DD): ", label)
		line, err := stdin.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read %s date: %w", label, err)
		}
		return strings.TrimSpace(line), nil
	}

	start, err := prompt("start", startVal)
	if err != nil {
		return model.DateRange{}, err
	}
	end, err := prompt("end", endVal)
	if err != nil {
		return model.DateRange{}, err
	}
	return model.ParseDateRange(start, end)
}
