// Command sizecalc runs one position-sizing calculation and prints it as tables.
//
// Flags use the shareable-link keys, so these are equivalent:
//
//	sizecalc -entry 100 -sl 98 -tp 110 -ra 1
//	sizecalc -link 'http://localhost:8080/?entry=100&sl=98&tp=110&ra=1'
//
// Flags given alongside -link override the link's values.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"

	"positionSizer/config"
	"positionSizer/internal/adapters/excel"
	"positionSizer/internal/adapters/logger"
	"positionSizer/internal/adapters/params"
	"positionSizer/internal/adapters/render"
	"positionSizer/internal/app"
	"positionSizer/internal/domain"
	"positionSizer/internal/monitoring"
	"positionSizer/internal/risk"
	"positionSizer/internal/utils"
)

type options struct {
	link     string
	switchTo string
	csvPath  string
	xlsxPath string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sizecalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.link, "link", "", "shareable link to load inputs from")
	fs.StringVar(&opts.switchTo, "switch", "", "print the link with risk switched to percent or currency")
	fs.StringVar(&opts.csvPath, "csv", "", "also write the calculation to this CSV file")
	fs.StringVar(&opts.xlsxPath, "xlsx", "", "also write the calculation to this Excel workbook")

	fs.String(params.KeyEntry, "", "entry price")
	fs.String(params.KeyStopLoss, "", "stop-loss price")
	fs.String(params.KeyTakeProfit, "", "take-profit price")
	fs.String(params.KeyCapital, "", "account capital")
	fs.String(params.KeyRiskAmount, "", "risk amount (percent of capital, or currency with -rd)")
	fs.Bool(params.KeyRiskDollars, false, "risk amount is in currency")
	fs.String(params.KeyMaxLeverage, "", "max leverage")
	fs.Bool(params.KeyDiscrete, false, "round size down to whole units")
	fs.String(params.KeyTrigger, "", "trailing stop trigger, in risk multiples")
	fs.String(params.KeyLock, "", "trailing stop lock, in risk multiples")

	if err := fs.Parse(args); err != nil {
		return err
	}

	q, err := buildQuery(fs, opts.link)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	appLogger := logger.NewWriterLogger(stderr, cfg.LogLevel)

	svc, err := app.NewSizingService(cfg, appLogger, risk.NewCalculator(), monitoring.NewRecorder())
	if err != nil {
		return err
	}

	ctx := context.Background()
	if opts.switchTo != "" {
		_, link, err := svc.SwitchRiskMode(ctx, q, domain.RiskMode(opts.switchTo))
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, link)
		return nil
	}

	calc, err := svc.Calculate(ctx, q)
	if err != nil {
		return err
	}
	render.Calculation(stdout, calc)

	if opts.csvPath != "" {
		if err := utils.WriteCalculationToCSV(calc, opts.csvPath); err != nil {
			return err
		}
		appLogger.Info(ctx, "Saved to", map[string]interface{}{"filename": opts.csvPath})
	}
	if opts.xlsxPath != "" {
		if err := excel.NewReporter().WriteCalculation(calc, opts.xlsxPath); err != nil {
			return err
		}
		appLogger.Info(ctx, "Saved to", map[string]interface{}{"filename": opts.xlsxPath})
	}
	return nil
}

// buildQuery starts from the link's query and overlays every input flag that
// was set explicitly. Flags left at their zero value fall back to defaults.
func buildQuery(fs *flag.FlagSet, link string) (url.Values, error) {
	q := url.Values{}
	if link != "" {
		u, err := url.Parse(link)
		if err != nil {
			return nil, fmt.Errorf("parse link: %w", err)
		}
		q = u.Query()
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "link", "switch", "csv", "xlsx":
			return
		}
		q.Set(f.Name, f.Value.String())
	})
	return q, nil
}
