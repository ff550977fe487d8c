package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/subtlepseudonym/zmanim"
	"github.com/subtlepseudonym/zmanim/config"
	"github.com/subtlepseudonym/zmanim/format"
)

const (
	defaultConfigFile = "zmanim.yaml"
	envFile           = ".env"
	maxDays           = 366
)

type Job struct {
	Name     string
	Schedule cron.Schedule
	Logger   *zap.Logger
}

func (j Job) Run() {
	j.Logger.Info("zman reached", zap.String("job", j.Name))
}

func main() {
	configFile := flag.String("config", "", "YAML config file (default "+defaultConfigFile+" if present)")
	dateFlag := flag.String("date", "", "first date to calculate, YYYY-MM-DD (default today)")
	days := flag.Int("days", 1, "number of consecutive days to print")
	calculatorFlag := flag.String("calculator", "", "solar calculator: noaa, suntimes or reference")
	icsFile := flag.String("ics", "", "write an iCalendar file instead of printing tables")
	watch := flag.Bool("watch", false, "log each configured job as it fires")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR: create logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *calculatorFlag != "" {
		cfg.Calculator = *calculatorFlag
	}
	err = cfg.Validate()
	if err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	cal, err := cfg.Calendar()
	if err != nil {
		logger.Fatal("create calendar", zap.Error(err))
	}
	loc := cal.Location()
	logger.Debug("calendar ready",
		zap.String("location", loc.Name()),
		zap.Float64("latitude", loc.Latitude()),
		zap.Float64("longitude", loc.Longitude()),
		zap.String("calculator", cal.Calculator().Name()),
	)

	if *watch {
		runJobs(cfg, cal, logger)
		return
	}

	start := zmanim.DateOf(time.Now().In(loc.TimeZone()))
	if *dateFlag != "" {
		start, err = zmanim.ParseDate(*dateFlag)
		if err != nil {
			logger.Fatal("parse date", zap.Error(err))
		}
	}
	if *days < 1 || *days > maxDays {
		logger.Fatal("days out of range", zap.Int("days", *days), zap.Int("max", maxDays))
	}

	dates, err := zmanim.Dates(start, *days)
	if err != nil {
		logger.Fatal("expand dates", zap.Error(err))
	}

	if *icsFile != "" {
		list := collect(cal, dates)
		err = writeICS(*icsFile, loc.Name(), list)
		if err != nil {
			logger.Fatal("write ics", zap.Error(err))
		}
		logger.Info("wrote calendar", zap.String("file", *icsFile), zap.Int("days", len(list)))
		return
	}

	err = printDays(os.Stdout, cal, dates)
	if err != nil {
		logger.Fatal("print zmanim", zap.Error(err))
	}
}

func collect(cal *zmanim.ZmanimCalendar, dates []zmanim.Date) []zmanim.Zmanim {
	list := make([]zmanim.Zmanim, 0, len(dates))
	for _, date := range dates {
		cal.SetDate(date)
		list = append(list, cal.Zmanim())
	}
	return list
}

// printDays writes a titled table for each date, separated by blank lines.
func printDays(w io.Writer, cal *zmanim.ZmanimCalendar, dates []zmanim.Date) error {
	loc := cal.Location()
	for i, zs := range collect(cal, dates) {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		err := format.Header(w, loc.Name(), dates[i], loc.TimeZone(), cal.Calculator().Name())
		if err != nil {
			return err
		}
		err = format.Table(w, zs)
		if err != nil {
			return err
		}
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadConfig layers the environment over the config file over defaults.
func loadConfig(filename string) (*config.Config, error) {
	err := config.LoadEnv(envFile)
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	switch {
	case filename != "":
		cfg, err = config.Open(filename)
	default:
		if _, statErr := os.Stat(defaultConfigFile); statErr == nil {
			cfg, err = config.Open(defaultConfigFile)
		}
	}
	if err != nil {
		return nil, err
	}

	return cfg, cfg.ApplyEnv()
}

func writeICS(filename, name string, list []zmanim.Zmanim) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	err = format.WriteICalendar(f, format.ICalendar(name, list, time.Now()))
	if err != nil {
		return err
	}
	return f.Close()
}

func runJobs(cfg *config.Config, cal *zmanim.ZmanimCalendar, logger *zap.Logger) {
	if len(cfg.Jobs) == 0 {
		logger.Fatal("no jobs configured")
	}

	now := time.Now() // used for logging cron entries
	c := cron.New()
	for _, j := range cfg.Jobs {
		jobLogger := logger.With(zap.String("schedule", j.Schedule))
		schedule, err := zmanim.ParseSchedule(j.Schedule, cal.Clone(), jobLogger)
		if err != nil {
			logger.Error("parse schedule", zap.String("job", j.Name), zap.Error(err))
			continue
		}

		job := Job{
			Name:     j.Name,
			Schedule: schedule,
			Logger:   jobLogger,
		}
		c.Schedule(schedule, job)

		next := schedule.Next(now)
		if next.IsZero() {
			logger.Warn("job never fires", zap.String("job", j.Name))
			continue
		}
		logger.Info("job scheduled", zap.String("job", j.Name), zap.Time("next", next))
	}

	c.Start()
	defer c.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	sig := <-signals
	logger.Info("stopping", zap.Stringer("signal", sig))
}
