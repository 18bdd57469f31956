package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/openroads/trafficmon/internal/pkg/config"
	"github.com/openroads/trafficmon/internal/pkg/database"
	"github.com/openroads/trafficmon/internal/pkg/logger"
	nsqpkg "github.com/openroads/trafficmon/internal/pkg/nsq"
	"github.com/openroads/trafficmon/services/monitoring/domain"
	"github.com/openroads/trafficmon/services/monitoring/gateway"
	"github.com/openroads/trafficmon/services/monitoring/importer"
	"github.com/openroads/trafficmon/services/monitoring/repository"
)

func main() {
	var (
		configPath = flag.String("config", "config/monitoring.env", "path to environment config file")
		startDate  = flag.String("start-date", "2023-01-01", "timestamp assigned to the first row (YYYY-MM-DD)")
		interval   = flag.Duration("interval", time.Hour, "time added between consecutive rows")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <csv-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	csvPath := flag.Arg(0)

	start, err := time.Parse("2006-01-02", *startDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -start-date %q: %v\n", *startDate, err)
		os.Exit(2)
	}

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
	}

	// The import path does not read segment listings, so no Redis client is wired
	monitoringRepo := repository.NewMonitoringRepository(configs, postgresClient.GetDB(), nil, repository.ExactKeyer{})
	monitoringGW := gateway.NewMonitoringGW(producer)

	imp := importer.NewImporter(monitoringRepo, monitoringGW)
	report, err := imp.RunFile(context.Background(), csvPath, importer.Params{
		Start:    start.UTC(),
		Interval: *interval,
	})
	if err != nil && !errors.Is(err, domain.ErrSourceUnavailable) {
		zapLogger.Fatal("Import failed", logger.Err(err))
	}

	if report != nil {
		printReport(report)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import aborted: %v\n", err)
		os.Exit(1)
	}
}

func printReport(report *importer.Report) {
	fmt.Printf("Segments created:  %d\n", report.SegmentsCreated)
	fmt.Printf("Segments existing: %d\n", report.SegmentsExisting)
	fmt.Printf("Readings created:  %d\n", report.ReadingsCreated)
	if len(report.RowErrors) > 0 {
		fmt.Printf("Row errors:        %d\n", len(report.RowErrors))
		for _, rowErr := range report.RowErrors {
			fmt.Printf("  row %d: %s\n", rowErr.Row, rowErr.Err)
		}
	}
}
