package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/openroads/trafficmon/internal/pkg/constants"
	"github.com/openroads/trafficmon/internal/pkg/logger"
	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/services/monitoring"
	"github.com/openroads/trafficmon/services/monitoring/domain"
)

// CSV header columns the source must carry, in any order.
const (
	colStartLongitude = "Long_start"
	colStartLatitude  = "Lat_start"
	colEndLongitude   = "Long_end"
	colEndLatitude    = "Lat_end"
	colLength         = "Length"
	colSpeed          = "Speed"
)

// Params configures one import run. Each parsed row consumes one time slot:
// the first row lands on Start, each following row Interval later.
type Params struct {
	Start    time.Time
	Interval time.Duration
}

// RowError records a single failed input row. Row numbers are 1-indexed
// over the file, so the first data row is 2 (the header is row 1).
type RowError struct {
	Row int    `json:"row"`
	Err string `json:"error"`
}

// Report aggregates the outcome of an import run. Readings and segments
// that already existed fold into the "existing"/not-created counts.
type Report struct {
	SegmentsCreated  int        `json:"segments_created"`
	SegmentsExisting int        `json:"segments_existing"`
	ReadingsCreated  int        `json:"readings_created"`
	RowErrors        []RowError `json:"row_errors"`
}

func (r *Report) recordError(row int, err error) {
	r.RowErrors = append(r.RowErrors, RowError{Row: row, Err: err.Error()})
}

// Importer drives the row-by-row ingestion pipeline. A row failure never
// aborts the run; only an unreadable source does.
type Importer struct {
	repo monitoring.MonitoringRepo
	gw   monitoring.MonitoringGW
}

// NewImporter creates an importer. The gateway may be nil when event
// publishing is not wanted.
func NewImporter(repo monitoring.MonitoringRepo, gw monitoring.MonitoringGW) *Importer {
	return &Importer{repo: repo, gw: gw}
}

// RunFile imports a CSV file from disk. A file that cannot be opened fails
// the whole run before any row is processed.
func (imp *Importer) RunFile(ctx context.Context, path string, params Params) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, err)
	}
	defer f.Close()

	return imp.Run(ctx, f, params)
}

// Run imports CSV rows from the reader. On a mid-run read failure the
// report of everything committed so far is returned alongside the terminal
// error; committed progress is never rolled back.
func (imp *Importer) Run(ctx context.Context, source io.Reader, params Params) (*Report, error) {
	reader := csv.NewReader(source)

	columns, err := readHeader(reader)
	if err != nil {
		return nil, err
	}

	report := &Report{RowErrors: []RowError{}}
	current := params.Start

	// Data rows are numbered from 2, the header holds row 1.
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Malformed row: no time slot is consumed
				report.recordError(rowNum, err)
				continue
			}
			return report, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, err)
		}

		row, err := parseRow(columns, record)
		if err != nil {
			// Parse failure means "no row": the timestamp stays put
			report.recordError(rowNum, err)
			continue
		}

		// The row parsed, so it owns this time slot whether or not it
		// validates. Advancing happens exactly once from here on.
		slot := current
		current = current.Add(params.Interval)

		imp.resolveRow(ctx, report, rowNum, row, slot)
	}

	return report, nil
}

// importRow is one parsed CSV line.
type importRow struct {
	coords models.SegmentCoordinates
	length float64
	speed  float64
}

func (imp *Importer) resolveRow(ctx context.Context, report *Report, rowNum int, row importRow, slot time.Time) {
	candidate := models.RoadSegment{
		StartLongitude: row.coords.StartLongitude,
		StartLatitude:  row.coords.StartLatitude,
		EndLongitude:   row.coords.EndLongitude,
		EndLatitude:    row.coords.EndLatitude,
		Length:         row.length,
	}
	candidate.Normalize()
	if err := candidate.Validate(); err != nil {
		report.recordError(rowNum, err)
		return
	}

	segment, segmentCreated, err := imp.repo.CreateOrGetSegment(ctx, candidate.Coordinates(), candidate.Length)
	if err != nil {
		report.recordError(rowNum, err)
		return
	}
	if segmentCreated {
		report.SegmentsCreated++
	} else {
		report.SegmentsExisting++
	}

	reading := models.SpeedReading{
		RoadSegmentID: segment.ID,
		AverageSpeed:  row.speed,
		Timestamp:     slot,
	}
	reading.Normalize()
	if err := reading.Validate(); err != nil {
		report.recordError(rowNum, err)
		return
	}

	stored, readingCreated, err := imp.repo.CreateOrGetReading(ctx, segment.ID, slot, reading.AverageSpeed)
	if err != nil {
		report.recordError(rowNum, err)
		return
	}
	if readingCreated {
		report.ReadingsCreated++
		imp.publishReading(ctx, stored)
	}
}

func (imp *Importer) publishReading(ctx context.Context, reading *models.SpeedReading) {
	if imp.gw == nil {
		return
	}
	event := models.ReadingCreatedEvent{
		ReadingID:        reading.ID,
		RoadSegmentID:    reading.RoadSegmentID,
		AverageSpeed:     reading.AverageSpeed,
		Timestamp:        reading.Timestamp,
		TrafficIntensity: reading.Intensity(),
		Source:           constants.SourceImport,
	}
	if err := imp.gw.PublishReadingCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish imported reading event",
			logger.String("reading_id", reading.ID.String()),
			logger.Err(err),
		)
	}
}

// readHeader maps the required column names to their positions.
func readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %s", domain.ErrSourceUnavailable, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	for _, required := range []string{
		colStartLongitude, colStartLatitude,
		colEndLongitude, colEndLatitude,
		colLength, colSpeed,
	} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrSourceUnavailable, required)
		}
	}
	return columns, nil
}

func parseRow(columns map[string]int, record []string) (importRow, error) {
	fields := map[string]float64{}
	for _, name := range []string{
		colStartLongitude, colStartLatitude,
		colEndLongitude, colEndLatitude,
		colLength, colSpeed,
	} {
		idx := columns[name]
		if idx >= len(record) {
			return importRow{}, fmt.Errorf("missing field %q", name)
		}
		value, err := strconv.ParseFloat(record[idx], 64)
		if err != nil {
			return importRow{}, fmt.Errorf("field %q: %s is not numeric", name, record[idx])
		}
		fields[name] = value
	}

	return importRow{
		coords: models.SegmentCoordinates{
			StartLongitude: fields[colStartLongitude],
			StartLatitude:  fields[colStartLatitude],
			EndLongitude:   fields[colEndLongitude],
			EndLatitude:    fields[colEndLatitude],
		},
		length: fields[colLength],
		speed:  fields[colSpeed],
	}, nil
}
