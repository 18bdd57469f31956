package repository

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/services/monitoring/domain"
)

var readingCols = []string{"id", "road_segment_id", "average_speed", "timestamp", "created_at"}

func TestCreateOrGetReading(t *testing.T) {
	segmentID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440010")
	slot := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		speed      float64
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, reading *models.SpeedReading, created bool, err error)
	}{
		{
			name:  "Inserts New Reading",
			speed: 18.756,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "created_at"}).
					AddRow(uuid.New(), time.Now().UTC())
				mock.ExpectQuery("INSERT INTO speed_readings").
					WithArgs(sqlmock.AnyArg(), segmentID, 18.76, slot, sqlmock.AnyArg()).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, created bool, err error) {
				assert.NoError(t, err)
				assert.True(t, created)
				require.NotNil(t, reading)
				// Speed is rounded to two digits and classified
				assert.Equal(t, 18.76, reading.AverageSpeed)
				assert.Equal(t, models.IntensityHigh, reading.TrafficIntensity)
			},
		},
		{
			name:  "Returns Existing Reading For Taken Slot",
			speed: 42.0,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO speed_readings").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

				existingID := uuid.New()
				rows := sqlmock.NewRows(readingCols).
					AddRow(existingID, segmentID, 55.5, slot, time.Now().UTC())
				mock.ExpectQuery("FROM speed_readings").
					WithArgs(segmentID, slot).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, created bool, err error) {
				assert.NoError(t, err)
				assert.False(t, created)
				require.NotNil(t, reading)
				// The stored speed wins over the attempted one
				assert.Equal(t, 55.5, reading.AverageSpeed)
				assert.Equal(t, models.IntensityLow, reading.TrafficIntensity)
			},
		},
		{
			name:  "Database Error",
			speed: 42.0,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO speed_readings").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, created bool, err error) {
				assert.Error(t, err)
				assert.False(t, created)
				assert.Nil(t, reading)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMonitoringRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			reading, created, err := repo.CreateOrGetReading(context.Background(), segmentID, slot, tc.speed)

			tc.assertFunc(t, reading, created, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateOrGetReading_RejectsInvalidSpeed(t *testing.T) {
	repo, mock, cleanup := setupMonitoringRepoTest(t)
	defer cleanup()

	segmentID := uuid.New()
	slot := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, speed := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		reading, created, err := repo.CreateOrGetReading(context.Background(), segmentID, slot, speed)

		assert.Nil(t, reading)
		assert.False(t, created)
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "average_speed", vErr.Field)
	}

	// No SQL may run for rejected input
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReading(t *testing.T) {
	readingID := uuid.New()
	segmentID := uuid.New()
	now := time.Now().UTC()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, reading *models.SpeedReading, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(readingCols).
					AddRow(readingID, segmentID, 35.0, now.Add(-time.Hour), now)
				mock.ExpectQuery("FROM speed_readings").
					WithArgs(readingID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, err error) {
				assert.NoError(t, err)
				require.NotNil(t, reading)
				assert.Equal(t, models.IntensityMedium, reading.TrafficIntensity)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM speed_readings").
					WithArgs(readingID).
					WillReturnRows(sqlmock.NewRows(readingCols))
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, err error) {
				assert.ErrorIs(t, err, domain.ErrReadingNotFound)
				assert.Nil(t, reading)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMonitoringRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			reading, err := repo.GetReading(context.Background(), readingID)

			tc.assertFunc(t, reading, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListReadings(t *testing.T) {
	segmentID := uuid.New()
	now := time.Now().UTC()

	t.Run("All Readings", func(t *testing.T) {
		repo, mock, cleanup := setupMonitoringRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows(readingCols).
			AddRow(uuid.New(), segmentID, 60.0, now.Add(-time.Hour), now).
			AddRow(uuid.New(), segmentID, 15.0, now.Add(-2*time.Hour), now)
		mock.ExpectQuery("FROM speed_readings").WillReturnRows(rows)

		readings, err := repo.ListReadings(context.Background(), models.ReadingFilter{})

		require.NoError(t, err)
		require.Len(t, readings, 2)
		assert.Equal(t, models.IntensityLow, readings[0].TrafficIntensity)
		assert.Equal(t, models.IntensityHigh, readings[1].TrafficIntensity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Filtered And Paginated", func(t *testing.T) {
		repo, mock, cleanup := setupMonitoringRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows(readingCols).
			AddRow(uuid.New(), segmentID, 30.0, now.Add(-3*time.Hour), now)
		mock.ExpectQuery("FROM speed_readings").
			WithArgs(segmentID, 10, 20).
			WillReturnRows(rows)

		readings, err := repo.ListReadings(context.Background(), models.ReadingFilter{
			RoadSegmentID: &segmentID,
			Limit:         10,
			Offset:        20,
		})

		require.NoError(t, err)
		require.Len(t, readings, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Result", func(t *testing.T) {
		repo, mock, cleanup := setupMonitoringRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("FROM speed_readings").
			WillReturnRows(sqlmock.NewRows(readingCols))

		readings, err := repo.ListReadings(context.Background(), models.ReadingFilter{})

		require.NoError(t, err)
		assert.Empty(t, readings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLatestReading(t *testing.T) {
	segmentID := uuid.New()
	now := time.Now().UTC()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, reading *models.SpeedReading, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(readingCols).
					AddRow(uuid.New(), segmentID, 72.3, now.Add(-time.Minute), now)
				mock.ExpectQuery("ORDER BY timestamp DESC, created_at DESC").
					WithArgs(segmentID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, err error) {
				assert.NoError(t, err)
				require.NotNil(t, reading)
				assert.Equal(t, 72.3, reading.AverageSpeed)
				assert.Equal(t, models.IntensityLow, reading.TrafficIntensity)
			},
		},
		{
			name: "No Readings Yields Nil",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("ORDER BY timestamp DESC, created_at DESC").
					WithArgs(segmentID).
					WillReturnRows(sqlmock.NewRows(readingCols))
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, err error) {
				assert.NoError(t, err)
				assert.Nil(t, reading)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("ORDER BY timestamp DESC, created_at DESC").
					WithArgs(segmentID).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, err error) {
				assert.Error(t, err)
				assert.Nil(t, reading)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMonitoringRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			reading, err := repo.LatestReading(context.Background(), segmentID)

			tc.assertFunc(t, reading, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateReadingSpeed(t *testing.T) {
	readingID := uuid.New()
	segmentID := uuid.New()
	now := time.Now().UTC()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, reading *models.SpeedReading, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(readingCols).
					AddRow(readingID, segmentID, 25.5, now.Add(-time.Hour), now)
				mock.ExpectQuery("UPDATE speed_readings").
					WithArgs(readingID, 25.5).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, err error) {
				assert.NoError(t, err)
				require.NotNil(t, reading)
				assert.Equal(t, 25.5, reading.AverageSpeed)
				assert.Equal(t, models.IntensityMedium, reading.TrafficIntensity)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE speed_readings").
					WithArgs(readingID, 25.5).
					WillReturnRows(sqlmock.NewRows(readingCols))
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, err error) {
				assert.ErrorIs(t, err, domain.ErrReadingNotFound)
				assert.Nil(t, reading)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMonitoringRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			reading, err := repo.UpdateReadingSpeed(context.Background(), readingID, 25.5)

			tc.assertFunc(t, reading, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateReadingSpeed_RejectsInvalidSpeed(t *testing.T) {
	repo, mock, cleanup := setupMonitoringRepoTest(t)
	defer cleanup()

	for _, speed := range []float64{0, math.NaN(), math.Inf(-1)} {
		reading, err := repo.UpdateReadingSpeed(context.Background(), uuid.New(), speed)

		assert.Nil(t, reading)
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "average_speed", vErr.Field)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReading(t *testing.T) {
	readingID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM speed_readings").
					WithArgs(readingID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM speed_readings").
					WithArgs(readingID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrReadingNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMonitoringRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.DeleteReading(context.Background(), readingID)

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
