package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openroads/trafficmon/internal/pkg/constants"
	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/services/monitoring/domain"
	"github.com/openroads/trafficmon/services/monitoring/mocks"
)

func TestCreateReading(t *testing.T) {
	segmentID := uuid.New()
	slot := time.Now().UTC().Add(-time.Hour)

	testCases := []struct {
		name       string
		reading    *models.SpeedReading
		mockSetup  func(repo *mocks.MockMonitoringRepo, gw *mocks.MockMonitoringGW)
		assertFunc func(t *testing.T, reading *models.SpeedReading, created bool, err error)
	}{
		{
			name: "Creates Reading And Publishes Event",
			reading: &models.SpeedReading{
				RoadSegmentID: segmentID,
				AverageSpeed:  18.756,
				Timestamp:     slot,
			},
			mockSetup: func(repo *mocks.MockMonitoringRepo, gw *mocks.MockMonitoringGW) {
				repo.EXPECT().
					GetSegment(gomock.Any(), segmentID).
					Return(&models.RoadSegment{ID: segmentID}, nil)

				stored := &models.SpeedReading{
					ID:            uuid.New(),
					RoadSegmentID: segmentID,
					AverageSpeed:  18.76,
					Timestamp:     slot,
				}
				repo.EXPECT().
					CreateOrGetReading(gomock.Any(), segmentID, slot, 18.76).
					Return(stored, true, nil)

				gw.EXPECT().
					PublishReadingCreated(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event models.ReadingCreatedEvent) error {
						assert.Equal(t, stored.ID, event.ReadingID)
						assert.Equal(t, models.IntensityHigh, event.TrafficIntensity)
						assert.Equal(t, constants.SourceAPI, event.Source)
						return nil
					})
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, created bool, err error) {
				assert.NoError(t, err)
				assert.True(t, created)
				require.NotNil(t, reading)
			},
		},
		{
			name: "Existing Slot Skips Publish",
			reading: &models.SpeedReading{
				RoadSegmentID: segmentID,
				AverageSpeed:  42,
				Timestamp:     slot,
			},
			mockSetup: func(repo *mocks.MockMonitoringRepo, gw *mocks.MockMonitoringGW) {
				repo.EXPECT().
					GetSegment(gomock.Any(), segmentID).
					Return(&models.RoadSegment{ID: segmentID}, nil)
				repo.EXPECT().
					CreateOrGetReading(gomock.Any(), segmentID, slot, 42.0).
					Return(&models.SpeedReading{ID: uuid.New(), AverageSpeed: 30}, false, nil)
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, created bool, err error) {
				assert.NoError(t, err)
				assert.False(t, created)
				assert.Equal(t, 30.0, reading.AverageSpeed)
			},
		},
		{
			name: "Unknown Segment",
			reading: &models.SpeedReading{
				RoadSegmentID: segmentID,
				AverageSpeed:  42,
				Timestamp:     slot,
			},
			mockSetup: func(repo *mocks.MockMonitoringRepo, gw *mocks.MockMonitoringGW) {
				repo.EXPECT().
					GetSegment(gomock.Any(), segmentID).
					Return(nil, domain.ErrSegmentNotFound)
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, created bool, err error) {
				assert.ErrorIs(t, err, domain.ErrSegmentNotFound)
				assert.Nil(t, reading)
			},
		},
		{
			name: "Rejects Non-Positive Speed",
			reading: &models.SpeedReading{
				RoadSegmentID: segmentID,
				AverageSpeed:  -5,
				Timestamp:     slot,
			},
			mockSetup: func(repo *mocks.MockMonitoringRepo, gw *mocks.MockMonitoringGW) {},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, created bool, err error) {
				var vErr *models.ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, "average_speed", vErr.Field)
			},
		},
		{
			name: "Rejects Future Timestamp",
			reading: &models.SpeedReading{
				RoadSegmentID: segmentID,
				AverageSpeed:  42,
				Timestamp:     time.Now().Add(24 * time.Hour),
			},
			mockSetup: func(repo *mocks.MockMonitoringRepo, gw *mocks.MockMonitoringGW) {},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, created bool, err error) {
				var vErr *models.ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, "timestamp", vErr.Field)
			},
		},
		{
			name: "Publish Failure Does Not Fail Create",
			reading: &models.SpeedReading{
				RoadSegmentID: segmentID,
				AverageSpeed:  42,
				Timestamp:     slot,
			},
			mockSetup: func(repo *mocks.MockMonitoringRepo, gw *mocks.MockMonitoringGW) {
				repo.EXPECT().
					GetSegment(gomock.Any(), segmentID).
					Return(&models.RoadSegment{ID: segmentID}, nil)
				repo.EXPECT().
					CreateOrGetReading(gomock.Any(), segmentID, slot, 42.0).
					Return(&models.SpeedReading{ID: uuid.New(), AverageSpeed: 42}, true, nil)
				gw.EXPECT().
					PublishReadingCreated(gomock.Any(), gomock.Any()).
					Return(errors.New("nsqd unreachable"))
			},
			assertFunc: func(t *testing.T, reading *models.SpeedReading, created bool, err error) {
				assert.NoError(t, err)
				assert.True(t, created)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockRepo, mockGW, finish := setupMonitoringUCTest(t)
			defer finish()

			tc.mockSetup(mockRepo, mockGW)

			reading, created, err := uc.CreateReading(context.Background(), tc.reading)

			tc.assertFunc(t, reading, created, err)
		})
	}
}

func TestCreateReading_DefaultsTimestamp(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupMonitoringUCTest(t)
	defer finish()

	segmentID := uuid.New()
	before := time.Now().UTC()

	mockRepo.EXPECT().
		GetSegment(gomock.Any(), segmentID).
		Return(&models.RoadSegment{ID: segmentID}, nil)
	mockRepo.EXPECT().
		CreateOrGetReading(gomock.Any(), segmentID, gomock.Any(), 50.0).
		DoAndReturn(func(_ context.Context, id uuid.UUID, ts time.Time, speed float64) (*models.SpeedReading, bool, error) {
			assert.False(t, ts.Before(before))
			return &models.SpeedReading{ID: uuid.New(), RoadSegmentID: id, AverageSpeed: speed, Timestamp: ts}, true, nil
		})
	mockGW.EXPECT().PublishReadingCreated(gomock.Any(), gomock.Any()).Return(nil)

	_, created, err := uc.CreateReading(context.Background(), &models.SpeedReading{
		RoadSegmentID: segmentID,
		AverageSpeed:  50,
	})

	assert.NoError(t, err)
	assert.True(t, created)
}

func TestUpdateReadingSpeed(t *testing.T) {
	readingID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMonitoringUCTest(t)
		defer finish()

		mockRepo.EXPECT().
			UpdateReadingSpeed(gomock.Any(), readingID, 33.33).
			Return(&models.SpeedReading{ID: readingID, AverageSpeed: 33.33}, nil)

		reading, err := uc.UpdateReadingSpeed(context.Background(), readingID, 33.333)

		assert.NoError(t, err)
		assert.Equal(t, 33.33, reading.AverageSpeed)
	})

	t.Run("Rejects Non-Positive Speed", func(t *testing.T) {
		uc, _, _, finish := setupMonitoringUCTest(t)
		defer finish()

		reading, err := uc.UpdateReadingSpeed(context.Background(), readingID, 0)

		var vErr *models.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Nil(t, reading)
	})

	t.Run("Rejects Non-Finite Speed", func(t *testing.T) {
		uc, _, _, finish := setupMonitoringUCTest(t)
		defer finish()

		reading, err := uc.UpdateReadingSpeed(context.Background(), readingID, math.NaN())

		var vErr *models.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Nil(t, reading)
	})

	t.Run("Not Found", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMonitoringUCTest(t)
		defer finish()

		mockRepo.EXPECT().
			UpdateReadingSpeed(gomock.Any(), readingID, 20.0).
			Return(nil, domain.ErrReadingNotFound)

		_, err := uc.UpdateReadingSpeed(context.Background(), readingID, 20)
		assert.ErrorIs(t, err, domain.ErrReadingNotFound)
	})
}

func TestLatestReading(t *testing.T) {
	segmentID := uuid.New()

	t.Run("Returns Latest", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMonitoringUCTest(t)
		defer finish()

		latest := &models.SpeedReading{ID: uuid.New(), RoadSegmentID: segmentID, AverageSpeed: 27.5}
		mockRepo.EXPECT().GetSegment(gomock.Any(), segmentID).Return(&models.RoadSegment{ID: segmentID}, nil)
		mockRepo.EXPECT().LatestReading(gomock.Any(), segmentID).Return(latest, nil)

		reading, err := uc.LatestReading(context.Background(), segmentID)

		assert.NoError(t, err)
		assert.Equal(t, latest, reading)
	})

	t.Run("Nil When Segment Has No Readings", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMonitoringUCTest(t)
		defer finish()

		mockRepo.EXPECT().GetSegment(gomock.Any(), segmentID).Return(&models.RoadSegment{ID: segmentID}, nil)
		mockRepo.EXPECT().LatestReading(gomock.Any(), segmentID).Return(nil, nil)

		reading, err := uc.LatestReading(context.Background(), segmentID)

		assert.NoError(t, err)
		assert.Nil(t, reading)
	})

	t.Run("Unknown Segment", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMonitoringUCTest(t)
		defer finish()

		mockRepo.EXPECT().GetSegment(gomock.Any(), segmentID).Return(nil, domain.ErrSegmentNotFound)

		_, err := uc.LatestReading(context.Background(), segmentID)
		assert.ErrorIs(t, err, domain.ErrSegmentNotFound)
	})
}
