package roundrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/roundrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/round"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const maxStops = 3

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RoundRepositoryIntegrationTestSuite provides integration tests for
// RoundRepository using PostgreSQL containers, covering the round aggregate
// with its stop children.
type RoundRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *roundrepo.GormRoundRepository
	tracker    *MockAggregateTracker
}

func (suite *RoundRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&roundrepo.RoundDTO{}, &roundrepo.StopDTO{}))
}

func (suite *RoundRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_rounds CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.repository = roundrepo.NewGormRoundRepository(suite.db, suite.tracker)
}

func (suite *RoundRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RoundRepositoryIntegrationTestSuite) TestAdd_Get_RoundTripsStopsInSequenceOrder() {
	ctx := context.Background()

	testRound := suite.createRoundWithStops(kernel.NewUUID(), 3)
	suite.Require().NoError(suite.repository.Add(ctx, testRound))

	retrieved, err := suite.repository.Get(ctx, testRound.ID())
	suite.Require().NoError(err)

	suite.Equal(testRound.ID(), retrieved.ID())
	suite.Equal(round.Ready, retrieved.Status())
	suite.Require().Len(retrieved.Stops(), 3)
	for i, stop := range retrieved.Stops() {
		suite.Equal(i+1, stop.Sequence())
		suite.Equal(testRound.Stops()[i].ID(), stop.ID())
		suite.Equal(testRound.Stops()[i].OrderID(), stop.OrderID())
		suite.False(stop.IsDelivered())
	}
}

func (suite *RoundRepositoryIntegrationTestSuite) TestGet_NonExistentRound_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RoundRepositoryIntegrationTestSuite) TestGetReadyByDriver_ReturnsDriversReadyRound() {
	ctx := context.Background()
	driverID := kernel.NewUUID()

	readyRound := suite.createRoundWithStops(driverID, 1)
	otherDriversRound := suite.createRoundWithStops(kernel.NewUUID(), 1)
	suite.Require().NoError(suite.repository.Add(ctx, readyRound))
	suite.Require().NoError(suite.repository.Add(ctx, otherDriversRound))

	retrieved, err := suite.repository.GetReadyByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Equal(readyRound.ID(), retrieved.ID())
}

func (suite *RoundRepositoryIntegrationTestSuite) TestGetReadyByDriver_IgnoresStartedRounds() {
	ctx := context.Background()
	driverID := kernel.NewUUID()

	startedRound := suite.createRoundWithStops(driverID, 1)
	suite.Require().NoError(startedRound.Start(time.Date(2026, 3, 14, 18, 5, 0, 0, time.UTC)))
	suite.Require().NoError(suite.repository.Add(ctx, startedRound))

	retrieved, err := suite.repository.GetReadyByDriver(ctx, driverID)
	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RoundRepositoryIntegrationTestSuite) TestUpdate_AppendedStopIsPersisted() {
	ctx := context.Background()

	testRound := suite.createRoundWithStops(kernel.NewUUID(), 1)
	suite.Require().NoError(suite.repository.Add(ctx, testRound))

	newStop := suite.createStop(2)
	suite.Require().NoError(testRound.AddStop(newStop, maxStops))
	suite.Require().NoError(suite.repository.Update(ctx, testRound))

	retrieved, err := suite.repository.Get(ctx, testRound.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Stops(), 2)
	suite.Equal(newStop.ID(), retrieved.Stops()[1].ID())
}

func (suite *RoundRepositoryIntegrationTestSuite) TestUpdate_DeliveryProgressIsPersisted() {
	ctx := context.Background()
	departureTime := time.Date(2026, 3, 14, 18, 10, 0, 0, time.UTC)

	testRound := suite.createRoundWithStops(kernel.NewUUID(), 2)
	suite.Require().NoError(suite.repository.Add(ctx, testRound))

	suite.Require().NoError(testRound.Start(departureTime))
	suite.Require().NoError(testRound.MarkStopDelivered(testRound.Stops()[0].ID(), departureTime.Add(12*time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, testRound))

	retrieved, err := suite.repository.Get(ctx, testRound.ID())
	suite.Require().NoError(err)
	suite.Equal(round.InProgress, retrieved.Status())
	suite.Require().NotNil(retrieved.ActualDeparture())
	suite.True(departureTime.Equal(*retrieved.ActualDeparture()))
	suite.True(retrieved.Stops()[0].IsDelivered())
	suite.NotNil(retrieved.Stops()[0].ActualArrival())
	suite.False(retrieved.Stops()[1].IsDelivered())
}

func (suite *RoundRepositoryIntegrationTestSuite) TestDelete_RemovesRoundAndStops() {
	ctx := context.Background()

	testRound := suite.createRoundWithStops(kernel.NewUUID(), 2)
	suite.Require().NoError(suite.repository.Add(ctx, testRound))

	suite.Require().NoError(suite.repository.Delete(ctx, testRound.ID()))

	_, err := suite.repository.Get(ctx, testRound.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var stopCount int64
	suite.Require().NoError(suite.db.Model(&roundrepo.StopDTO{}).
		Where("delivery_round_id = ?", testRound.ID().Bytes()).
		Count(&stopCount).Error)
	suite.Zero(stopCount)
}

func (suite *RoundRepositoryIntegrationTestSuite) TestDelete_NonExistentRound_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createRoundWithStops builds a ready round holding the given number of stops.
func (suite *RoundRepositoryIntegrationTestSuite) createRoundWithStops(
	driverID kernel.UUID, stopCount int,
) *round.Round {
	testRound, err := round.NewRound(kernel.NewUUID(), driverID, nil, nil)
	suite.Require().NoError(err)

	for i := 1; i <= stopCount; i++ {
		suite.Require().NoError(testRound.AddStop(suite.createStop(i), maxStops))
	}

	return testRound
}

// createStop builds a pending stop at the given sequence position.
func (suite *RoundRepositoryIntegrationTestSuite) createStop(sequence int) *round.Stop {
	point, err := kernel.NewGeoPoint(48.85+float64(sequence)/100, 2.35)
	suite.Require().NoError(err)
	windowStart := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC).Add(time.Duration(sequence) * 10 * time.Minute)

	stop, err := round.NewStop(
		kernel.NewUUID(),
		kernel.NewUUID(),
		sequence,
		"12 Rue des Acacias",
		&point,
		&windowStart,
		nil,
	)
	suite.Require().NoError(err)
	return stop
}

func TestRoundRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RoundRepositoryIntegrationTestSuite))
}
