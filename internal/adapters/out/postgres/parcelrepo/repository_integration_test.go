package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parceltracker/internal/adapters/out/postgres"
	"parceltracker/internal/adapters/out/postgres/guestrepo"
	"parceltracker/internal/adapters/out/postgres/parcelrepo"
	"parceltracker/internal/adapters/out/postgres/pgtest"
	"parceltracker/internal/core/domain/model/guest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var base = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	guests     *guestrepo.GormGuestRepository
	repository *parcelrepo.GormParcelRepository
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	database, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres.Migrate(ctx, database.DB))
	suite.guests = guestrepo.NewGormGuestRepository(database.DB)
	suite.repository = parcelrepo.NewGormParcelRepository(database.DB)
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *ParcelRepositoryIntegrationTestSuite) addGuest() *guest.Guest {
	g, err := guest.NewGuest(kernel.NewUUID(), "John Doe", base)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.guests.Add(context.Background(), g))
	return g
}

func (suite *ParcelRepositoryIntegrationTestSuite) add(owner *guest.Guest, received time.Time) *parcel.Parcel {
	ctx := context.Background()
	id, err := suite.repository.NextID(ctx)
	suite.Require().NoError(err)
	p, err := parcel.NewParcel(id, owner.ID(), "Box", received)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, p))
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAddForUnknownGuestIsNotFound() {
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "Box", base)
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), p)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestPickUpRoundTrip() {
	ctx := context.Background()
	p := suite.add(suite.addGuest(), base)
	suite.Require().NoError(p.PickUp())
	suite.Require().NoError(p.Describe("Big box"))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.Equal(parcel.PickedUp, got.Status())
	suite.Equal("Big box", got.Description())
	suite.True(got.ReceivedTime().Equal(base))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()
	john := suite.addGuest()
	jane := suite.addGuest()
	p := suite.add(john, base)

	pending, err := suite.repository.Exists(ctx, parcel.Unclaimed(john.ID()))
	suite.Require().NoError(err)
	suite.True(pending)

	none, err := suite.repository.Exists(ctx, parcel.OwnedBy(jane.ID()))
	suite.Require().NoError(err)
	suite.False(none)

	suite.Require().NoError(p.PickUp())
	suite.Require().NoError(suite.repository.Update(ctx, p))
	pending, err = suite.repository.Exists(ctx, parcel.Unclaimed(john.ID()))
	suite.Require().NoError(err)
	suite.False(pending)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestListAndFind() {
	ctx := context.Background()
	john := suite.addGuest()
	jane := suite.addGuest()
	late := suite.add(john, base.Add(time.Hour))
	early := suite.add(jane, base)

	items, total, err := suite.repository.List(ctx, kernel.FirstPage())
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(items, 2)
	suite.Equal(early.ID(), items[0].ID())
	suite.Equal(late.ID(), items[1].ID())

	owner := john.ID()
	found, err := suite.repository.Find(ctx, parcel.Filter{GuestID: &owner}.Specification())
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(late.ID(), found[0].ID())

	pickedUp := parcel.PickedUp
	found, err = suite.repository.Find(ctx, parcel.Filter{Status: &pickedUp}.Specification())
	suite.Require().NoError(err)
	suite.Empty(found)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	p := suite.add(suite.addGuest(), base)

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, p.ID()), errs.ErrObjectNotFound)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
