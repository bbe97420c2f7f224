//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"asset-allocation-backend/internal/database/models"
	"asset-allocation-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AssetRepositoryTestSuite tests the AssetRepository
type AssetRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssetRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

func (suite *AssetRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssetRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *AssetRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AssetRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *AssetRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssetRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(suite.ctx, user))
	return user
}

func (suite *AssetRepositoryTestSuite) createAsset(owner *models.User) *models.Asset {
	asset := suite.factories.Asset.Create(owner.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, asset))
	return asset
}

func (suite *AssetRepositoryTestSuite) TestCreateAndGet() {
	owner := suite.createUser()
	asset := suite.createAsset(owner)

	got, err := suite.repo.GetByID(suite.ctx, asset.ID)
	suite.Require().NoError(err)
	suite.Equal(asset.SerialNo, got.SerialNo)
	suite.Equal(owner.ID, got.OwnerID)

	bySerial, err := suite.repo.GetBySerialNo(suite.ctx, asset.SerialNo)
	suite.Require().NoError(err)
	suite.Equal(asset.ID, bySerial.ID)
}

func (suite *AssetRepositoryTestSuite) TestCreate_UnknownPurchaserRejected() {
	asset := suite.factories.Asset.Create(uuid.New())
	suite.Error(suite.repo.Create(suite.ctx, asset))
}

func (suite *AssetRepositoryTestSuite) TestGetByIDs() {
	owner := suite.createUser()
	a := suite.createAsset(owner)
	b := suite.createAsset(owner)

	assets, err := suite.repo.GetByIDs(suite.ctx, []uuid.UUID{a.ID, b.ID, uuid.New()})
	suite.Require().NoError(err)
	suite.Len(assets, 2)
}

func (suite *AssetRepositoryTestSuite) TestUpdateDetails_NeverWritesOwner() {
	owner := suite.createUser()
	other := suite.createUser()
	asset := suite.createAsset(owner)

	asset.Name = "Renamed"
	asset.OwnerID = other.ID
	asset.PurchaserID = other.ID
	suite.Require().NoError(suite.repo.UpdateDetails(suite.ctx, asset))

	got, err := suite.repo.GetByID(suite.ctx, asset.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", got.Name)
	suite.Equal(owner.ID, got.OwnerID)
	suite.Equal(owner.ID, got.PurchaserID)
}

func (suite *AssetRepositoryTestSuite) TestUpdateDetails_Missing() {
	asset := suite.factories.Asset.Create(uuid.New())
	suite.ErrorIs(suite.repo.UpdateDetails(suite.ctx, asset), gorm.ErrRecordNotFound)
}

func (suite *AssetRepositoryTestSuite) TestTransferOwnership() {
	owner := suite.createUser()
	next := suite.createUser()
	asset := suite.createAsset(owner)

	changed, err := suite.repo.TransferOwnership(suite.ctx, asset.ID, next.ID)
	suite.Require().NoError(err)
	suite.True(changed)

	got, err := suite.repo.GetByID(suite.ctx, asset.ID)
	suite.Require().NoError(err)
	suite.Equal(next.ID, got.OwnerID)
	suite.Equal(owner.ID, got.PurchaserID)
}

func (suite *AssetRepositoryTestSuite) TestTransferOwnership_AlreadyConverged() {
	owner := suite.createUser()
	asset := suite.createAsset(owner)

	changed, err := suite.repo.TransferOwnership(suite.ctx, asset.ID, owner.ID)

	suite.NoError(err)
	suite.False(changed)
}

func (suite *AssetRepositoryTestSuite) TestTransferOwnership_MissingAsset() {
	owner := suite.createUser()

	_, err := suite.repo.TransferOwnership(suite.ctx, uuid.New(), owner.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *AssetRepositoryTestSuite) TestTransferOwnership_ConcurrentWritersConverge() {
	purchaser := suite.createUser()
	asset := suite.createAsset(purchaser)
	candidates := []*models.User{suite.createUser(), suite.createUser(), suite.createUser(), suite.createUser()}
	tx := NewTransactionManager(suite.baseTestSuite.DB)

	var wg sync.WaitGroup
	errs := make(chan error, len(candidates))
	for _, candidate := range candidates {
		wg.Add(1)
		go func(ownerID uuid.UUID) {
			defer wg.Done()
			errs <- tx.WithinTransaction(suite.ctx, func(stores *Stores) error {
				_, err := stores.Assets.TransferOwnership(suite.ctx, asset.ID, ownerID)
				return err
			})
		}(candidate.ID)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		suite.NoError(err)
	}

	got, err := suite.repo.GetByID(suite.ctx, asset.ID)
	suite.Require().NoError(err)
	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	suite.Contains(ids, got.OwnerID)
}

func TestAssetRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssetRepositoryTestSuite))
}
