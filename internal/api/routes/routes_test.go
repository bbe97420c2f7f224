//go:build integration
// +build integration

package routes_test

import (
	"context"
	"net/http"
	"testing"

	"asset-allocation-backend/internal/api/routes"
	"asset-allocation-backend/internal/auth"
	"asset-allocation-backend/internal/database/models"
	"asset-allocation-backend/internal/repository"
	"asset-allocation-backend/internal/service"
	"asset-allocation-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AllocationFlowTestSuite drives the full router against a real database
type AllocationFlowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	http          *testutils.HTTPTestSuite
	factories     *testutils.FactorySet

	manager *models.User
	alice   *models.User
	bob     *models.User
}

func (suite *AllocationFlowTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	router, err := routes.SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config)
	suite.Require().NoError(err)
	suite.http = testutils.SetupHTTPTest(router)
}

func (suite *AllocationFlowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AllocationFlowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	ctx := context.Background()
	users := repository.NewUserRepository(suite.baseTestSuite.DB)

	hash, err := auth.HashPassword("approve-me")
	suite.Require().NoError(err)
	suite.manager = suite.factories.User.WithRole(models.UserRoleManager)
	suite.manager.PasswordHash = hash
	suite.alice = suite.factories.User.Create()
	suite.bob = suite.factories.User.Create()
	for _, u := range []*models.User{suite.manager, suite.alice, suite.bob} {
		suite.Require().NoError(users.Create(ctx, u))
	}

	suite.http.Token = ""
	rec := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    suite.manager.Email,
		"password": "approve-me",
	})
	var login auth.LoginResponse
	testutils.AssertSuccessResponse(suite.T(), rec, http.StatusOK, &login)
	suite.http.Token = login.AccessToken
}

func (suite *AllocationFlowTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AllocationFlowTestSuite) createAsset() service.AssetResponse {
	rec := suite.http.MakeRequest(http.MethodPost, "/api/v1/asset", map[string]interface{}{
		"name":             "Laptop",
		"serialNo":         "SN-FLOW-1",
		"warranty":         "2028-01-01T00:00:00Z",
		"invoiceAvailable": true,
		"purchaser":        suite.alice.ID.String(),
	})
	var asset service.AssetResponse
	testutils.AssertSuccessResponse(suite.T(), rec, http.StatusCreated, &asset)
	return asset
}

func (suite *AllocationFlowTestSuite) requestAllocation(assetID, allocationType string) service.AllocationResponse {
	rec := suite.http.MakeRequest(http.MethodPost, "/api/v1/allocation", map[string]interface{}{
		"allocatedBy":    suite.alice.ID.String(),
		"allocatedTo":    suite.bob.ID.String(),
		"asset":          assetID,
		"allocationType": allocationType,
		"purpose":        "handover",
	})
	var allocation service.AllocationResponse
	testutils.AssertSuccessResponse(suite.T(), rec, http.StatusCreated, &allocation)
	return allocation
}

func (suite *AllocationFlowTestSuite) currentOwner(assetID string) string {
	rec := suite.http.MakeRequest(http.MethodGet, "/api/v1/asset/"+assetID, nil)
	var asset service.AssetResponse
	testutils.AssertSuccessResponse(suite.T(), rec, http.StatusOK, &asset)
	suite.Require().NotNil(asset.Owner)
	return asset.Owner.ID
}

func (suite *AllocationFlowTestSuite) TestApproveOwnerAllocationTransfersOwner() {
	asset := suite.createAsset()
	suite.Equal(suite.alice.ID.String(), asset.Owner.ID)

	allocation := suite.requestAllocation(asset.ID, "Owner")
	suite.Equal(models.AllocationStatusPending, allocation.Status)
	suite.Nil(allocation.RequestStatus)
	suite.Equal(suite.alice.ID.String(), suite.currentOwner(asset.ID), "creation never moves the owner")

	rec := suite.http.MakeRequest(http.MethodPut, "/api/v1/allocation/"+allocation.ID+"/approve", nil)
	var approved service.AllocationResponse
	testutils.AssertSuccessResponse(suite.T(), rec, http.StatusOK, &approved)

	suite.Equal(models.AllocationStatusApproved, approved.Status)
	suite.Require().NotNil(approved.RequestStatus)
	suite.True(*approved.RequestStatus)
	suite.Require().NotNil(approved.ApprovedBy)
	suite.Equal(suite.manager.ID.String(), approved.ApprovedBy.ID)
	suite.Equal(suite.bob.ID.String(), suite.currentOwner(asset.ID))

	rec = suite.http.MakeRequest(http.MethodPut, "/api/v1/allocation/"+allocation.ID+"/reject", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "already been approved")
	suite.Equal(suite.bob.ID.String(), suite.currentOwner(asset.ID))
}

func (suite *AllocationFlowTestSuite) TestRejectKeepsOwnerAndDefaultsReason() {
	asset := suite.createAsset()
	allocation := suite.requestAllocation(asset.ID, "Owner")

	rec := suite.http.MakeRequest(http.MethodPut, "/api/v1/allocation/"+allocation.ID+"/reject", nil)
	var rejected service.AllocationResponse
	testutils.AssertSuccessResponse(suite.T(), rec, http.StatusOK, &rejected)

	suite.Equal(models.AllocationStatusRejected, rejected.Status)
	suite.Equal(service.DefaultRejectionReason, rejected.RejectionReason)
	suite.Require().NotNil(rejected.RequestStatus)
	suite.False(*rejected.RequestStatus)
	suite.Equal(suite.alice.ID.String(), suite.currentOwner(asset.ID))
}

func (suite *AllocationFlowTestSuite) TestTemporaryApprovalKeepsOwner() {
	asset := suite.createAsset()
	allocation := suite.requestAllocation(asset.ID, "Temporary")

	rec := suite.http.MakeRequest(http.MethodPut, "/api/v1/allocation/"+allocation.ID+"/approve", nil)
	testutils.AssertSuccessResponse(suite.T(), rec, http.StatusOK, nil)

	suite.Equal(suite.alice.ID.String(), suite.currentOwner(asset.ID))
}

func (suite *AllocationFlowTestSuite) TestListByUserIncludesEitherSide() {
	asset := suite.createAsset()
	suite.requestAllocation(asset.ID, "Owner")

	for _, id := range []string{suite.alice.ID.String(), suite.bob.ID.String()} {
		rec := suite.http.MakeRequest(http.MethodGet, "/api/v1/allocation/user/"+id, nil)
		var list []service.AllocationResponse
		envelope := testutils.AssertSuccessResponse(suite.T(), rec, http.StatusOK, &list)
		suite.Len(list, 1)
		suite.Require().NotNil(envelope.Count)
		suite.Equal(1, *envelope.Count)
	}
}

func (suite *AllocationFlowTestSuite) TestRequiresAuthentication() {
	token := suite.http.Token
	suite.http.Token = ""
	defer func() { suite.http.Token = token }()

	rec := suite.http.MakeRequest(http.MethodGet, "/api/v1/allocation", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "")
}

func (suite *AllocationFlowTestSuite) TestUnknownRoute() {
	rec := suite.http.MakeRequest(http.MethodGet, "/api/v1/nope", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "route not found")
}

func TestAllocationFlowTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationFlowTestSuite))
}
