package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"asset-allocation-backend/internal/api/handlers"
	apperrors "asset-allocation-backend/internal/errors"
	"asset-allocation-backend/internal/mocks"
	"asset-allocation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssetHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockAsset *mocks.MockAssetServiceInterface
	router    *gin.Engine
}

func (suite *AssetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAsset = mocks.NewMockAssetServiceInterface(suite.ctrl)

	handler := handlers.NewAssetHandler(suite.mockAsset)
	suite.router = gin.New()
	suite.router.POST("/asset", handler.CreateAsset)
	suite.router.GET("/asset", handler.ListAssets)
	suite.router.GET("/asset/:id", handler.GetAsset)
	suite.router.PUT("/asset/:id", handler.UpdateAsset)
}

func (suite *AssetHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssetHandlerTestSuite) serve(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AssetHandlerTestSuite) TestCreateAsset() {
	purchaser := uuid.New().String()
	created := &service.AssetResponse{
		ID:        uuid.New().String(),
		SerialNo:  "SN-1",
		Purchaser: &service.UserSummary{ID: purchaser},
		Owner:     &service.UserSummary{ID: purchaser},
	}

	suite.mockAsset.EXPECT().
		CreateAsset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.CreateAssetRequest) (*service.AssetResponse, error) {
			suite.Equal("SN-1", req.SerialNo)
			suite.Equal(purchaser, req.Purchaser)
			suite.Require().NotNil(req.InvoiceAvailable)
			suite.False(*req.InvoiceAvailable)
			return created, nil
		})

	w := suite.serve(http.MethodPost, "/asset",
		`{"serialNo":"SN-1","warranty":"2027-01-01T00:00:00Z","invoiceAvailable":false,"purchaser":"`+purchaser+`"}`)

	suite.Equal(http.StatusCreated, w.Code)
	body := decodeEnvelope(suite.T(), w)
	var got service.AssetResponse
	suite.Require().NoError(json.Unmarshal(body.Data, &got))
	suite.Require().NotNil(got.Owner)
	suite.Equal(purchaser, got.Owner.ID)
}

func (suite *AssetHandlerTestSuite) TestCreateAsset_MissingWarranty() {
	suite.mockAsset.EXPECT().
		CreateAsset(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("warranty", "is required"))

	w := suite.serve(http.MethodPost, "/asset", `{"serialNo":"SN-1"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(decodeEnvelope(suite.T(), w).Error, "warranty")
}

func (suite *AssetHandlerTestSuite) TestCreateAsset_MalformedBody() {
	w := suite.serve(http.MethodPost, "/asset", `[`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AssetHandlerTestSuite) TestListAssets() {
	suite.mockAsset.EXPECT().GetAllAssets(gomock.Any()).Return([]service.AssetResponse{
		{ID: uuid.New().String()}, {ID: uuid.New().String()}, {ID: uuid.New().String()},
	}, nil)

	w := suite.serve(http.MethodGet, "/asset", "")

	suite.Equal(http.StatusOK, w.Code)
	body := decodeEnvelope(suite.T(), w)
	suite.Require().NotNil(body.Count)
	suite.Equal(3, *body.Count)
}

func (suite *AssetHandlerTestSuite) TestGetAsset_NotFound() {
	id := uuid.New()
	suite.mockAsset.EXPECT().GetAssetByID(gomock.Any(), id).Return(nil, apperrors.ErrAssetNotFound)

	w := suite.serve(http.MethodGet, "/asset/"+id.String(), "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("asset not found", decodeEnvelope(suite.T(), w).Error)
}

func (suite *AssetHandlerTestSuite) TestGetAsset_MalformedID() {
	w := suite.serve(http.MethodGet, "/asset/xyz", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AssetHandlerTestSuite) TestUpdateAsset_OwnerChangeRejected() {
	id := uuid.New()
	suite.mockAsset.EXPECT().
		UpdateAsset(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.UpdateAssetRequest) (*service.AssetResponse, error) {
			suite.Require().NotNil(req.Owner)
			return nil, apperrors.NewValidationError("owner", "changes only through an approved Owner allocation")
		})

	w := suite.serve(http.MethodPut, "/asset/"+id.String(), `{"owner":"`+uuid.New().String()+`"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AssetHandlerTestSuite) TestUpdateAsset() {
	id := uuid.New()
	suite.mockAsset.EXPECT().
		UpdateAsset(gomock.Any(), id, gomock.Any()).
		Return(&service.AssetResponse{ID: id.String(), Name: "Renamed"}, nil)

	w := suite.serve(http.MethodPut, "/asset/"+id.String(), `{"name":"Renamed"}`)

	suite.Equal(http.StatusOK, w.Code)
}

func TestAssetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssetHandlerTestSuite))
}
