package access_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/access"
	userrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/user"
	usermock "github.com/KirkDiggler/rpg-arena/internal/repositories/user/mock"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

type AccessTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *usermock.MockRepository
	ctx          context.Context
}

func TestAccessSuite(t *testing.T) {
	suite.Run(t, new(AccessTestSuite))
}

func (s *AccessTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUserRepo = usermock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
}

func (s *AccessTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccessTestSuite) TestLoadOwner() {
	u := testutils.CreateTestUser("u1", 100, "c1", "c2")
	s.mockUserRepo.EXPECT().
		Get(s.ctx, userrepo.GetInput{ID: "u1"}).
		Return(&userrepo.GetOutput{User: u}, nil)

	got, err := access.LoadOwner(s.ctx, s.mockUserRepo, "u1", "c2", "c1")
	s.Require().NoError(err)
	s.Equal(u, got)
}

func (s *AccessTestSuite) TestLoadOwnerRejectsForeignCharacter() {
	s.mockUserRepo.EXPECT().
		Get(s.ctx, userrepo.GetInput{ID: "u1"}).
		Return(&userrepo.GetOutput{User: testutils.CreateTestUser("u1", 100, "c1")}, nil)

	_, err := access.LoadOwner(s.ctx, s.mockUserRepo, "u1", "c1", "c9")
	s.True(errors.IsKind(err, errors.KindOwnershipViolation))
	s.True(errors.IsPermissionDenied(err))
	s.Equal("c9", errors.GetMeta(err)["character_id"])
}

func (s *AccessTestSuite) TestLoadUserRequiresID() {
	_, err := access.LoadUser(s.ctx, s.mockUserRepo, "")
	s.Equal(errors.CodeUnauthenticated, errors.GetCode(err))
}

func (s *AccessTestSuite) TestLoadUserPropagatesNotFound() {
	s.mockUserRepo.EXPECT().
		Get(s.ctx, userrepo.GetInput{ID: "ghost"}).
		Return(nil, errors.NotFound("user ghost not found"))

	_, err := access.LoadUser(s.ctx, s.mockUserRepo, "ghost")
	s.True(errors.IsNotFound(err))
}

func (s *AccessTestSuite) TestRequireOwnedEmptyID() {
	err := access.RequireOwned(testutils.CreateTestUser("u1", 0, "c1"), "")
	s.True(errors.IsInvalidArgument(err))
}
