package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestBasicError() {
	err := errors.New(errors.CodeNotFound, "character not found")

	s.Equal(errors.CodeNotFound, err.Code)
	s.Equal("character not found", err.Message)
	s.Equal("NOT_FOUND: character not found", err.Error())
	s.Nil(err.Unwrap())
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "char-1").
		WithMetaMap(map[string]interface{}{"user_id": "user-1"})

	s.Equal("char-1", err.Meta["character_id"])
	s.Equal("user-1", err.Meta["user_id"])
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	cause := stderrors.New("connection refused")
	err := errors.Wrap(cause, "failed to load character")

	s.Equal(errors.CodeInternal, err.Code)
	s.Equal(cause, err.Unwrap())
	s.Equal("INTERNAL: failed to load character: connection refused", err.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndKind() {
	inner := errors.InsufficientCredits("balance 10 is below cost 160")
	err := errors.Wrapf(inner, "create %s", "Conan")

	s.True(errors.IsFailedPrecondition(err))
	s.True(errors.IsKind(err, errors.KindInsufficientCredits))

	// wrapping must not alias the inner metadata
	err.WithMeta("extra", true)
	_, leaked := inner.Meta["extra"]
	s.False(leaked)
}

func (s *ErrorsTestSuite) TestWrapWithCodeKeepsKind() {
	inner := errors.CorruptState("max health is zero")
	err := errors.WrapWithCode(inner, errors.CodeInternal, "scan failed")

	s.True(errors.IsInternal(err))
	s.Equal(errors.KindCorruptState, errors.GetKind(err))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestIsComparesCodes() {
	err := errors.Wrap(errors.NotFound("missing"), "lookup")
	s.True(errors.Is(err, errors.NotFound("other")))
	s.False(errors.Is(err, errors.Internal("other")))
}

func (s *ErrorsTestSuite) TestKindCodes() {
	testCases := []struct {
		kind Kind
		code errors.Code
	}{
		{errors.KindInvalidName, errors.CodeInvalidArgument},
		{errors.KindInvalidClass, errors.CodeInvalidArgument},
		{errors.KindInvalidValue, errors.CodeInvalidArgument},
		{errors.KindInsufficientCredits, errors.CodeFailedPrecondition},
		{errors.KindPreconditionViolation, errors.CodeFailedPrecondition},
		{errors.KindNotFound, errors.CodeNotFound},
		{errors.KindOwnershipViolation, errors.CodePermissionDenied},
		{errors.KindCorruptState, errors.CodeDataLoss},
	}

	for _, tc := range testCases {
		s.Run(string(tc.kind), func() {
			err := errors.NewKind(tc.kind, "boom")
			s.Equal(tc.code, err.Code)
			s.Equal(tc.kind, errors.GetKind(err))
		})
	}
}

func (s *ErrorsTestSuite) TestKindConstructors() {
	s.True(errors.IsKind(errors.InvalidName("bad"), errors.KindInvalidName))
	s.True(errors.IsKind(errors.InvalidClassf("unknown %q", "Bard"), errors.KindInvalidClass))
	s.True(errors.IsKind(errors.InvalidValuef("value %d", -1), errors.KindInvalidValue))
	s.True(errors.IsKind(errors.ItemNotFound("no item"), errors.KindNotFound))
	s.True(errors.IsKind(errors.PreconditionViolation("dead"), errors.KindPreconditionViolation))
	s.True(errors.IsKind(errors.OwnershipViolationf("char %s", "c1"), errors.KindOwnershipViolation))
	s.True(errors.IsKind(errors.CorruptStatef("health %d", -3), errors.KindCorruptState))
}

func (s *ErrorsTestSuite) TestGetKindWithoutKind() {
	s.Equal(errors.Kind(""), errors.GetKind(errors.NotFound("plain")))
	s.Equal(errors.Kind(""), errors.GetKind(stderrors.New("plain")))
	s.Equal(errors.Kind(""), errors.GetKind(nil))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name string
		err  *errors.Error
		code errors.Code
	}{
		{"NotFound", errors.NotFoundf("character %s", "c1"), errors.CodeNotFound},
		{"InvalidArgument", errors.InvalidArgumentf("field %s", "name"), errors.CodeInvalidArgument},
		{"AlreadyExists", errors.AlreadyExistsf("item %s", "i1"), errors.CodeAlreadyExists},
		{"PermissionDenied", errors.PermissionDenied("nope"), errors.CodePermissionDenied},
		{"Internal", errors.Internalf("redis %s", "down"), errors.CodeInternal},
		{"Unauthenticated", errors.Unauthenticated("no user"), errors.CodeUnauthenticated},
		{"ResourceExhausted", errors.ResourceExhaustedf("limit %d", 5), errors.CodeResourceExhausted},
		{"FailedPrecondition", errors.FailedPreconditionf("class %s", "fixed"), errors.CodeFailedPrecondition},
		{"Unimplemented", errors.Unimplemented("soon"), errors.CodeUnimplemented},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.code, tc.err.Code)
			s.Equal(tc.code, errors.GetCode(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsKind() {
	original := errors.OwnershipViolation("character c9 is not yours").
		WithMeta("character_id", "c9")

	grpcErr := errors.ToGRPCError(original)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.PermissionDenied, st.Code())
	s.Equal("character c9 is not yours", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsPermissionDenied(back))
	s.Equal(errors.KindOwnershipViolation, errors.GetKind(back))
	s.Equal("c9", errors.GetMeta(back)["character_id"])
}

func (s *ErrorsTestSuite) TestGRPCStringifiesUnsupportedMeta() {
	err := errors.NewValidationBuilder().RequiredField("name").Build()

	back := errors.FromGRPCError(errors.ToGRPCError(err))
	s.True(errors.IsInvalidArgument(back))
	s.IsType("", errors.GetMeta(back)["validation_errors"])
}

func (s *ErrorsTestSuite) TestGRPCPlainError() {
	grpcErr := errors.ToGRPCError(stderrors.New("boom"))
	s.Equal(codes.Internal, status.Code(grpcErr))
	s.Nil(errors.ToGRPCError(nil))
	s.Nil(errors.FromGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCStatus() {
	s.Equal(codes.OK, errors.GRPCStatus(nil).Code())
	s.Equal(codes.DataLoss, errors.GRPCStatus(errors.CorruptState("bad")).Code())
	s.Equal(codes.Internal, errors.GRPCStatus(stderrors.New("x")).Code())
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		grpcCode codes.Code
	}{
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodePermissionDenied, codes.PermissionDenied},
		{errors.CodeResourceExhausted, codes.ResourceExhausted},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeUnimplemented, codes.Unimplemented},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeDataLoss, codes.DataLoss},
		{errors.CodeUnauthenticated, codes.Unauthenticated},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.grpcCode, tc.code.GRPCCode())
			back := errors.FromGRPCError(status.Error(tc.grpcCode, "x"))
			s.Equal(tc.code, errors.GetCode(back))
		})
	}
}

// Kind is aliased for table readability
type Kind = errors.Kind
