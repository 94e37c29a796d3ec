package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/usecase"
)

var testTokens = usecase.TokenConfig{
	AccessSecret:  "access-secret",
	RefreshSecret: "refresh-secret",
	AccessTTL:     15 * time.Minute,
	RefreshTTL:    10 * 24 * time.Hour,
}

func newAuthUsecase() (usecase.IAuthUsecase, *MockUserRepository, *MockBlobStore) {
	userRepo := new(MockUserRepository)
	blobStore := new(MockBlobStore)
	return usecase.NewAuthUsecase(userRepo, blobStore, testTokens), userRepo, blobStore
}

func hashedUser(id bson.ObjectID, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &model.User{
		ID:       id,
		Username: "tester",
		Email:    "tester@example.com",
		FullName: "Test User",
		Password: string(hash),
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	uc, userRepo, _ := newAuthUsecase()

	userRepo.On("GetByUsernameOrEmail", mock.Anything, "ghost", "").
		Return(nil, repository.ErrNotFound)

	_, err := uc.Login(context.Background(), dto.ReqLogin{Username: "ghost", Password: "pw"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, userRepo, _ := newAuthUsecase()
	user := hashedUser(bson.NewObjectID(), "correct")

	userRepo.On("GetByUsernameOrEmail", mock.Anything, "tester", "").
		Return(user, nil)

	_, err := uc.Login(context.Background(), dto.ReqLogin{Username: "tester", Password: "wrong"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperror.StatusCode(err))
}

func TestLogin_Success(t *testing.T) {
	uc, userRepo, _ := newAuthUsecase()
	user := hashedUser(bson.NewObjectID(), "correct")

	userRepo.On("GetByUsernameOrEmail", mock.Anything, "tester", "").
		Return(user, nil)
	userRepo.On("UpdateRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string")).
		Return(nil)

	result, err := uc.Login(context.Background(), dto.ReqLogin{Username: "tester", Password: "correct"})
	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Empty(t, result.User.Password)
}

func TestLogin_MissingIdentifier(t *testing.T) {
	uc, _, _ := newAuthUsecase()

	_, err := uc.Login(context.Background(), dto.ReqLogin{Password: "pw"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
}

func TestRefresh_RotatesAndRejectsReplay(t *testing.T) {
	userRepo := new(MockUserRepository)
	user := hashedUser(bson.NewObjectID(), "pw")

	// A ticking clock makes every issued pair distinct; without it the login
	// and refresh tokens could be minted within the same second and come out
	// byte-identical.
	tokens := testTokens
	base := time.Now()
	tick := 0
	tokens.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	uc := usecase.NewAuthUsecase(userRepo, new(MockBlobStore), tokens)

	// Login stores the issued refresh token on the user, as the repository
	// would.
	userRepo.On("GetByUsernameOrEmail", mock.Anything, "tester", "").
		Return(user, nil)
	userRepo.On("UpdateRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			user.RefreshToken = args.String(2)
		}).
		Return(nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	login, err := uc.Login(context.Background(), dto.ReqLogin{Username: "tester", Password: "pw"})
	assert.NoError(t, err)
	firstRefresh := login.RefreshToken

	pair, err := uc.Refresh(context.Background(), firstRefresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, pair.RefreshToken, user.RefreshToken)
	assert.NotEqual(t, firstRefresh, user.RefreshToken)

	// Replaying the pre-rotation token no longer matches the stored one.
	_, err = uc.Refresh(context.Background(), firstRefresh)
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperror.StatusCode(err))
}

func TestRefresh_GarbageToken(t *testing.T) {
	uc, _, _ := newAuthUsecase()

	_, err := uc.Refresh(context.Background(), "not-a-jwt")
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperror.StatusCode(err))
}

func TestRegister_DuplicateIdentity(t *testing.T) {
	uc, userRepo, _ := newAuthUsecase()

	userRepo.On("ExistsByUsernameOrEmail", mock.Anything, "tester", "tester@example.com").
		Return(true, nil)

	_, err := uc.Register(context.Background(), dto.ReqRegister{
		Username: "Tester",
		Email:    "tester@example.com",
		FullName: "Test User",
		Password: "pw",
	}, "/tmp/avatar.png", "")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
}

func TestRegister_MissingAvatar(t *testing.T) {
	uc, _, _ := newAuthUsecase()

	_, err := uc.Register(context.Background(), dto.ReqRegister{
		Username: "tester",
		Email:    "tester@example.com",
		FullName: "Test User",
		Password: "pw",
	}, "", "")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
}

func TestRegister_Success(t *testing.T) {
	uc, userRepo, blobStore := newAuthUsecase()
	created := bson.NewObjectID()

	userRepo.On("ExistsByUsernameOrEmail", mock.Anything, "tester", "tester@example.com").
		Return(false, nil)
	blobStore.On("Upload", mock.Anything, "/tmp/avatar.png").
		Return(&repository.BlobInfo{URL: "https://cdn.example.com/avatar.png"}, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "tester" && u.Avatar == "https://cdn.example.com/avatar.png" && u.Password != "pw"
	})).Return(&model.User{ID: created, Username: "tester"}, nil)

	user, err := uc.Register(context.Background(), dto.ReqRegister{
		Username: "Tester",
		Email:    "tester@example.com",
		FullName: "Test User",
		Password: "pw",
	}, "/tmp/avatar.png", "")
	assert.NoError(t, err)
	assert.Equal(t, created, user.ID)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	uc, userRepo, _ := newAuthUsecase()
	user := hashedUser(bson.NewObjectID(), "current")

	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	err := uc.ChangePassword(context.Background(), user.ID.Hex(), dto.ReqChangePassword{
		OldPassword: "wrong",
		NewPassword: "next",
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_Success(t *testing.T) {
	uc, userRepo, _ := newAuthUsecase()
	user := hashedUser(bson.NewObjectID(), "current")

	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("UpdatePassword", mock.Anything, user.ID, mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("next")) == nil
	})).Return(nil)

	err := uc.ChangePassword(context.Background(), user.ID.Hex(), dto.ReqChangePassword{
		OldPassword: "current",
		NewPassword: "next",
	})
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
