package authService

import (
	"mordomia/internal/api/auth"
	authRepository "mordomia/internal/api/auth/repository"
	"mordomia/internal/entity"
	"mordomia/pkg/bcrypt"
	"mordomia/pkg/google"
	"mordomia/pkg/redis"
	"mordomia/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
	GetRepository() authRepository.Repository
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.CreateUserRequest) (entity.User, error)
	GetByID(c context.Context, id string) (entity.User, error)
	GetByEmail(c context.Context, email string) (entity.User, error)
}

type AuthDomain interface {
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	LoginGoogle(c context.Context) (string, error)
	UserLoginGoogle(c context.Context, req auth.GoogleCallbackRequest) (auth.LoginUserResponse, error)
	Logout(c context.Context, user entity.UserLoginData) error
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository

	userDomain UserDomain
	authDomain AuthDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

func (a *authService) GetRepository() authRepository.Repository {
	return a.authRepository
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

type authDomainImpl struct {
	log            *logrus.Logger
	repo           authRepository.Repository
	users          *userDomainImpl
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

// New builds the auth service. googleProvider and redisServer may be nil;
// Google sign-in and logout then report the feature as unavailable.
func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	googleProvider google.ItfGoogle,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	users := &userDomainImpl{log: log, repo: authRepo, bcryptUtils: bcryptUtils, utils: utils}

	return &authService{
		log:            log,
		authRepository: authRepo,

		userDomain: users,
		authDomain: &authDomainImpl{
			log:            log,
			repo:           authRepo,
			users:          users,
			googleProvider: googleProvider,
			redisServer:    redisServer,
			bcryptUtils:    bcryptUtils,
			utils:          utils,
		},
	}
}
