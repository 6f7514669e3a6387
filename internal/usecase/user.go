package usecase

import (
	"errors"
	"time"

	"presensi-backend/config"
	"presensi-backend/internal/model"
	"presensi-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	repo *repository.UserRepository
}

func NewUserUsecase(repo *repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(nama, username, password, role string) error {
	// 1. Hashing Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if role == "" {
		role = "petugas"
	}

	// 2. Simpan ke Database
	user := model.User{
		Nama:     nama,
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}
	return u.repo.Create(user)
}

func (u *UserUsecase) Login(username, password string) (string, string, error) {
	// 1. Cari user berdasarkan username
	user, err := u.repo.GetByUsername(username)
	if err != nil {
		return "", "", errors.New("username atau password salah")
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", errors.New("username atau password salah")
	}

	// 3. Buat Token JWT
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", "", err
	}

	return signed, user.Nama, nil
}
