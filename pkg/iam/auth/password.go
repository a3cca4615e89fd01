package auth

import (
	"golang.org/x/crypto/bcrypt"
)

type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type BcryptPasswordService struct {
	cost int
}

func NewBcryptPasswordService() *BcryptPasswordService {
	return &BcryptPasswordService{cost: bcrypt.DefaultCost}
}

// NewBcryptPasswordServiceWithCost is mostly useful in tests, where MinCost keeps hashing fast
func NewBcryptPasswordServiceWithCost(cost int) *BcryptPasswordService {
	return &BcryptPasswordService{cost: cost}
}

func (s *BcryptPasswordService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *BcryptPasswordService) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
