package service

import (
	"github.com/jmkcontents/jmkcontents/internal/common"
)

// AuthService validates the shared admin password.
//
// 단일 공유 비밀번호를 평문 비교한다. 내부 관리용 CMS라는 전제의
// 의도적 단순화이며, 비밀번호가 설정되지 않았으면 항상 실패한다
// (fail closed). Cookie 발급/삭제는 핸들러가 담당한다.
type AuthService interface {
	Login(password string) error
}

type authService struct {
	adminPassword string
}

// NewAuthService creates a new AuthService
func NewAuthService(adminPassword string) AuthService {
	return &authService{adminPassword: adminPassword}
}

func (s *authService) Login(password string) error {
	if s.adminPassword == "" {
		return common.ErrPasswordNotConfigured
	}
	if password != s.adminPassword {
		return common.ErrInvalidPassword
	}
	return nil
}
