package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmkcontents/jmkcontents/internal/common"
)

func TestAdminLogin_Success(t *testing.T) {
	svc := NewAuthService("secret123")

	assert.NoError(t, svc.Login("secret123"))
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService("secret123")

	err := svc.Login("wrong")
	assert.ErrorIs(t, err, common.ErrInvalidPassword)
	assert.Contains(t, err.Error(), "비밀번호")
}

func TestAdminLogin_PasswordNotConfigured(t *testing.T) {
	svc := NewAuthService("")

	// 비밀번호 미설정이면 빈 입력을 포함해 모든 로그인이 실패해야 한다.
	for _, password := range []string{"", "anything"} {
		err := svc.Login(password)
		assert.ErrorIs(t, err, common.ErrPasswordNotConfigured)
		assert.Contains(t, err.Error(), "설정")
	}
}
