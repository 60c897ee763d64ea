package service

import (
	"context"
	"time"
)

// SessionStore 학생 세션 토큰 저장소 인터페이스
// 운영에서는 pkg/redis.Client 가 구현하고, 테스트에서는 인메모리 목을 사용한다.
// 세션은 로그인 시 생성되고 로그아웃 시 파기되며, 요청 간에 공유되지 않는다.
type SessionStore interface {
	SaveStudentSession(ctx context.Context, token, studentID string, ttl time.Duration) error
	GetStudentSession(ctx context.Context, token string) (string, error)
	DeleteStudentSession(ctx context.Context, token string) error
}
