package session

import (
	"fmt"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
)

type RedisKeyBuilder struct{}

func NewRedisKeyBuilder() *RedisKeyBuilder {
	return &RedisKeyBuilder{}
}

func (rkb *RedisKeyBuilder) TrustScoreKey(sessionID string) string {
	return fmt.Sprintf(consts.TrustScoreKeyPattern, sessionID)
}

func (rkb *RedisKeyBuilder) AcceptanceKey(sessionID string) string {
	return fmt.Sprintf(consts.AcceptanceKeyPattern, sessionID)
}

func (rkb *RedisKeyBuilder) AcceptingKey(sessionID string) string {
	return fmt.Sprintf(consts.AcceptingKeyPattern, sessionID)
}
