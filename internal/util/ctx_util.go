package util

import (
	"context"

	"github.com/RoyceAzure/lab/sweetshop/internal/constants"
	"github.com/RoyceAzure/rj/api/token"
)

// GetTokenPayloadFromContext 從請求上下文取得token payload
// 若context內沒有payload則回傳nil, 不回傳錯誤
func GetTokenPayloadFromContext[T token.UserIDConstraint](ctx context.Context) *token.Payload[T] {
	var tokenPayload *token.Payload[T]

	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		tokenPayload = v.(*token.Payload[T])
	}

	return tokenPayload
}

func GetRequestIDFromContext(ctx context.Context) string {
	requestId := "unknown"
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		requestId = v.(string)
	}
	return requestId
}
