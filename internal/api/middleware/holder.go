package middleware

import "context"

const holderContextKey contextKey = "session_holder"

type sessionHolder struct {
	email string
	role  string
}

func withSessionHolder(ctx context.Context, h *sessionHolder) context.Context {
	return context.WithValue(ctx, holderContextKey, h)
}

func holderFromContext(ctx context.Context) *sessionHolder {
	h, _ := ctx.Value(holderContextKey).(*sessionHolder)
	return h
}
