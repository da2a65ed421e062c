package generator

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// Invoke calls provider exactly once. There is no retry: a failure comes back
// as Response.Error with the provider's message unchanged.
func Invoke(ctx context.Context, provider ContentProvider, req Request) Response {
	if provider == nil {
		return Response{Error: errors.New("content provider is required").Error()}
	}
	logrus.Infof("[GENERATOR] invoking provider task=%s langs=%d", req.Task, len(req.TargetLanguages))

	text, err := provider.Generate(ctx, req)
	if err != nil {
		logrus.WithError(err).Warnf("[GENERATOR] provider failed task=%s", req.Task)
		return Response{Error: err.Error()}
	}
	if strings.TrimSpace(text) == "" {
		return Response{Error: "provider returned empty text"}
	}
	return Response{Text: text}
}
