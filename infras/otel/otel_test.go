package otel_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.test")
	assert.NotNil(t, ctx)

	assert.NotPanics(t, func() {
		scope.SetAttribute("count", 3)
		scope.SetAttributes(map[string]any{"hotel": "hotel1", "available": true, "price": 99.5})
		scope.AddEvent("picked")
		scope.TraceIfError(nil)
		scope.TraceError(errors.New("boom"))
		scope.End()
	})

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
