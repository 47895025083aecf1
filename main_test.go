package main

import (
	"testing"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/stretchr/testify/assert"
)

func TestClientOriginsDefault(t *testing.T) {
	t.Setenv("CLIENT_URL", "")
	assert.Equal(t, "http://localhost:5173", clientOrigins())

	// The default must stay compatible with credentialed CORS, which rejects
	// a wildcard origin at construction time.
	assert.NotPanics(t, func() {
		cors.New(cors.Config{
			AllowOrigins:     clientOrigins(),
			AllowCredentials: true,
		})
	})
}

func TestClientOriginsFromEnv(t *testing.T) {
	t.Setenv("CLIENT_URL", "https://portal.example.com")
	assert.Equal(t, "https://portal.example.com", clientOrigins())
}
