package configs

import (
	"net/url"
	"time"
)

// Web configures the admin frontend. APIBaseURL points at the campaign API
// whose /api endpoints the frontend consumes.
type Web struct {
	Port       uint16        `env:"PORT" envDefault:"3000"`
	APIBaseURL url.URL       `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}
