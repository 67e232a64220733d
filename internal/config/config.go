package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	JWTSecret       string
	AllowOrigins    []string
	LogstashTCPAddr string
	RedisAddr       string

	RabbitURL      string
	RabbitExchange string

	AccommodationBaseURL string
	AccommodationToken   string
	AccommodationRPS     int
}

// fileConfig mirrors the optional YAML config file; environment variables
// win over file values so deployments can override single settings.
type fileConfig struct {
	RabbitMQ struct {
		URL      string `json:"url"`
		Exchange string `json:"exchange"`
	} `json:"rabbitmq"`
	Redis struct {
		Addr string `json:"addr"`
	} `json:"redis"`
	Accommodation struct {
		BaseURL string `json:"base_url"`
		Token   string `json:"token"`
		RPS     int    `json:"rps"`
	} `json:"accommodation"`
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	var file fileConfig
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Warning: config file %s not readable: %v", path, err)
		} else if err := yaml.Unmarshal(data, &file); err != nil {
			panic("invalid config file: " + err.Error())
		}
	}

	rps := file.Accommodation.RPS
	if v, err := strconv.Atoi(getenv("ACCOMMODATION_RPS", "")); err == nil && v > 0 {
		rps = v
	}
	if rps <= 0 {
		rps = 10
	}

	return Config{
		Port:                 getenv("PORT", "8080"),
		DatabaseURL:          must("DATABASE_URL"),
		JWTSecret:            must("JWT_SECRET"),
		AllowOrigins:         splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:      getenv("LOGSTASH_TCP_ADDR", ""),
		RedisAddr:            getenv("REDIS_ADDR", file.Redis.Addr),
		RabbitURL:            getenv("RABBITMQ_URL", file.RabbitMQ.URL),
		RabbitExchange:       getenv("RABBITMQ_EXCHANGE", defaultString(file.RabbitMQ.Exchange, "stayhub.ratings")),
		AccommodationBaseURL: getenv("ACCOMMODATION_BASE_URL", file.Accommodation.BaseURL),
		AccommodationToken:   getenv("ACCOMMODATION_TOKEN", file.Accommodation.Token),
		AccommodationRPS:     rps,
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func defaultString(v, d string) string {
	if strings.TrimSpace(v) == "" {
		return d
	}
	return v
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
