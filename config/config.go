package config

import (
	"os"
	"strconv"
	"time"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get environment variable as boolean with fallback
func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia_negara"))
}

var loc *time.Location

// Timezone mengembalikan zona waktu aplikasi (default WIB).
// Semua timestamp presensi dan tanggal turunan memakai zona ini.
func Timezone() *time.Location {
	if loc != nil {
		return loc
	}
	l, err := time.LoadLocation(GetEnv("APP_TIMEZONE", "Asia/Jakarta"))
	if err != nil {
		l = time.FixedZone("WIB", 7*3600)
	}
	loc = l
	return loc
}
