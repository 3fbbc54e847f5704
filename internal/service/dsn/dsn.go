package dsn

import (
	"fmt"
	"os"
)

// FromEnv assembles the Postgres DSN from environment variables.
func FromEnv() string {
	return fromEnv("")
}

// FromEnvE2E assembles the DSN of the database used by end-to-end tests.
func FromEnvE2E() string {
	return fromEnv("_TEST")
}

func fromEnv(suffix string) string {
	host := os.Getenv("DB_HOST" + suffix)
	if host == "" {
		return ""
	}
	port := os.Getenv("DB_PORT" + suffix)
	user := os.Getenv("DB_USER" + suffix)
	pass := os.Getenv("DB_PASS" + suffix)
	dbname := os.Getenv("DB_NAME" + suffix)

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
}
