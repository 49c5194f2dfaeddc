package cmd

import "time"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OverdueAge is how old a parcel may get before the overdue report
	// flags it.
	OverdueAge time.Duration

	// BcryptCost tunes password hashing. Zero falls back to the bcrypt
	// default.
	BcryptCost int
}
