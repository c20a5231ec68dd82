package envar

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const DefaultEnvFile = ".env"

var (
	ErrorFileNotFound = errors.New("env file not found")
	ErrorFileParse    = errors.New("malformed env file")
)

// Init loads ".env" from the working directory into the process environment
// and returns the path it loaded. Variables already set in the environment
// are never overwritten by the file.
func Init() (string, error) {
	return InitFrom(DefaultEnvFile)
}

// InitFrom is Init for an explicit file path.
func InitFrom(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrorFileNotFound, path)
		}
		return "", fmt.Errorf("checking env file: %w", err)
	}

	if err := godotenv.Load(path); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrorFileParse, path, err)
	}

	return path, nil
}
