package openai

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"
)

var (
	once      sync.Once
	singleton *openai.Client
)

// GetClient returns the shared OpenAI client, constructed on first use.
func GetClient() (*openai.Client, error) {
	token, ok := os.LookupEnv("OPENAI_API_KEY")
	if !ok || strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	once.Do(func() {
		singleton = openai.NewClient(token)
	})

	return singleton, nil
}
