package whisper

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	apperrors "memo-whisper/internal/app/errors"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
// The model is fixed at construction time, never chosen per file.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, model string) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model}
}

// Transcript uses the OpenAI API for remote transcription.
func (rt *RemoteTranscriber) Transcript(inputFilePath string) (string, error) {
	if _, err := os.Stat(inputFilePath); os.IsNotExist(err) {
		return "", apperrors.WrapSentinel(apperrors.ErrFileNotFound, fmt.Errorf("%s", inputFilePath))
	}

	ctx := context.Background()

	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", apperrors.WrapSentinel(apperrors.ErrTranscriptionFailed, err)
	}

	return resp.Text, nil
}
