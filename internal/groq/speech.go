package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Daksharma90/AI-Interviewer/pkg/apperr"
)

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe converts recorded answer audio to text via the whisper
// endpoint. Audio is expected as browser-captured WebM.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", "audio.webm")
	if err != nil {
		return "", apperr.External("speech", err)
	}
	if _, err := fw.Write(audio); err != nil {
		return "", apperr.External("speech", err)
	}
	if err := mw.WriteField("model", c.cfg.STTModel); err != nil {
		return "", apperr.External("speech", err)
	}
	if err := mw.Close(); err != nil {
		return "", apperr.External("speech", err)
	}

	url := c.cfg.BaseURL + "/audio/transcriptions"
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", apperr.External("speech", err)
	}
	r.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(r)
	if err != nil {
		return "", apperr.External("speech", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", apperr.External("speech", fmt.Errorf("stt status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var tr transcriptionResponse
	if err := json.Unmarshal(bodyBytes, &tr); err != nil {
		return "", apperr.External("speech", fmt.Errorf("decode error: %w, body: %s", err, string(bodyBytes)))
	}
	return tr.Text, nil
}

type speechRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	ResponseFormat string `json:"response_format"`
}

// Synthesize converts question text to MP3 audio bytes via the speech
// endpoint.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := speechRequest{
		Model:          c.cfg.TTSModel,
		Voice:          c.cfg.TTSVoice,
		Input:          text,
		ResponseFormat: "mp3",
	}
	b, _ := json.Marshal(req)

	url := c.cfg.BaseURL + "/audio/speech"
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, apperr.External("speech", err)
	}
	r.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	r.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(r)
	if err != nil {
		return nil, apperr.External("speech", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.External("speech", err)
	}
	if resp.StatusCode >= 400 {
		return nil, apperr.External("speech", fmt.Errorf("tts status %d: %s", resp.StatusCode, string(audio)))
	}
	return audio, nil
}
