package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Daksharma90/AI-Interviewer/pkg/apperr"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:   "test-key",
		Model:    "test-model",
		STTModel: "test-stt",
		TTSModel: "test-tts",
		TTSVoice: "test-voice",
		BaseURL:  baseURL,
	})
}

func TestChatSendsAuthAndModel(t *testing.T) {
	var gotAuth string
	var gotReq ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "1", "choices": [{"message": {"role": "assistant", "content": "hello"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	out, err := c.GenerateText(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if out != "hello" {
		t.Fatalf("unexpected content: %q", out)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Fatalf("expected configured model, got %q", gotReq.Model)
	}
	if gotReq.ResponseFormat != nil {
		t.Fatalf("free-form generation must not request JSON mode")
	}
}

func TestGenerateJSONRequestsJSONMode(t *testing.T) {
	var gotReq ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(`{"choices": [{"message": {"content": "{\"ok\": true}"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	out, err := c.GenerateJSON(context.Background(), "emit json")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if out != `{"ok": true}` {
		t.Fatalf("unexpected content: %q", out)
	}
	if gotReq.ResponseFormat == nil || gotReq.ResponseFormat.Type != "json_object" {
		t.Fatalf("expected json_object response format, got %+v", gotReq.ResponseFormat)
	}
}

func TestChatErrorStatusIsExternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "rate limit"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.GenerateText(context.Background(), "prompt")
	if !apperr.IsExternal(err) {
		t.Fatalf("expected external error, got %v", err)
	}
}

func TestChatNoChoicesIsExternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.GenerateText(context.Background(), "prompt")
	if !apperr.IsExternal(err) {
		t.Fatalf("expected external error, got %v", err)
	}
}

func TestTranscribeSendsMultipartAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "test-stt" {
			t.Errorf("expected stt model field, got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
		} else {
			file.Close()
			if header.Filename != "audio.webm" {
				t.Errorf("unexpected filename %q", header.Filename)
			}
		}
		w.Write([]byte(`{"text": "I am a backend engineer."}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	text, err := c.Transcribe(context.Background(), []byte("webm-bytes"))
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if text != "I am a backend engineer." {
		t.Fatalf("unexpected transcript: %q", text)
	}
}

func TestTranscribeErrorStatusIsExternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad audio", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.Transcribe(context.Background(), []byte("noise")); !apperr.IsExternal(err) {
		t.Fatalf("expected external error, got %v", err)
	}
}

func TestSynthesizeReturnsAudioBytes(t *testing.T) {
	var gotReq speechRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	audio, err := c.Synthesize(context.Background(), "Tell me about yourself?")
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio payload: %q", audio)
	}
	if gotReq.Model != "test-tts" || gotReq.Voice != "test-voice" {
		t.Fatalf("unexpected speech request: %+v", gotReq)
	}
	if gotReq.Input != "Tell me about yourself?" {
		t.Fatalf("unexpected input text: %q", gotReq.Input)
	}
	if gotReq.ResponseFormat != "mp3" {
		t.Fatalf("expected mp3 response format, got %q", gotReq.ResponseFormat)
	}
}

func TestSynthesizeErrorStatusIsExternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "voice unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.Synthesize(context.Background(), "hello"); !apperr.IsExternal(err) {
		t.Fatalf("expected external error, got %v", err)
	}
}
