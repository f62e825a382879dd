// Package speech converts uploaded audio into text: the webm blob is
// transcoded to mp3 through an ffmpeg pipe, exchanged for a bearer token at
// the provider's OAuth endpoint, and submitted for recognition. Every
// failure surfaces as a single TRANSCRIPTION_FAILED domain error.
package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os/exec"
	"strings"

	"bezbot/internal/config"
	"bezbot/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/errgroup"
)

// Transcriber implements domain.Transcriber against a speech recognition
// service with an OAuth client-credentials token endpoint.
type Transcriber struct {
	tokens       oauth2.TokenSource
	client       *http.Client
	recognizeURL string
	ffmpegPath   string
	logger       *zap.Logger
}

// rqUIDTransport stamps every outgoing request with a fresh request id
// header, which the token endpoint requires.
type rqUIDTransport struct {
	next http.RoundTripper
}

func (t *rqUIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("RqUID", uuid.NewString())
	req.Header.Set("Accept", "application/json")
	return t.next.RoundTrip(req)
}

// NewTranscriber creates a new Transcriber. ClientAuth is the base64-encoded
// "client_id:client_secret" pair issued by the speech provider; the token
// source caches tokens across calls instead of re-authenticating per request.
func NewTranscriber(cfg config.SpeechConfig, logger *zap.Logger) (*Transcriber, error) {
	if cfg.TokenURL == "" || cfg.RecognizeURL == "" {
		return nil, fmt.Errorf("speech token and recognize URLs must be configured")
	}

	clientID, clientSecret, err := splitClientAuth(cfg.ClientAuth)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &rqUIDTransport{next: http.DefaultTransport},
	}

	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       []string{cfg.Scope},
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)

	return &Transcriber{
		tokens:       conf.TokenSource(tokenCtx),
		client:       httpClient,
		recognizeURL: cfg.RecognizeURL,
		ffmpegPath:   cfg.FFmpegPath,
		logger:       logger,
	}, nil
}

func splitClientAuth(encoded string) (string, string, error) {
	if encoded == "" {
		return "", "", fmt.Errorf("speech client credentials must be configured")
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", fmt.Errorf("speech client credentials are not valid base64: %w", err)
	}
	clientID, clientSecret, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return "", "", fmt.Errorf("speech client credentials must decode to id:secret")
	}
	return clientID, clientSecret, nil
}

// Transcribe implements domain.Transcriber. Transcoding and the token fetch
// are independent, so they run concurrently.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", domain.NewInvalidInputError("audio payload is empty")
	}

	var (
		mp3   []byte
		token *oauth2.Token
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mp3, err = t.transcode(gctx, audio)
		return err
	})
	g.Go(func() error {
		var err error
		token, err = t.tokens.Token()
		if err != nil {
			return fmt.Errorf("failed to obtain access token: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		t.logger.Error("Speech pipeline failed before recognition", zap.Error(err))
		return "", domain.NewTranscriptionError(err)
	}

	text, err := t.recognize(ctx, token.AccessToken, mp3)
	if err != nil {
		t.logger.Error("Speech recognition failed", zap.Error(err))
		return "", domain.NewTranscriptionError(err)
	}
	return text, nil
}

// transcode pipes the webm bytes through ffmpeg and reads mp3 from stdout.
func (t *Transcriber) transcode(ctx context.Context, webm []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, t.ffmpegPath,
		"-i", "pipe:0",
		"-f", "mp3",
		"-vn",
		"pipe:1",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(webm)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

type recognizeResponse struct {
	Result []string `json:"result"`
}

func (t *Transcriber) recognize(ctx context.Context, accessToken string, mp3 []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.recognizeURL, bytes.NewReader(mp3))
	if err != nil {
		return "", fmt.Errorf("failed to build recognize request: %w", err)
	}
	req.Header.Set("Content-Type", "audio/mpeg")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("recognize request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("recognize endpoint returned status %d", resp.StatusCode)
	}

	var decoded recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode recognize response: %w", err)
	}
	if len(decoded.Result) == 0 {
		return "", fmt.Errorf("recognize response contains no results")
	}
	return decoded.Result[0], nil
}

var _ domain.Transcriber = (*Transcriber)(nil)
