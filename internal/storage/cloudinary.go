package storage

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"framework4future/portal/internal/config"
	"framework4future/portal/internal/logging"

	"github.com/google/uuid"
)

const cloudinaryAPI = "https://api.cloudinary.com/v1_1/"

// CloudinaryStore performs signed uploads to Cloudinary.
type CloudinaryStore struct {
	cfg      config.CloudinaryConfig
	client   *http.Client
	endpoint string
}

func NewCloudinaryStore(cfg config.CloudinaryConfig, client *http.Client) *CloudinaryStore {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &CloudinaryStore{
		cfg:      cfg,
		client:   client,
		endpoint: cloudinaryAPI + cfg.CloudName + "/image/upload",
	}
}

func (s *CloudinaryStore) Save(ctx context.Context, data []byte) (string, error) {
	contentType, _, err := DetectImage(data)
	if err != nil {
		return "", err
	}

	publicID := uuid.NewString()
	if s.cfg.Folder != "" {
		publicID = s.cfg.Folder + "/" + publicID
	}
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	form := url.Values{}
	form.Add("file", "data:"+contentType+";base64,"+base64.StdEncoding.EncodeToString(data))
	form.Add("api_key", s.cfg.APIKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", sign(publicID, timestamp, s.cfg.APISecret))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	var cloudRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &cloudRes); err != nil {
		return "", fmt.Errorf("failed to parse upload response (status %d): %w", res.StatusCode, err)
	}

	if res.StatusCode != http.StatusOK || cloudRes.Error.Message != "" {
		logging.Warn("Cloudinary upload rejected",
			"status", res.StatusCode,
			"error", cloudRes.Error.Message,
		)
		return "", fmt.Errorf("cloudinary upload failed with status %d: %s", res.StatusCode, cloudRes.Error.Message)
	}

	if cloudRes.SecureURL != "" {
		return cloudRes.SecureURL, nil
	}
	if cloudRes.URL != "" {
		return cloudRes.URL, nil
	}
	return "", fmt.Errorf("cloudinary returned no url")
}

// sign builds the SHA-1 signature Cloudinary expects for signed uploads.
func sign(publicID, timestamp, secret string) string {
	payload := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, secret)
	return fmt.Sprintf("%x", sha1.Sum([]byte(payload)))
}
