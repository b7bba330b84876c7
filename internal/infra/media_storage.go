package infra

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// CloudinaryUploader performs a signed upload against the Cloudinary
// image API. Configured via CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY,
// CLOUDINARY_API_SECRET and optional CLOUDINARY_FOLDER.
type CloudinaryUploader struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	client    *http.Client
}

func NewCloudinaryUploader() *CloudinaryUploader {
	return &CloudinaryUploader{
		cloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		apiKey:    os.Getenv("CLOUDINARY_API_KEY"),
		apiSecret: os.Getenv("CLOUDINARY_API_SECRET"),
		folder:    os.Getenv("CLOUDINARY_FOLDER"),
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *CloudinaryUploader) Configured() bool {
	return u.cloudName != "" && u.apiKey != "" && u.apiSecret != ""
}

func (u *CloudinaryUploader) UploadBase64(ctx context.Context, base64Data, publicID string) (string, int64, error) {
	if !u.Configured() {
		return "", 0, fmt.Errorf("cloudinary credentials not configured")
	}

	// Strip a data-URI prefix if the client sent one.
	payload := base64Data
	if i := strings.Index(base64Data, ","); i != -1 {
		payload = base64Data[i+1:]
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + u.cloudName + "/image/upload"
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Signature is over the sorted params (minus file and api_key).
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", u.folder, publicID, timestamp, u.apiSecret)
	if u.folder == "" {
		toSign = fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, u.apiSecret)
	}
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(toSign)))

	form := url.Values{}
	form.Set("file", "data:image/jpeg;base64,"+payload)
	form.Set("api_key", u.apiKey)
	form.Set("timestamp", timestamp)
	form.Set("public_id", publicID)
	form.Set("signature", signature)
	if u.folder != "" {
		form.Set("folder", u.folder)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("cloudinary upload failed: %s", string(body))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		Bytes     int64  `json:"bytes"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", 0, err
	}
	if result.SecureURL == "" {
		return "", 0, fmt.Errorf("cloudinary response missing secure_url")
	}

	return result.SecureURL, result.Bytes, nil
}
