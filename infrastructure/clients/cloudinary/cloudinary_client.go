package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

const baseURL = "https://api.cloudinary.com/v1_1"

// Client talks to the Cloudinary upload API over plain HTTP. It implements
// repository.IBlobStore so usecases never see vendor details.
type Client struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

func NewClient(cloudName, apiKey, apiSecret string) repository.IBlobStore {
	return &Client{
		cloudName:  cloudName,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string  `json:"secure_url"`
	URL       string  `json:"url"`
	PublicID  string  `json:"public_id"`
	Duration  float64 `json:"duration"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// sign builds the SHA-1 request signature over the sorted parameters, as the
// upload API requires for authenticated requests.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

func (c *Client) Upload(ctx context.Context, localPath string) (*repository.BlobInfo, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open staged file: %w", err)
	}
	defer file.Close()

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{"timestamp": timestamp}
	signature := c.sign(params)

	// Stream the multipart body through a pipe so large videos are not
	// buffered in memory.
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		defer pw.Close()
		defer writer.Close()
		_ = writer.WriteField("api_key", c.apiKey)
		_ = writer.WriteField("timestamp", timestamp)
		_ = writer.WriteField("signature", signature)
		part, err := writer.CreateFormFile("file", filepath.Base(localPath))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
		}
	}()

	endpoint := fmt.Sprintf("%s/%s/auto/upload", baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("cloudinary: upload request failed")
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("cloudinary upload: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logger.GetLogger().WithFields(map[string]interface{}{
			"status":  resp.StatusCode,
			"message": out.Error.Message,
		}).Error("cloudinary: upload rejected")
		return nil, fmt.Errorf("cloudinary upload: status %d: %s", resp.StatusCode, out.Error.Message)
	}

	blobURL := out.SecureURL
	if blobURL == "" {
		blobURL = out.URL
	}
	return &repository.BlobInfo{URL: blobURL, Duration: out.Duration}, nil
}

func (c *Client) Delete(ctx context.Context, blobURL string) error {
	publicID, resourceType, err := parsePublicID(blobURL)
	if err != nil {
		return err
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}
	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(params))

	endpoint := fmt.Sprintf("%s/%s/%s/destroy", baseURL, c.cloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("cloudinary: destroy request failed")
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cloudinary destroy: status %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// parsePublicID recovers the public id and resource type from a delivery URL,
// e.g. https://res.cloudinary.com/demo/video/upload/v123/folder/clip.mp4
// yields ("folder/clip", "video").
func parsePublicID(blobURL string) (string, string, error) {
	u, err := url.Parse(blobURL)
	if err != nil {
		return "", "", fmt.Errorf("parse blob url: %w", err)
	}
	segments := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	uploadIdx := -1
	for i, s := range segments {
		if s == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 1 || uploadIdx+1 >= len(segments) {
		return "", "", fmt.Errorf("unrecognized blob url: %s", blobURL)
	}
	resourceType := segments[uploadIdx-1]

	rest := segments[uploadIdx+1:]
	// Skip the version segment when present (v<digits>).
	if len(rest) > 1 && strings.HasPrefix(rest[0], "v") {
		if _, err := strconv.Atoi(rest[0][1:]); err == nil {
			rest = rest[1:]
		}
	}
	publicID := strings.Join(rest, "/")
	publicID = strings.TrimSuffix(publicID, path.Ext(publicID))
	if publicID == "" {
		return "", "", fmt.Errorf("unrecognized blob url: %s", blobURL)
	}
	return publicID, resourceType, nil
}
