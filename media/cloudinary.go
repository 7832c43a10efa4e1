// Package media proxies image uploads to Cloudinary using signed requests.
package media

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	MaxUploadSize  = 5 << 20
	defaultBaseURL = "https://api.cloudinary.com/v1_1"
)

var (
	ErrTooLarge    = errors.New("file exceeds the 5MB limit")
	ErrNotAnImage  = errors.New("only image files are allowed")
	ErrEmptyUpload = errors.New("no file provided")
	ErrNotFound    = errors.New("image not found")
)

type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Uploader is the media host contract used by the upload handler.
type Uploader interface {
	Upload(ctx context.Context, data []byte) (*Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	BaseURL   string
}

type CloudinaryClient struct {
	cfg  Config
	http *http.Client
	now  func() time.Time
}

func NewCloudinaryClient(cfg Config) *CloudinaryClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &CloudinaryClient{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
		now:  time.Now,
	}
}

// DataURI validates raw image bytes and encodes them for upload.
func DataURI(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyUpload
	}
	if len(data) > MaxUploadSize {
		return "", ErrTooLarge
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrNotAnImage
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURI accepts "data:image/...;base64,..." or bare base64.
func DecodeDataURI(s string) ([]byte, error) {
	payload := s
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i == -1 || !strings.Contains(s[:i], ";base64") {
			return nil, ErrNotAnImage
		}
		payload = s[i+1:]
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxUploadSize+3 {
		return nil, ErrTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image: %w", err)
	}
	return data, nil
}

func (c *CloudinaryClient) Upload(ctx context.Context, data []byte) (*Asset, error) {
	uri, err := DataURI(data)
	if err != nil {
		return nil, err
	}

	params := map[string]string{"timestamp": c.timestamp()}
	if c.cfg.Folder != "" {
		params["folder"] = c.cfg.Folder
	}
	form := c.signedForm(params)
	form.Set("file", uri)

	var out struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := c.post(ctx, "/image/upload", form, &out); err != nil {
		return nil, err
	}
	return &Asset{URL: out.SecureURL, PublicID: out.PublicID}, nil
}

func (c *CloudinaryClient) Destroy(ctx context.Context, publicID string) error {
	form := c.signedForm(map[string]string{
		"public_id": publicID,
		"timestamp": c.timestamp(),
	})

	var out struct {
		Result string `json:"result"`
	}
	if err := c.post(ctx, "/image/destroy", form, &out); err != nil {
		return err
	}
	switch out.Result {
	case "ok":
		return nil
	case "not found":
		return ErrNotFound
	default:
		return fmt.Errorf("cloudinary destroy: unexpected result %q", out.Result)
	}
}

func (c *CloudinaryClient) timestamp() string {
	return strconv.FormatInt(c.now().Unix(), 10)
}

// sign hashes the sorted params followed by the API secret.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "&") + secret))
	return hex.EncodeToString(sum[:])
}

func (c *CloudinaryClient) signedForm(params map[string]string) url.Values {
	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", c.cfg.APIKey)
	form.Set("signature", sign(params, c.cfg.APISecret))
	return form
}

func (c *CloudinaryClient) post(ctx context.Context, path string, form url.Values, dest interface{}) error {
	endpoint := c.cfg.BaseURL + "/" + c.cfg.CloudName + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("cloudinary request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cloudinary request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("cloudinary response: %w", err)
	}
	if res.StatusCode >= 300 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.Unmarshal(body, &apiErr)
		if apiErr.Error.Message == "" {
			apiErr.Error.Message = http.StatusText(res.StatusCode)
		}
		return fmt.Errorf("cloudinary %s: %d %s", path, res.StatusCode, apiErr.Error.Message)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("cloudinary response: %w", err)
	}
	return nil
}
