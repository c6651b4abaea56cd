package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/infra/httpx"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	defaultUploadTTL   = 5 * time.Minute
	defaultDownloadTTL = time.Hour
)

var ErrEmptyKey = errors.New("storage key is empty")

type Config struct {
	Bucket       string
	Region       string
	Endpoint     string
	UsePathStyle bool
	KeyPrefix    string
	UploadTTL    time.Duration
	DownloadTTL  time.Duration
}

// PresignedUpload is a short-lived URL the raw bytes of one object are PUT to.
type PresignedUpload struct {
	Key       string      `json:"key"`
	URL       string      `json:"url"`
	Method    string      `json:"method"`
	Headers   http.Header `json:"headers"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Presigner is the subset of *s3.PresignClient used here.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

//go:generate mockery --name=Storage --dir=. --output=mocks/ --filename=storage_mock.go --case=underscore --with-expecter
type Storage interface {
	NewKey(authorID, filename string) string
	PresignUpload(ctx context.Context, key, contentType string) (*PresignedUpload, error)
	Upload(ctx context.Context, upload *PresignedUpload, body io.Reader, size int64) error
	PresignDownload(ctx context.Context, key string) (string, error)
}

type s3Storage struct {
	cfg        Config
	presigner  Presigner
	httpClient httpx.Client
	now        func() time.Time
}

// NewS3Storage builds the storage from the default AWS credential chain.
func NewS3Storage(ctx context.Context, cfg Config, httpClient httpx.Client) (Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewStorage(cfg, s3.NewPresignClient(client), httpClient), nil
}

func NewStorage(cfg Config, presigner Presigner, httpClient httpx.Client) Storage {
	if cfg.UploadTTL <= 0 {
		cfg.UploadTTL = defaultUploadTTL
	}
	if cfg.DownloadTTL <= 0 {
		cfg.DownloadTTL = defaultDownloadTTL
	}
	return &s3Storage{
		cfg:        cfg,
		presigner:  presigner,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// NewKey returns "<prefix>/<author>/<yyyy>/<mm>/<uuid><ext>".
func (s *s3Storage) NewKey(authorID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	now := s.now().UTC()
	return path.Join(
		s.cfg.KeyPrefix,
		sanitizeSegment(authorID),
		now.Format("2006"),
		now.Format("01"),
		uuid.NewString()+ext,
	)
}

func (s *s3Storage) PresignUpload(ctx context.Context, key, contentType string) (*PresignedUpload, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	req, err := s.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(s.cfg.UploadTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}
	headers := req.SignedHeader.Clone()
	if headers == nil {
		headers = http.Header{}
	}
	headers.Del("Host")
	if contentType != "" {
		headers.Set("Content-Type", contentType)
	}
	return &PresignedUpload{
		Key:       key,
		URL:       req.URL,
		Method:    req.Method,
		Headers:   headers,
		ExpiresAt: s.now().Add(s.cfg.UploadTTL),
	}, nil
}

// Upload PUTs the raw bytes to a presigned URL.
func (s *s3Storage) Upload(ctx context.Context, upload *PresignedUpload, body io.Reader, size int64) error {
	if upload == nil || upload.URL == "" {
		return errors.New("presigned upload is empty")
	}
	method := upload.Method
	if method == "" {
		method = http.MethodPut
	}
	req, err := http.NewRequestWithContext(ctx, method, upload.URL, body)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.ContentLength = size
	for k, vals := range upload.Headers {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload of %s failed: %w", upload.Key, err)
	}
	if _, err := httpx.ReadBody(resp); err != nil {
		return fmt.Errorf("upload of %s rejected: %w", upload.Key, err)
	}
	return nil
}

// PresignDownload resolves the read URL of a stored object.
func (s *s3Storage) PresignDownload(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.cfg.DownloadTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign download for %s: %w", key, err)
	}
	return req.URL, nil
}

func sanitizeSegment(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "anonymous"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
