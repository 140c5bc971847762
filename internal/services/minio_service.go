package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"movie-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const posterURLExpiry = 15 * time.Minute

type PosterUpload struct {
	UploadURL  string    `json:"upload_url"`
	PublicURL  string    `json:"public_url"`
	ObjectName string    `json:"object_name"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type PosterService interface {
	// PresignUpload returns a presigned PUT URL for a poster image of the given movie.
	PresignUpload(ctx context.Context, movieID int64, filename, contentType string) (*PosterUpload, error)
}

type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, endpoint)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	return &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: publicURL,
		logger:    logger,
	}, nil
}

// EnsureBucket creates the poster bucket when missing and makes its objects publicly readable.
func (s *MinIOService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

func (s *MinIOService) PresignUpload(ctx context.Context, movieID int64, filename, contentType string) (*PosterUpload, error) {
	objectName := posterObjectName(movieID, filename)

	headers := http.Header{}
	if contentType != "" {
		headers.Set("Content-Type", contentType)
	}

	presignedURL, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, objectName, posterURLExpiry, nil, headers)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL, err := s.objectURL(objectName)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id":   movieID,
		"objectName": objectName,
		"expiry":     posterURLExpiry,
	}).Info("Generated presigned poster URL")

	return &PosterUpload{
		UploadURL:  presignedURL.String(),
		PublicURL:  publicURL,
		ObjectName: objectName,
		ExpiresAt:  time.Now().UTC().Add(posterURLExpiry),
	}, nil
}

func (s *MinIOService) objectURL(objectName string) (string, error) {
	base, err := url.Parse(s.publicURL)
	if err != nil {
		return "", fmt.Errorf("invalid public URL %q: %w", s.publicURL, err)
	}
	base.Path = path.Join("/", s.bucket, objectName)
	return base.String(), nil
}

// posterObjectName builds a unique key such as movies/7/poster_1a2b3c4d.jpg.
func posterObjectName(movieID int64, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "poster"
	}
	name = strings.ReplaceAll(name, " ", "_")

	ext := path.Ext(name)
	nameWithoutExt := strings.TrimSuffix(name, ext)
	if nameWithoutExt == "" {
		nameWithoutExt = "poster"
	}

	return fmt.Sprintf("movies/%d/%s_%s%s", movieID, nameWithoutExt, uuid.New().String()[:8], ext)
}
