package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	appconfig "alcyxob/oly-planner/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3Storage implements the BackupStorage interface using AWS SDK v2,
// targeting any S3-compatible endpoint (MinIO, R2, AWS).
type s3Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
}

// NewS3Storage creates a new S3 storage client.
func NewS3Storage(cfg appconfig.S3Config) (BackupStorage, error) {
	log.Printf("Initializing S3 storage: endpoint=%s, bucket=%s, region=%s", cfg.Endpoint, cfg.BucketName, cfg.Region)

	// Custom endpoint resolver so non-AWS S3 services work.
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if service == s3.ServiceID && cfg.Endpoint != "" {
			scheme := "https"
			if !cfg.UseSSL {
				scheme = "http"
			}
			return aws.Endpoint{
				URL:               fmt.Sprintf("%s://%s", scheme, cfg.Endpoint),
				HostnameImmutable: true,
				SigningRegion:     cfg.Region,
			}, nil
		}
		// Fallback to default resolution.
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(),
		awsConfig.WithRegion(cfg.Region),
		awsConfig.WithEndpointResolverWithOptions(resolver),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for S3: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// Path-style addressing is required by MinIO and most self-hosted
		// S3 implementations.
		o.UsePathStyle = true
	})

	presignClient := s3.NewPresignClient(client)

	log.Println("S3 storage initialized successfully.")

	return &s3Storage{
		client:        client,
		presignClient: presignClient,
		bucketName:    cfg.BucketName,
	}, nil
}

func (s *s3Storage) UploadSnapshot(ctx context.Context, objectKey string, data []byte, contentType string) error {
	if objectKey == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", objectKey, err)
	}

	return nil
}

func (s *s3Storage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	if objectKey == "" {
		return "", fmt.Errorf("object key cannot be empty")
	}
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}

	presignedReq, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign GetObject for key %s: %w", objectKey, err)
	}

	return presignedReq.URL, nil
}

func (s *s3Storage) DeleteObject(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectKey, err)
	}

	return nil
}
