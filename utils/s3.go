package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Receipt images and profile pictures live in Cloudflare R2 (S3-compatible).
// The rest of the system only ever sees the resulting object URL.

func getR2Config() (aws.Config, error) {
	accountID := os.Getenv("R2_ACCOUNT_ID")
	accessKey := os.Getenv("R2_ACCESS_KEY_ID")
	secretKey := os.Getenv("R2_SECRET_ACCESS_KEY")

	if accountID == "" || accessKey == "" || secretKey == "" {
		return aws.Config{}, fmt.Errorf("R2_ACCOUNT_ID, R2_ACCESS_KEY_ID or R2_SECRET_ACCESS_KEY is not set")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("auto"), // Required by SDK, R2 ignores this
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load R2 config: %w", err)
	}

	return cfg, nil
}

func getR2Client() (*s3.Client, error) {
	accountID := os.Getenv("R2_ACCOUNT_ID")
	if accountID == "" {
		return nil, fmt.Errorf("R2_ACCOUNT_ID is not set")
	}

	cfg, err := getR2Config()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return client, nil
}

func getR2Bucket() (string, error) {
	bucket := os.Getenv("R2_BUCKET_NAME")
	if bucket == "" {
		return "", fmt.Errorf("R2_BUCKET_NAME is not set")
	}
	return bucket, nil
}

// UploadImage stores an image under the given folder ("receipts" or
// "profiles") and returns the public object URL stored on the record.
func UploadImage(ctx context.Context, folder, name string, file io.Reader, contentType string) (string, error) {
	bucket, err := getR2Bucket()
	if err != nil {
		return "", err
	}
	client, err := getR2Client()
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixNano(), name)
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("R2 upload failed: %w", err)
	}

	base := os.Getenv("R2_PUBLIC_BASE_URL")
	if base == "" {
		base = fmt.Sprintf("https://%s.r2.cloudflarestorage.com/%s", os.Getenv("R2_ACCOUNT_ID"), bucket)
	}
	return fmt.Sprintf("%s/%s", base, key), nil
}

// ObjectKeyFromURL recovers the storage key from an object URL previously
// returned by UploadImage. Returns "" for anything else, such as the
// default avatar placeholder.
func ObjectKeyFromURL(url string) string {
	for _, folder := range []string{"/profiles/", "/receipts/"} {
		if i := strings.Index(url, folder); i >= 0 {
			return url[i+1:]
		}
	}
	return ""
}

// DeleteImage removes a previously uploaded object by key.
func DeleteImage(ctx context.Context, key string) error {
	bucket, err := getR2Bucket()
	if err != nil {
		return err
	}
	client, err := getR2Client()
	if err != nil {
		return err
	}

	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("R2 delete failed: %w", err)
	}
	return nil
}
