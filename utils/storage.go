package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadToolkitImage stores the image bytes in the toolkit bucket and returns
// the public URL to record as image_url.
func UploadToolkitImage(imageData []byte, mimeType string) (string, error) {
	bucket := os.Getenv("S3_TOOLKIT_BUCKET")
	if bucket == "" {
		bucket = "solaya-toolkit-images"
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "me-central-1"
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(cfg)

	// Generate unique filename
	filename := fmt.Sprintf("toolkit/%s-%d", uuid.New().String(), time.Now().Unix())

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(filename),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(mimeType),
	})

	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, filename)
	return url, nil
}
