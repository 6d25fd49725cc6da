package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/JohnSmith545/Fuel-and-Flow/logger"
)

var s3Client *s3.Client

// InitS3 sets up the image store. Leaving S3_BUCKET unset disables custom
// food images without failing startup.
func InitS3(ctx context.Context) {
	if os.Getenv("S3_BUCKET") == "" {
		logger.Info("S3_BUCKET not set, custom food images disabled")
		return
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Fatal("unable to load AWS config for S3", "error", err)
	}
	s3Client = s3.NewFromConfig(cfg)
}

// UploadFoodImage stores a data-URI encoded image ("data:<mime>;base64,…")
// and returns its public URL.
func UploadFoodImage(ctx context.Context, dataURI, namePrefix string) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("image store not configured")
	}

	parts := strings.Split(dataURI, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	mediaType := strings.SplitN(parts[0], ":", 2)
	if len(mediaType) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	contentType := strings.SplitN(mediaType[1], ";", 2)[0]

	ext := ".jpg"
	if contentType != "image/jpeg" && contentType != "image/jpg" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		} else if sub := strings.SplitN(contentType, "/", 2); len(sub) == 2 {
			ext = "." + sub[1]
		}
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("food-images/%s-%d%s", namePrefix, time.Now().UnixNano(), ext)
	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awssdk.String(os.Getenv("S3_BUCKET")),
		Key:         awssdk.String(key),
		Body:        bytes.NewReader(data),
		ContentType: awssdk.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	base := os.Getenv("CLOUDFRONT_URL")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.amazonaws.com", os.Getenv("S3_BUCKET"))
	}
	return fmt.Sprintf("%s/%s", base, key), nil
}
