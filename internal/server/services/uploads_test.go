package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/daybookapp/daybook/internal/server/config"
)

func newUploadSvc() *UploadService {
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "daybook",
	}
	return NewUploadService(cfg)
}

func stubPresignSeams(t *testing.T) {
	t.Helper()
	origLoad, origNewS3, origNewPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	origPut, origGet := presignPutObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return nil
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return nil
	}
}

func TestGetPresignedPutURL_Success(t *testing.T) {
	stubPresignSeams(t)
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://presigned/put/" + *in.Key}, nil
	}

	svc := newUploadSvc()
	key, url, err := svc.GetPresignedPutURL(context.Background())
	if err != nil {
		t.Fatalf("GetPresignedPutURL error: %v", err)
	}
	if !strings.HasPrefix(key, "users/") {
		t.Fatalf("unexpected key %q", key)
	}
	if !strings.HasSuffix(url, key) {
		t.Fatalf("url %q does not reference key %q", url, key)
	}
}

func TestGetPresignedPutURL_PresignError(t *testing.T) {
	stubPresignSeams(t)
	wantErr := errors.New("presign failed")
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, wantErr
	}

	svc := newUploadSvc()
	if _, _, err := svc.GetPresignedPutURL(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("want %v, got %v", wantErr, err)
	}
}

func TestGetPresignedGetURL_Success(t *testing.T) {
	stubPresignSeams(t)
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://presigned/get/" + *in.Key}, nil
	}

	svc := newUploadSvc()
	url, err := svc.GetPresignedGetURL(context.Background(), "users/2024/3/1/abc")
	if err != nil {
		t.Fatalf("GetPresignedGetURL error: %v", err)
	}
	if url != "http://presigned/get/users/2024/3/1/abc" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestGetPresignedGetURL_ConfigError(t *testing.T) {
	stubPresignSeams(t)
	wantErr := errors.New("no credentials")
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, wantErr
	}

	svc := newUploadSvc()
	if _, err := svc.GetPresignedGetURL(context.Background(), "k"); !errors.Is(err, wantErr) {
		t.Fatalf("want %v, got %v", wantErr, err)
	}
}

func TestRandomStorageKey_Shape(t *testing.T) {
	key := RandomStorageKey()
	parts := strings.Split(key, "/")
	if len(parts) != 5 || parts[0] != "users" {
		t.Fatalf("unexpected key shape %q", key)
	}
	if key == RandomStorageKey() {
		t.Fatal("keys must not repeat")
	}
}
