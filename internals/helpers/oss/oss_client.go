package oss

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

/* =======================================================================
   OSS Service — implementasi ObjectStore di atas Aliyun OSS
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Endpoint   string
	PublicBase string // optional override, mis. CDN
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	if endpoint == "" || ak == "" || sk == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	return &OSSService{
		Client:     client,
		Endpoint:   endpoint,
		PublicBase: getEnv("ALI_OSS_PUBLIC_BASE"),
	}, nil
}

func (s *OSSService) ListBuckets(ctx context.Context) ([]string, error) {
	res, err := s.Client.ListBuckets()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(res.Buckets))
	for _, b := range res.Buckets {
		names = append(names, b.Name)
	}
	return names, nil
}

// PutObject: overwrite dibolehkan, cache pendek di sisi klien supaya
// konten yang diganti cepat terlihat.
func (s *OSSService) PutObject(ctx context.Context, bucket, key string, r io.Reader, contentType string) error {
	bkt, err := s.Client.Bucket(bucket)
	if err != nil {
		return err
	}
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=3600"),
		oss.ForbidOverWrite(false),
	}
	return bkt.PutObject(key, r, opts...)
}

func (s *OSSService) PublicURL(bucket, key string) string {
	if key == "" {
		return ""
	}
	if s.PublicBase != "" {
		return strings.TrimRight(s.PublicBase, "/") + "/" + bucket + "/" + key
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", bucket, end, key)
}

// classifyStoreError memisahkan error permission dan not-found dari
// kegagalan generik supaya pesan ke user lebih jelas.
func classifyStoreError(err error) error {
	var se oss.ServiceError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case 403:
			return fmt.Errorf("%w: %s", ErrPermissionDenied, se.Code)
		case 404:
			return fmt.Errorf("%w: %s", ErrObjectNotFound, se.Code)
		}
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
