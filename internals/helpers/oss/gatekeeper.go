package oss

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"masjidhub_backend/internals/constants"
)

/* =======================================================================
   Taksonomi error upload
======================================================================= */

var (
	ErrMissingFile        = errors.New("file tidak ditemukan")
	ErrOversizeFile       = errors.New("ukuran file melebihi batas bucket")
	ErrUnsupportedType    = errors.New("tipe file tidak didukung untuk bucket ini")
	ErrBucketMissing      = errors.New("bucket tujuan belum diprovision")
	ErrStorageUnavailable = errors.New("storage tidak dapat diakses")
	ErrPermissionDenied   = errors.New("akses storage ditolak")
	ErrObjectNotFound     = errors.New("objek storage tidak ditemukan")
)

/* =======================================================================
   Port object store + kebijakan bucket
======================================================================= */

// ObjectStore adalah kontrak minimal yang dibutuhkan gatekeeper;
// diimplement oleh OSSService (Aliyun) dan fake di test.
type ObjectStore interface {
	ListBuckets(ctx context.Context) ([]string, error)
	PutObject(ctx context.Context, bucket, key string, r io.Reader, contentType string) error
	PublicURL(bucket, key string) string
}

type BucketPolicy struct {
	MaxSize      int64
	AllowedTypes []string // kosong = semua tipe diterima
}

func PolicyFor(bucket string) BucketPolicy {
	if bucket == constants.BucketVideos {
		return BucketPolicy{
			MaxSize:      constants.MaxVideoUploadSize,
			AllowedTypes: constants.AllowedVideoTypes,
		}
	}
	return BucketPolicy{MaxSize: constants.MaxUploadSize}
}

/* =======================================================================
   Gatekeeper
======================================================================= */

// Gatekeeper memvalidasi lalu mentransfer satu file ke bucket bernama.
// Urutan cek: file ada → ukuran → tipe → bucket terprovision → transfer.
// Semua cek kebijakan selesai SEBELUM ada panggilan jaringan.
type Gatekeeper struct {
	Store    ObjectStore
	inFlight atomic.Int32
}

func NewGatekeeper(store ObjectStore) *Gatekeeper {
	return &Gatekeeper{Store: store}
}

// Uploading melaporkan ada-tidaknya transfer yang sedang berjalan.
func (g *Gatekeeper) Uploading() bool {
	return g.inFlight.Load() > 0
}

// Upload mengirim file apa adanya dan mengembalikan public URL objek.
// bucket kosong = "uploads".
func (g *Gatekeeper) Upload(ctx context.Context, fh *multipart.FileHeader, bucket string) (string, error) {
	bucket, key, err := g.validate(fh, bucket)
	if err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	return g.transfer(ctx, bucket, key, src, contentTypeOf(fh))
}

// UploadImageAsWebP me-recompress gambar ke webp sebelum transfer
// (kebijakan ukuran tetap dicek terhadap file aslinya).
func (g *Gatekeeper) UploadImageAsWebP(ctx context.Context, fh *multipart.FileHeader, bucket string) (string, error) {
	bucket, key, err := g.validate(fh, bucket)
	if err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	key = strings.TrimSuffix(key, filepath.Ext(key)) + ".webp"
	return g.transfer(ctx, bucket, key, bytes.NewReader(webpData), "image/webp")
}

// UploadThumbnailWebP membuat thumbnail 16:9 kecil dari gambar sumber
// lalu mentransfernya; dipakai untuk poster video di galeri.
func (g *Gatekeeper) UploadThumbnailWebP(ctx context.Context, fh *multipart.FileHeader, bucket string) (string, error) {
	bucket, key, err := g.validate(fh, bucket)
	if err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	thumbData, err := MakeThumbnailWebP(src, fh.Filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	key = strings.TrimSuffix(key, filepath.Ext(key)) + "_thumb.webp"
	return g.transfer(ctx, bucket, key, bytes.NewReader(thumbData), "image/webp")
}

// validate menjalankan semua cek lokal dan menghasilkan object key baru:
// token UUID + ekstensi asli, supaya nama file asli tidak bocor dan tidak
// mungkin tabrakan dengan objek lama.
func (g *Gatekeeper) validate(fh *multipart.FileHeader, bucket string) (string, string, error) {
	if bucket == "" {
		bucket = constants.BucketUploads
	}
	if fh == nil {
		return "", "", ErrMissingFile
	}

	policy := PolicyFor(bucket)
	if fh.Size > policy.MaxSize {
		return "", "", fmt.Errorf("%w (maks %d byte)", ErrOversizeFile, policy.MaxSize)
	}
	if len(policy.AllowedTypes) > 0 {
		ct := contentTypeOf(fh)
		allowed := false
		for _, t := range policy.AllowedTypes {
			if strings.EqualFold(ct, t) {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", "", fmt.Errorf("%w (%s)", ErrUnsupportedType, ct)
		}
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := uuid.New().String() + ext
	return bucket, key, nil
}

// transfer mengecek bucket lewat listing lalu PutObject (overwrite boleh).
func (g *Gatekeeper) transfer(ctx context.Context, bucket, key string, r io.Reader, contentType string) (string, error) {
	g.inFlight.Add(1)
	defer g.inFlight.Add(-1)

	if g.Store == nil {
		return "", ErrStorageUnavailable
	}

	buckets, err := g.Store.ListBuckets(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	provisioned := false
	for _, b := range buckets {
		if b == bucket {
			provisioned = true
			break
		}
	}
	if !provisioned {
		return "", fmt.Errorf("%w: %s", ErrBucketMissing, bucket)
	}

	if err := g.Store.PutObject(ctx, bucket, key, r, contentType); err != nil {
		return "", classifyStoreError(err)
	}
	return g.Store.PublicURL(bucket, key), nil
}

func contentTypeOf(fh *multipart.FileHeader) string {
	ct := strings.TrimSpace(fh.Header.Get("Content-Type"))
	if ct == "" {
		ct = mime.TypeByExtension(strings.ToLower(filepath.Ext(fh.Filename)))
	}
	if ct == "" {
		ct = "application/octet-stream"
	}
	return ct
}
