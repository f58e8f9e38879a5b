package oss

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	buckets []string
	listErr error
	putErr  error

	listCalls int
	putCalls  int

	lastBucket string
	lastKey    string
	lastCT     string
	lastBody   []byte
}

func (f *fakeStore) ListBuckets(ctx context.Context) ([]string, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.buckets, nil
}

func (f *fakeStore) PutObject(ctx context.Context, bucket, key string, r io.Reader, contentType string) error {
	f.putCalls++
	if f.putErr != nil {
		return f.putErr
	}
	f.lastBucket = bucket
	f.lastKey = key
	f.lastCT = contentType
	f.lastBody, _ = io.ReadAll(r)
	return nil
}

func (f *fakeStore) PublicURL(bucket, key string) string {
	return "https://" + bucket + ".oss.example.com/" + key
}

// makeFileHeader membangun *multipart.FileHeader asli (bisa di-Open)
// lewat encode-decode body multipart.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

// fh sintetis untuk cek kebijakan yang gagal sebelum file dibuka.
func syntheticHeader(filename, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: filename, Header: h, Size: size}
}

func TestUploadMissingFile(t *testing.T) {
	store := &fakeStore{buckets: []string{"uploads"}}
	g := NewGatekeeper(store)

	_, err := g.Upload(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrMissingFile)
	assert.Zero(t, store.listCalls)
	assert.Zero(t, store.putCalls)
}

func TestUploadOversizeVideoFailsBeforeAnyNetworkCall(t *testing.T) {
	store := &fakeStore{buckets: []string{"videos"}}
	g := NewGatekeeper(store)

	fh := syntheticHeader("film.mp4", "video/mp4", 600*1024*1024)
	_, err := g.Upload(context.Background(), fh, "videos")

	assert.ErrorIs(t, err, ErrOversizeFile)
	assert.Zero(t, store.listCalls, "cek ukuran harus sebelum jaringan")
	assert.Zero(t, store.putCalls)
}

func TestUploadWrongTypeToVideosBucket(t *testing.T) {
	store := &fakeStore{buckets: []string{"videos"}}
	g := NewGatekeeper(store)

	fh := syntheticHeader("gambar.png", "image/png", 10*1024*1024)
	_, err := g.Upload(context.Background(), fh, "videos")

	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Zero(t, store.listCalls)
	assert.Zero(t, store.putCalls)
}

func TestUploadPhotoSucceeds(t *testing.T) {
	store := &fakeStore{buckets: []string{"photos", "videos", "uploads"}}
	g := NewGatekeeper(store)

	content := bytes.Repeat([]byte{0xAB}, 3*1024) // kecil, di bawah 5MB
	fh := makeFileHeader(t, "kajian ramadhan.png", "image/png", content)

	url, err := g.Upload(context.Background(), fh, "photos")
	require.NoError(t, err)

	assert.NotEmpty(t, url)
	assert.NotContains(t, url, "kajian ramadhan.png", "nama asli tidak boleh bocor")
	assert.Equal(t, "photos", store.lastBucket)
	assert.Equal(t, "image/png", store.lastCT)
	assert.Equal(t, content, store.lastBody)
	// key = token baru + ekstensi asli
	assert.Regexp(t, `^[0-9a-f-]{36}\.png$`, store.lastKey)
	assert.Equal(t, 1, store.listCalls)
	assert.Equal(t, 1, store.putCalls)
}

func TestUploadDefaultsToUploadsBucket(t *testing.T) {
	store := &fakeStore{buckets: []string{"uploads"}}
	g := NewGatekeeper(store)

	fh := makeFileHeader(t, "brosur.pdf", "application/pdf", []byte("%PDF-1.4"))
	url, err := g.Upload(context.Background(), fh, "")
	require.NoError(t, err)
	assert.Equal(t, "uploads", store.lastBucket)
	assert.Contains(t, url, "uploads")
}

func TestUploadBucketMissing(t *testing.T) {
	store := &fakeStore{buckets: []string{"uploads"}}
	g := NewGatekeeper(store)

	fh := makeFileHeader(t, "foto.png", "image/png", []byte{1, 2, 3})
	_, err := g.Upload(context.Background(), fh, "photos")

	assert.ErrorIs(t, err, ErrBucketMissing)
	assert.Equal(t, 1, store.listCalls)
	assert.Zero(t, store.putCalls, "tidak boleh transfer ke bucket yang tidak ada")
}

func TestUploadListingFailure(t *testing.T) {
	store := &fakeStore{listErr: errors.New("timeout")}
	g := NewGatekeeper(store)

	fh := makeFileHeader(t, "foto.png", "image/png", []byte{1, 2, 3})
	_, err := g.Upload(context.Background(), fh, "photos")

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Zero(t, store.putCalls)
}

func TestUploadNilStore(t *testing.T) {
	g := NewGatekeeper(nil)
	fh := makeFileHeader(t, "foto.png", "image/png", []byte{1})
	_, err := g.Upload(context.Background(), fh, "photos")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestPolicyFor(t *testing.T) {
	videos := PolicyFor("videos")
	assert.EqualValues(t, 500*1024*1024, videos.MaxSize)
	assert.Len(t, videos.AllowedTypes, 4)

	photos := PolicyFor("photos")
	assert.EqualValues(t, 5*1024*1024, photos.MaxSize)
	assert.Empty(t, photos.AllowedTypes)
}
