package constants

// Nama bucket penyimpanan yang sudah diprovision di OSS.
const (
	BucketPhotos  = "photos"
	BucketVideos  = "videos"
	BucketUploads = "uploads"
)

const (
	// Batas ukuran upload per bucket.
	MaxVideoUploadSize = int64(500 * 1024 * 1024) // 500 MB khusus bucket videos
	MaxUploadSize      = int64(5 * 1024 * 1024)   // 5 MB untuk bucket lainnya
)

// Tipe video yang diterima di bucket videos. Bucket lain bebas tipe.
var AllowedVideoTypes = []string{
	"video/mp4",
	"video/webm",
	"video/ogg",
	"video/quicktime",
}
