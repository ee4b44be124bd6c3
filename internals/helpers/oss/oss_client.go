package helperOSS

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// Upload size guards. Notes and generic attachments stay small; videos get
// their own, much larger cap.
const (
	MaxAttachmentSize = int64(5 * 1024 * 1024)
	MaxVideoSize      = int64(100 * 1024 * 1024)
)

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional, e.g. "uploads"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s)", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

/* =======================================================================
   Object keys
======================================================================= */

// BuildObjectKey follows the blob path convention
// {category}/{scopeId}/{timestamp}_{originalFilename}. The scope id is the
// owning school (or other parent) so tenant blobs stay grouped.
func (s *OSSService) BuildObjectKey(category string, scopeID uuid.UUID, filename string) string {
	name := sanitizeFilename(filename)
	key := fmt.Sprintf("%s/%s/%d_%s", strings.Trim(category, "/"), scopeID.String(), time.Now().UnixMilli(), name)
	if s.Prefix != "" {
		key = s.Prefix + "/" + key
	}
	return key
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

func (s *OSSService) PublicURL(key string) string {
	// endpoint may or may not carry a scheme
	ep := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, ep, key)
}

// ExtractKeyFromPublicURL is the inverse of PublicURL, used for deletes.
func (s *OSSService) ExtractKeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", err
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("no object key in URL %q", publicURL)
	}
	return key, nil
}

/* =======================================================================
   Uploads
======================================================================= */

// UploadAttachment uploads a form file as-is under the key convention and
// returns the public URL plus the stored object key.
func (s *OSSService) UploadAttachment(ctx context.Context, category string, scopeID uuid.UUID, fh *multipart.FileHeader, maxSize int64) (string, string, error) {
	if fh == nil {
		return "", "", fmt.Errorf("nil file header")
	}
	if maxSize > 0 && fh.Size > maxSize {
		return "", "", fmt.Errorf("file too large (max %d bytes)", maxSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	ct, reader, err := detectContentType(src, fh.Filename)
	if err != nil {
		return "", "", err
	}

	key := s.BuildObjectKey(category, scopeID, fh.Filename)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, reader, opts...); err != nil {
		return "", "", err
	}
	return s.PublicURL(key), key, nil
}

// UploadImageAsWebP recompresses an image upload to WebP before storing it,
// so subject/content images stay small regardless of what staff upload.
func (s *OSSService) UploadImageAsWebP(ctx context.Context, category string, scopeID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > MaxAttachmentSize {
		return "", fmt.Errorf("file too large (max %d bytes)", MaxAttachmentSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := s.BuildObjectKey(category, scopeID, base+".webp")

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(webpData), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := s.ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

/* =======================================================================
   Content-type sniffing
======================================================================= */

func detectContentType(src multipart.File, filename string) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}
	head = head[:n]

	ct := http.DetectContentType(head)
	if ct == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
			ct = byExt
		}
	}
	return ct, io.MultiReader(bytes.NewReader(head), src), nil
}
