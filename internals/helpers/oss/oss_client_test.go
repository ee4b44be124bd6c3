package helperOSS

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildObjectKey(t *testing.T) {
	svc := &OSSService{Endpoint: "oss-ap-southeast-5.aliyuncs.com", BucketName: "edulink"}
	scope := uuid.MustParse("7e57ed00-0000-4000-8000-000000000001")

	key := svc.BuildObjectKey("subjects", scope, "Cover Photo (final).png")

	parts := strings.SplitN(key, "/", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "subjects", parts[0])
	assert.Equal(t, scope.String(), parts[1])
	// filename segment is {unixmilli}_{sanitized}
	assert.Regexp(t, `^\d+_Cover_Photo_final\.png$`, parts[2])
}

func TestBuildObjectKeyWithPrefix(t *testing.T) {
	svc := &OSSService{Prefix: "uploads"}
	key := svc.BuildObjectKey("videos", uuid.New(), "clip.mp4")
	assert.True(t, strings.HasPrefix(key, "uploads/videos/"), key)
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"notes.pdf", "notes.pdf"},
		{"my file.pdf", "my_file.pdf"},
		{"../../etc/passwd", "passwd"},
		{"résumé!.pdf", "rsum.pdf"},
		{"???", "file"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeFilename(tc.in), tc.in)
	}
}

func TestPublicURLRoundTrip(t *testing.T) {
	svc := &OSSService{Endpoint: "https://oss-ap-southeast-5.aliyuncs.com", BucketName: "edulink"}

	key := fmt.Sprintf("notes/%s/1700000000000_notes.pdf", uuid.New())
	url := svc.PublicURL(key)
	assert.True(t, strings.HasPrefix(url, "https://edulink.oss-ap-southeast-5.aliyuncs.com/"), url)

	got, err := svc.ExtractKeyFromPublicURL(url)
	require.NoError(t, err)
	assert.Equal(t, key, got)
}
