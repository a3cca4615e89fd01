package fsxs3

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBucket is a tiny path-style S3 endpoint keyed by request path
type fakeBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (b *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		b.objects[r.URL.Path] = body
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		data, ok := b.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`)
			return
		}
		_, _ = w.Write(data)
	case http.MethodDelete:
		delete(b.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestFS(t *testing.T) (*fakeBucket, *S3FileSystem) {
	t.Helper()
	bucket := &fakeBucket{objects: map[string][]byte{}}
	srv := httptest.NewServer(bucket)
	t.Cleanup(srv.Close)

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
		Credentials:  aws.AnonymousCredentials{},
	})
	return bucket, NewS3FileSystem(client, "docs", "uploads").(*S3FileSystem)
}

func TestWriteReadDelete(t *testing.T) {
	bucket, fs := newTestFS(t)
	ctx := context.Background()
	p := fs.Join("resumes", "u1", "2026", "10", "cv.pdf")

	require.NoError(t, fs.WriteFile(ctx, p, []byte("%PDF-1.4")))
	assert.Contains(t, bucket.objects, "/docs/uploads/resumes/u1/2026/10/cv.pdf")

	data, err := fs.ReadFile(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, fs.DeleteFile(ctx, p))
	assert.Empty(t, bucket.objects)
}

func TestJoin(t *testing.T) {
	fs := &S3FileSystem{}
	assert.Equal(t, "resumes/a/b.pdf", fs.Join("resumes", "a", "b.pdf"))
}
