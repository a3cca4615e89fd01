package fsxs3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/Abraxas-365/pathway/pkg/fsx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3FileSystem stores files as objects under an optional key prefix
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3FileSystem(client *s3.Client, bucket, prefix string) fsx.FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (f *S3FileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

func (f *S3FileSystem) key(p string) string {
	p = strings.TrimPrefix(p, "/")
	if f.prefix == "" {
		return p
	}
	return f.prefix + "/" + p
}

func (f *S3FileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(f.bucket),
		Key:           aws.String(f.key(p)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", p, err)
	}
	return nil
}

// WriteFileStream buffers the stream so the SDK can sign a seekable body.
// Uploads are capped well below memory limits at the API layer.
func (f *S3FileSystem) WriteFileStream(ctx context.Context, p string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read upload stream: %w", err)
	}
	return f.WriteFile(ctx, p, data)
}

func (f *S3FileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(p)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fsx.ErrNotFound
		}
		return nil, fmt.Errorf("s3 get %s: %w", p, err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (f *S3FileSystem) DeleteFile(ctx context.Context, p string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(p)),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", p, err)
	}
	return nil
}
