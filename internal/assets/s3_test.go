package assets

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type putRecord struct {
	method      string
	path        string
	contentType string
	meta        string
	body        string
}

func fakeS3(t *testing.T) (*httptest.Server, *putRecord) {
	t.Helper()
	rec := &putRecord{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.contentType = r.Header.Get("Content-Type")
		rec.meta = r.Header.Get("X-Amz-Meta-Transformation")
		rec.body = string(b)
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestS3_Upload(t *testing.T) {
	srv, rec := fakeS3(t)

	up, err := NewS3(context.Background(), S3Options{
		Bucket:        "images",
		Region:        "us-east-1",
		Endpoint:      srv.URL,
		AccessKey:     "minio",
		SecretKey:     "minio123",
		PublicBaseURL: "https://cdn.example.com/",
	}, DefaultProfile)
	require.NoError(t, err)

	url, err := up.Upload(context.Background(), "project-1", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.True(t, strings.HasPrefix(rec.path, "/images/projects/project-1/"), rec.path)
	assert.True(t, strings.HasSuffix(rec.path, ".png"), rec.path)
	assert.Equal(t, "image/png", rec.contentType)
	assert.Equal(t, "c_scale,dpr_auto,w_auto", rec.meta)
	assert.Equal(t, "png-bytes", rec.body)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/projects/project-1/"), url)
}

func TestS3_UploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
	}))
	defer srv.Close()

	up, err := NewS3(context.Background(), S3Options{
		Bucket: "images", Region: "us-east-1", Endpoint: srv.URL, AccessKey: "a", SecretKey: "b",
	}, DefaultProfile)
	require.NoError(t, err)

	_, err = up.Upload(context.Background(), "p", "image/png", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestS3_ObjectURL(t *testing.T) {
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com/projects/p/x.png",
		(&S3{opts: S3Options{Bucket: "b", Region: "eu-west-1"}}).objectURL("projects/p/x.png"))
	assert.Equal(t, "http://minio:9000/b/projects/p/x.png",
		(&S3{opts: S3Options{Bucket: "b", Endpoint: "http://minio:9000/"}}).objectURL("projects/p/x.png"))
}

func TestNewS3_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no region")
	}

	_, err := NewS3(context.Background(), S3Options{Bucket: "b"}, DefaultProfile)
	assert.ErrorContains(t, err, "no region")
}
