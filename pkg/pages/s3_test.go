package pages_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wikikit/pkg/pages"
)

type mockS3Client struct {
	mock.Mock
}

func (m *mockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func (m *mockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func keyIs(key string) any {
	return mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return aws.ToString(in.Bucket) == "wiki" && aws.ToString(in.Key) == key
	})
}

func newS3(t *testing.T, client *mockS3Client) *pages.S3 {
	t.Helper()
	src, err := pages.NewS3(context.Background(), pages.S3Config{
		Bucket: "wiki",
		Region: "eu-west-1",
		Prefix: "/rendered/",
	}, pages.WithS3Client(client))
	require.NoError(t, err)
	return src
}

func TestS3_Read(t *testing.T) {
	t.Parallel()

	client := &mockS3Client{}
	client.On("GetObject", mock.Anything, keyIs("rendered/Main_Page.html")).
		Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("<p>main</p>"))}, nil)
	client.On("GetObject", mock.Anything, keyIs("rendered/Missing.html")).
		Return(nil, &types.NoSuchKey{})
	client.On("GetObject", mock.Anything, keyIs("rendered/Secret.html")).
		Return(nil, &smithy.GenericAPIError{Code: "AccessDenied"})
	client.On("GetObject", mock.Anything, keyIs("rendered/Busy.html")).
		Return(nil, &smithy.GenericAPIError{Code: "SlowDown"})

	src := newS3(t, client)
	ctx := context.Background()

	data, err := src.Read(ctx, "Main Page")
	require.NoError(t, err)
	assert.Equal(t, "<p>main</p>", string(data))

	_, err = src.Read(ctx, "Missing")
	assert.ErrorIs(t, err, pages.ErrNotFound)
	_, err = src.Read(ctx, "Secret")
	assert.ErrorIs(t, err, pages.ErrAccessDenied)
	_, err = src.Read(ctx, "Busy")
	assert.ErrorIs(t, err, pages.ErrServiceUnavailable)
	_, err = src.Read(ctx, "..")
	assert.ErrorIs(t, err, pages.ErrInvalidTitle)

	client.AssertExpectations(t)
}

func TestS3_Exists(t *testing.T) {
	t.Parallel()

	client := &mockS3Client{}
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return aws.ToString(in.Key) == "rendered/Main_Page.html"
	})).Return(&s3.HeadObjectOutput{}, nil)
	client.On("HeadObject", mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "NotFound"})

	src := newS3(t, client)
	assert.True(t, src.Exists(context.Background(), "Main_Page"))
	assert.False(t, src.Exists(context.Background(), "Other"))
}

func TestNewS3_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := pages.NewS3(context.Background(), pages.S3Config{Bucket: "wiki"})
	assert.ErrorIs(t, err, pages.ErrInvalidConfig)
}
