package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/scraper"
)

// R2FixtureStore keeps competitor page snapshots in a Cloudflare R2
// bucket, for deployments where the API pods have no shared disk.
type R2FixtureStore struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewR2FixtureStore(ctx context.Context) (*R2FixtureStore, error) {
	endpoint := os.Getenv("R2_ENDPOINT")
	accessKey := os.Getenv("R2_ACCESS_KEY")
	secretKey := os.Getenv("R2_SECRET_KEY")
	bucket := os.Getenv("R2_BUCKET_NAME")

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				accessKey,
				secretKey,
				"",
			),
		),
		config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					if service == s3.ServiceID {
						return aws.Endpoint{
							URL:           endpoint,
							SigningRegion: "auto",
						}, nil
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				},
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return &R2FixtureStore{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: "fixtures",
	}, nil
}

// Load fetches a snapshot by base name from the fixtures prefix.
func (r *R2FixtureStore) Load(ctx context.Context, name string) (string, error) {
	key := path.Join(r.prefix, path.Base(name))

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &r.bucket,
		Key:    &key,
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return "", scraper.ErrFixtureMissing
		}
		return "", err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Save stores a snapshot under the fixtures prefix so it can be
// picked up by the next scrape sweep.
func (r *R2FixtureStore) Save(ctx context.Context, name string, body io.Reader) error {
	key := path.Join(r.prefix, path.Base(name))

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &r.bucket,
		Key:    &key,
		Body:   body,
	})
	return err
}
