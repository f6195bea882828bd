package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ItemAttributes carries the attributes the pipeline verifies after minting
type ItemAttributes struct {
	OrderID string `json:"order_id"`
}

// ItemMetadata is the per-item metadata document published for each mint
type ItemMetadata struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Attributes  ItemAttributes `json:"attributes"`
}

// ItemMetadataFromTemplate fills a collection's item metadata template with
// order-specific attributes
func ItemMetadataFromTemplate(template []byte, orderID string) (ItemMetadata, error) {
	var meta ItemMetadata
	if len(template) > 0 {
		if err := json.Unmarshal(template, &meta); err != nil {
			return ItemMetadata{}, fmt.Errorf("failed to parse item metadata template: %w", err)
		}
	}

	meta.Attributes = ItemAttributes{OrderID: orderID}
	return meta, nil
}

// Publisher stores metadata documents at publicly reachable URLs
//
//go:generate mockgen -source=publisher.go -destination=../mocks/metadata.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishItemMetadata uploads a metadata document and returns its public URL
	PublishItemMetadata(ctx context.Context, meta ItemMetadata) (string, error)
}

// PublisherOptions configures the object storage publisher
type PublisherOptions struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	UseSSL        bool
}

type minioPublisher struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewPublisher creates an object storage metadata publisher
func NewPublisher(opts PublisherOptions) (Publisher, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &minioPublisher{
		client:        client,
		bucket:        opts.Bucket,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
	}, nil
}

// PublishItemMetadata uploads a metadata document under a random key
func (p *minioPublisher) PublishItemMetadata(ctx context.Context, meta ItemMetadata) (string, error) {
	payload, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to marshal item metadata: %w", err)
	}

	key := uuid.NewString() + ".json"

	_, err = p.client.PutObject(ctx, p.bucket, key,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to upload item metadata: %w", err)
	}

	return p.publicBaseURL + "/" + key, nil
}
