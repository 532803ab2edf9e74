package config

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	mediaClient *minio.Client
	mediaBucket string
	mediaOnce   sync.Once
)

// ConnectMedia initializes and returns the MinIO client that stores
// complaint photo attachments
func ConnectMedia() *minio.Client {
	mediaOnce.Do(func() {
		endpoint := os.Getenv("MINIO_ENDPOINT")
		if endpoint == "" {
			log.Fatal("Please define the MINIO_ENDPOINT environment variable")
		}
		accessKey := os.Getenv("MINIO_ACCESS_KEY")
		secretKey := os.Getenv("MINIO_SECRET_KEY")
		if accessKey == "" || secretKey == "" {
			log.Fatal("Please define the MINIO_ACCESS_KEY and MINIO_SECRET_KEY environment variables")
		}

		bucket := os.Getenv("MEDIA_BUCKET")
		if bucket == "" {
			bucket = "civicmap-media"
		}

		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
			Secure: os.Getenv("MINIO_USE_SSL") == "true",
		})
		if err != nil {
			log.Fatalf("Failed to create MinIO client: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			log.Fatalf("Failed to check media bucket: %v", err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				log.Fatalf("Failed to create media bucket: %v", err)
			}
		}

		log.Println("Connected to MinIO!")

		mediaClient = client
		mediaBucket = bucket
	})

	return mediaClient
}

// MediaBucket returns the bucket name used for attachments.
func MediaBucket() string {
	ConnectMedia()
	return mediaBucket
}
