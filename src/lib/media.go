package lib

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Media holds the GridFS bucket used for uploaded images (project
// screenshots, student photos, company logos).
var Media *gridfs.Bucket

// ConnectMedia connects to MongoDB and opens the media bucket.
func ConnectMedia() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		Log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	bucket, err := gridfs.NewBucket(client.Database("placement_media"))
	if err != nil {
		Log.Fatalf("Failed to open media bucket: %v", err)
	}

	Media = bucket
	Log.Info("Connected to MongoDB media bucket!")
}

// UploadMedia stores a blob under a random name and returns the URL it can
// be fetched from.
func UploadMedia(originalName string, data io.Reader) (string, error) {
	storedName := uuid.NewString() + filepath.Ext(originalName)

	fileID, err := Media.UploadFromStream(storedName, data)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/media/%s", fileID.Hex()), nil
}

// FetchMedia reads a stored blob by its hex id.
func FetchMedia(id string) ([]byte, error) {
	fileID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := Media.DownloadToStream(fileID, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
