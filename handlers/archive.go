package handlers

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/storage"
)

// archiveArtifact copies a generated export to the configured GCS bucket
// under jobcards/. Archiving is best-effort: any failure is logged and the
// download itself proceeds. Returns the object path on success, "" otherwise.
func archiveArtifact(ctx context.Context, filename, contentType string, data []byte) string {
	bucket := os.Getenv("ARCHIVE_BUCKET")
	if bucket == "" || os.Getenv("USE_GCS") != "true" {
		return ""
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		log.Printf("Warning: archive client: %v", err)
		return ""
	}
	defer client.Close()

	object := "jobcards/" + filename
	wc := client.Bucket(bucket).Object(object).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		log.Printf("Warning: archive write %s: %v", object, err)
		wc.Close()
		return ""
	}
	if err := wc.Close(); err != nil {
		log.Printf("Warning: archive close %s: %v", object, err)
		return ""
	}
	return object
}
